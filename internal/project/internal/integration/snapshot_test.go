// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/devcollab/internal/project"
	"github.com/ecodeclub/devcollab/internal/project/internal/domain"
	"github.com/ecodeclub/devcollab/internal/project/internal/integration/startup"
	"github.com/ecodeclub/devcollab/internal/project/internal/repository/dao"
	"github.com/ecodeclub/devcollab/internal/project/internal/service"
	testioc "github.com/ecodeclub/devcollab/internal/test/ioc"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SnapshotTestSuite struct {
	suite.Suite
	db    *egorm.Component
	cache ecache.Cache
}

func (s *SnapshotTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.cache = testioc.InitCache()
}

func (s *SnapshotTestSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE collection_snapshots").Error
	if err != nil {
		// 第一次运行的时候表还没建
		s.T().Log(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	for _, name := range []string{"projects", "users", "messages"} {
		_, err = s.cache.Delete(ctx, "project:snapshot:"+name)
		require.NoError(s.T(), err)
	}
}

func (s *SnapshotTestSuite) newModule() *project.Module {
	m, err := startup.InitModule()
	require.NoError(s.T(), err)
	return m
}

func (s *SnapshotTestSuite) TestPersistAndReload() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	m := s.newModule()
	for uid, name := range map[int64]string{1: "owner", 2: "alice"} {
		_, err := m.Svc.SaveProfile(ctx, domain.User{Id: uid, Name: name, Skills: []string{"go"}})
		require.NoError(t, err)
	}
	p, err := m.Svc.CreateProject(ctx, service.CreateProjectCmd{
		OwnerId:        1,
		Title:          "devcollab",
		Desc:           "开发者协作平台",
		Type:           domain.ProjectTypeOpenSource,
		RequiredSkills: []string{"go", "mysql"},
		MaxTeamSize:    2,
	})
	require.NoError(t, err)
	require.NoError(t, m.Svc.ApplyToProject(ctx, p.Id, 2))
	d, err := m.Svc.CreateDiscussion(ctx, service.CreateDiscussionCmd{
		ProjectId: p.Id,
		AuthorId:  2,
		Title:     "技术选型",
		Content:   "用 gin 还是 echo",
	})
	require.NoError(t, err)
	_, err = m.Svc.ReplyToDiscussion(ctx, service.ReplyCmd{DiscussionId: d.Id, AuthorId: 1, Content: "gin"})
	require.NoError(t, err)
	_, err = m.Svc.SendMessage(ctx, service.SendMessageCmd{SenderId: 1, Content: "hello", ProjectId: p.Id})
	require.NoError(t, err)

	// 数据库里面是整个集合的快照
	var row dao.CollectionSnapshot
	err = s.db.WithContext(ctx).Where("name = ?", "projects").First(&row).Error
	require.NoError(t, err)
	var prjs []dao.Project
	require.NoError(t, json.Unmarshal([]byte(row.Val), &prjs))
	require.Len(t, prjs, 1)
	assert.Equal(t, []int64{2}, prjs[0].ApplicantIds)
	require.Len(t, prjs[0].Discussions, 1)
	assert.Len(t, prjs[0].Discussions[0].Replies, 1)

	// 缓存失效之后从数据库恢复
	_, err = s.cache.Delete(ctx, "project:snapshot:projects")
	require.NoError(t, err)

	reloaded := s.newModule()
	got, err := reloaded.Svc.Detail(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, []int64{1}, got.TeamMemberIds)
	assert.Equal(t, []int64{2}, got.ApplicantIds)
	assert.Equal(t, "alice", got.Applicants[0].Name)
	require.Len(t, got.Discussions, 1)
	assert.Equal(t, "gin", got.Discussions[0].Replies[0].Content)

	msgs, err := reloaded.Svc.ProjectMessages(ctx, p.Id)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "owner", msgs[0].SenderName)

	require.NoError(t, reloaded.Svc.AcceptApplication(ctx, service.AcceptApplicationCmd{
		ProjectId:  p.Id,
		OperatorId: 1,
		UserId:     2,
	}))
	got, err = reloaded.Svc.Detail(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TeamSize)
	assert.Empty(t, got.ApplicantIds)
}

func (s *SnapshotTestSuite) TestCorruptedSnapshot() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// 确保表已经建好
	s.newModule()
	_, err := dao.NewGORMSnapshotDAO(s.db).Upsert(ctx, "projects", "{not json")
	require.NoError(t, err)
	_, err = s.cache.Delete(ctx, "project:snapshot:projects")
	require.NoError(t, err)

	// 坏掉的快照不影响启动，按照空集合处理
	reloaded := s.newModule()
	prjs, err := reloaded.Svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, prjs)
}

func (s *SnapshotTestSuite) TestStaleCacheIgnored() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	m := s.newModule()
	_, err := m.Svc.SaveProfile(ctx, domain.User{Id: 1, Name: "owner"})
	require.NoError(t, err)
	_, err = m.Svc.SaveProfile(ctx, domain.User{Id: 2, Name: "alice"})
	require.NoError(t, err)

	var row dao.CollectionSnapshot
	err = s.db.WithContext(ctx).Where("name = ?", "users").First(&row).Error
	require.NoError(t, err)
	assert.Equal(t, int64(2), row.Version)

	// 模拟缓存更新失败之后残留的旧版本
	err = s.cache.Set(ctx, "project:snapshot:users", `{"version":1,"val":[{"id":1,"name":"owner"}]}`, time.Minute)
	require.NoError(t, err)

	reloaded := s.newModule()
	u, err := reloaded.Svc.Profile(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Name)
}

func TestSnapshot(t *testing.T) {
	suite.Run(t, new(SnapshotTestSuite))
}
