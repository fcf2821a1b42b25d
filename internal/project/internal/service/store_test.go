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

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/ecodeclub/devcollab/internal/pkg/snowflake"
	"github.com/ecodeclub/devcollab/internal/project/internal/domain"
	"github.com/ecodeclub/devcollab/internal/project/internal/event"
	evtmocks "github.com/ecodeclub/devcollab/internal/project/internal/event/mocks"
	"github.com/ecodeclub/devcollab/internal/project/internal/repository"
	repomocks "github.com/ecodeclub/devcollab/internal/project/internal/repository/mocks"
	"github.com/ecodeclub/ekit/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

type StoreTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *repomocks.MockSnapshotRepository
	producer *evtmocks.MockProjectEventProducer
	store    *Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repomocks.NewMockSnapshotRepository(s.ctrl)
	s.producer = evtmocks.NewMockProjectEventProducer(s.ctrl)
	idGen, err := snowflake.NewCustomSnowFlake(0, uint(snowflake.KindCount))
	require.NoError(s.T(), err)
	s.store = NewStore(s.repo, s.producer, idGen, DefaultConfig())
	s.store.now = func() time.Time {
		return testNow
	}
}

func (s *StoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// allowWrites 持久化和发送事件都成功
func (s *StoreTestSuite) allowWrites() {
	s.repo.EXPECT().SaveProjects(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.repo.EXPECT().SaveUsers(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.repo.EXPECT().SaveMessages(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (s *StoreTestSuite) saveUser(uid int64, name string, skills ...string) {
	_, err := s.store.SaveProfile(context.Background(), domain.User{Id: uid, Name: name, Skills: skills})
	require.NoError(s.T(), err)
}

func (s *StoreTestSuite) createProject(owner int64, maxTeamSize int, skills ...string) domain.Project {
	p, err := s.store.CreateProject(context.Background(), CreateProjectCmd{
		OwnerId:        owner,
		Title:          "项目",
		Desc:           "描述",
		Type:           domain.ProjectTypeOpenSource,
		RequiredSkills: skills,
		MaxTeamSize:    maxTeamSize,
	})
	require.NoError(s.T(), err)
	return p
}

// raw 内存中的原始数据
func (s *StoreTestSuite) raw(pid int64) domain.Project {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return s.store.projects[s.store.projectIdx[pid]]
}

func (s *StoreTestSuite) TestCreateProject() {
	t := s.T()
	var saved []domain.Project
	s.repo.EXPECT().SaveProjects(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, projects []domain.Project) error {
			saved = projects
			return nil
		})
	s.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.ProjectEvent) error {
			assert.Equal(t, event.ActionCreate, evt.Action)
			assert.Equal(t, int64(1), evt.Uid)
			return nil
		})
	s.saveUserDirectly(domain.User{Id: 1, Name: "Tom"})

	p, err := s.store.CreateProject(context.Background(), CreateProjectCmd{
		OwnerId:     1,
		Title:       "devcollab",
		Desc:        "刷题网站",
		Type:        domain.ProjectTypeStartup,
		MaxTeamSize: 3,
	})
	require.NoError(t, err)
	assert.True(t, p.Id > 0)
	assert.Equal(t, 1, p.TeamSize)
	assert.Equal(t, []int64{1}, p.TeamMemberIds)
	assert.Equal(t, []domain.User{{Id: 1, Name: "Tom", Skills: []string{}}}, p.TeamMembers)
	assert.Equal(t, []int64{}, p.ApplicantIds)
	assert.Equal(t, domain.DifficultyIntermediate, p.Difficulty)
	assert.Equal(t, domain.TimeCommitmentPartTime, p.TimeCommitment)
	assert.Equal(t, domain.ProjectStatusPlanning, p.Status)
	assert.Equal(t, testNow.UnixMilli(), p.Ctime)
	// 新项目本身就是热门
	require.NotNil(t, p.Trending)
	assert.Equal(t, 45, p.Trending.Score)
	require.Len(t, saved, 1)
	assert.Equal(t, p.Id, saved[0].Id)
}

// saveUserDirectly 不经过持久化，直接放进内存
func (s *StoreTestSuite) saveUserDirectly(u domain.User) {
	if u.Skills == nil {
		u.Skills = []string{}
	}
	s.store.users = append(s.store.users, u)
	s.store.userIdx[u.Id] = len(s.store.users) - 1
}

func (s *StoreTestSuite) TestCreateProject_Invalid() {
	testCases := []struct {
		name string
		cmd  CreateProjectCmd
	}{
		{name: "没有标题", cmd: CreateProjectCmd{OwnerId: 1, Desc: "d", Type: domain.ProjectTypeFreelance, MaxTeamSize: 1}},
		{name: "没有描述", cmd: CreateProjectCmd{OwnerId: 1, Title: "t", Type: domain.ProjectTypeFreelance, MaxTeamSize: 1}},
		{name: "未知类型", cmd: CreateProjectCmd{OwnerId: 1, Title: "t", Desc: "d", MaxTeamSize: 1}},
		{name: "人数上限为 0", cmd: CreateProjectCmd{OwnerId: 1, Title: "t", Desc: "d", Type: domain.ProjectTypePersonal}},
		{name: "未知状态", cmd: CreateProjectCmd{OwnerId: 1, Title: "t", Desc: "d", Type: domain.ProjectTypePersonal, Status: 9, MaxTeamSize: 1}},
		{name: "未知难度", cmd: CreateProjectCmd{OwnerId: 1, Title: "t", Desc: "d", Type: domain.ProjectTypePersonal, Difficulty: "hell", MaxTeamSize: 1}},
		{name: "未知时间投入", cmd: CreateProjectCmd{OwnerId: 1, Title: "t", Desc: "d", Type: domain.ProjectTypePersonal, TimeCommitment: "sometimes", MaxTeamSize: 1}},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			_, err := s.store.CreateProject(context.Background(), tc.cmd)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func (s *StoreTestSuite) TestApplyToProject_Idempotent() {
	s.allowWrites()
	s.saveUser(1, "owner")
	s.saveUser(2, "A")
	p := s.createProject(1, 3)

	require.NoError(s.T(), s.store.ApplyToProject(context.Background(), p.Id, 2))
	require.NoError(s.T(), s.store.ApplyToProject(context.Background(), p.Id, 2))
	assert.Equal(s.T(), []int64{2}, s.raw(p.Id).ApplicantIds)
}

func (s *StoreTestSuite) TestApplyToProject_Errors() {
	s.allowWrites()
	s.saveUser(1, "owner")
	s.saveUser(2, "A")
	p := s.createProject(1, 3)

	err := s.store.ApplyToProject(context.Background(), p.Id+1000, 2)
	assert.ErrorIs(s.T(), err, ErrProjectNotFound)
	err = s.store.ApplyToProject(context.Background(), p.Id, 99)
	assert.ErrorIs(s.T(), err, ErrUserNotFound)
	err = s.store.ApplyToProject(context.Background(), p.Id, 1)
	assert.ErrorIs(s.T(), err, ErrAlreadyMember)
	assert.Empty(s.T(), s.raw(p.Id).ApplicantIds)
}

// 团队上限为 2：A 申请并且被接受之后，B 的申请无法被接受
func (s *StoreTestSuite) TestMaxTeamSizeScenario() {
	t := s.T()
	ctx := context.Background()
	s.allowWrites()
	s.saveUser(1, "owner")
	s.saveUser(2, "A")
	s.saveUser(3, "B")
	p := s.createProject(1, 2)
	assert.Equal(t, 1, p.TeamSize)

	require.NoError(t, s.store.ApplyToProject(ctx, p.Id, 2))
	assert.Equal(t, []int64{2}, s.raw(p.Id).ApplicantIds)

	require.NoError(t, s.store.AcceptApplication(ctx, AcceptApplicationCmd{ProjectId: p.Id, OperatorId: 1, UserId: 2}))
	raw := s.raw(p.Id)
	assert.Equal(t, []int64{1, 2}, raw.TeamMemberIds)
	assert.Equal(t, 2, raw.TeamSize)
	assert.Empty(t, raw.ApplicantIds)

	require.NoError(t, s.store.ApplyToProject(ctx, p.Id, 3))
	err := s.store.AcceptApplication(ctx, AcceptApplicationCmd{ProjectId: p.Id, OperatorId: 1, UserId: 3})
	assert.ErrorIs(t, err, ErrTeamFull)
	raw = s.raw(p.Id)
	assert.Equal(t, []int64{1, 2}, raw.TeamMemberIds)
	assert.Equal(t, 2, raw.TeamSize)
	assert.Equal(t, []int64{3}, raw.ApplicantIds)

	detail, err := s.store.Detail(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"owner", "A"}, slice.Map(detail.TeamMembers, func(idx int, src domain.User) string {
		return src.Name
	}))
	assert.Equal(t, []string{"B"}, slice.Map(detail.Applicants, func(idx int, src domain.User) string {
		return src.Name
	}))
}

func (s *StoreTestSuite) TestAcceptApplication_Errors() {
	s.allowWrites()
	s.saveUser(1, "owner")
	s.saveUser(2, "A")
	p := s.createProject(1, 5)
	require.NoError(s.T(), s.store.ApplyToProject(context.Background(), p.Id, 2))

	testCases := []struct {
		name    string
		cmd     AcceptApplicationCmd
		wantErr error
	}{
		{
			name:    "项目不存在",
			cmd:     AcceptApplicationCmd{ProjectId: p.Id + 1, OperatorId: 1, UserId: 2},
			wantErr: ErrProjectNotFound,
		},
		{
			name:    "不是 owner",
			cmd:     AcceptApplicationCmd{ProjectId: p.Id, OperatorId: 2, UserId: 2},
			wantErr: ErrPermissionDenied,
		},
		{
			name:    "没有申请",
			cmd:     AcceptApplicationCmd{ProjectId: p.Id, OperatorId: 1, UserId: 3},
			wantErr: ErrApplicationNotFound,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			err := s.store.AcceptApplication(context.Background(), tc.cmd)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, []int64{2}, s.raw(p.Id).ApplicantIds)
			assert.Equal(t, 1, s.raw(p.Id).TeamSize)
		})
	}
}

// 随机申请、接受之后，申请人和团队成员不相交，人数也不会超过上限
func (s *StoreTestSuite) TestApplyAccept_RandomSequence() {
	t := s.T()
	ctx := context.Background()
	s.allowWrites()
	const users = 8
	for i := int64(1); i <= users; i++ {
		s.saveUser(i, "u")
	}
	pids := []int64{
		s.createProject(1, 1).Id,
		s.createProject(1, 3).Id,
		s.createProject(2, 5).Id,
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		pid := pids[r.Intn(len(pids))]
		uid := int64(r.Intn(users) + 1)
		if r.Intn(2) == 0 {
			_ = s.store.ApplyToProject(ctx, pid, uid)
		} else {
			owner := s.raw(pid).OwnerId
			_ = s.store.AcceptApplication(ctx, AcceptApplicationCmd{ProjectId: pid, OperatorId: owner, UserId: uid})
		}
		for _, id := range pids {
			p := s.raw(id)
			assert.Equal(t, len(p.TeamMemberIds), p.TeamSize)
			assert.LessOrEqual(t, p.TeamSize, p.MaxTeamSize)
			seen := map[int64]bool{}
			for _, a := range p.ApplicantIds {
				assert.False(t, seen[a], "重复申请 %d", a)
				seen[a] = true
				assert.NotContains(t, p.TeamMemberIds, a)
			}
		}
	}
}

func (s *StoreTestSuite) TestPersistFailure_StateUnchanged() {
	t := s.T()
	ctx := context.Background()
	s.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.repo.EXPECT().SaveUsers(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.saveUser(1, "owner")
	s.saveUser(2, "A")
	s.repo.EXPECT().SaveProjects(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	p := s.createProject(1, 3)
	before := s.raw(p.Id)

	s.repo.EXPECT().SaveProjects(gomock.Any(), gomock.Any()).Return(errors.New("mock db error")).AnyTimes()
	err := s.store.ApplyToProject(ctx, p.Id, 2)
	assert.Error(t, err)
	_, err = s.store.CreateDiscussion(ctx, CreateDiscussionCmd{ProjectId: p.Id, AuthorId: 1, Title: "t", Content: "c"})
	assert.Error(t, err)
	assert.Equal(t, before, s.raw(p.Id))
	assert.Empty(t, s.store.discussionIdx)

	s.repo.EXPECT().SaveMessages(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
	_, err = s.store.SendMessage(ctx, SendMessageCmd{SenderId: 1, Content: "hello"})
	assert.Error(t, err)
	assert.Empty(t, s.store.messages)
}

func (s *StoreTestSuite) TestProducerFailureIsIgnored() {
	s.repo.EXPECT().SaveProjects(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.repo.EXPECT().SaveUsers(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq 挂了")).AnyTimes()
	s.saveUser(1, "owner")
	p := s.createProject(1, 3)
	starred, err := s.store.ToggleStar(context.Background(), p.Id, 5)
	require.NoError(s.T(), err)
	assert.True(s.T(), starred)
}

func (s *StoreTestSuite) TestMessages() {
	t := s.T()
	ctx := context.Background()
	s.allowWrites()
	s.saveUser(1, "Tom")
	s.saveUser(2, "Jerry")
	p := s.createProject(1, 3)

	_, err := s.store.SendMessage(ctx, SendMessageCmd{SenderId: 1, Content: "全局消息"})
	require.NoError(t, err)
	m1, err := s.store.SendMessage(ctx, SendMessageCmd{SenderId: 2, Content: "第一条", ProjectId: p.Id})
	require.NoError(t, err)
	assert.Equal(t, "Jerry", m1.SenderName)
	m2, err := s.store.SendMessage(ctx, SendMessageCmd{SenderId: 1, Content: "第二条", ProjectId: p.Id})
	require.NoError(t, err)

	msgs, err := s.store.ProjectMessages(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, []domain.Message{m1, m2}, msgs)

	global, err := s.store.ProjectMessages(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, global, 1)

	_, err = s.store.SendMessage(ctx, SendMessageCmd{SenderId: 3, Content: "hi"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = s.store.SendMessage(ctx, SendMessageCmd{SenderId: 1, Content: "hi", ProjectId: p.Id + 1})
	assert.ErrorIs(t, err, ErrProjectNotFound)
	_, err = s.store.SendMessage(ctx, SendMessageCmd{SenderId: 1, Content: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.store.ProjectMessages(ctx, p.Id+1)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func (s *StoreTestSuite) TestUpdateProjectTasks() {
	t := s.T()
	ctx := context.Background()
	s.allowWrites()
	s.saveUser(1, "owner")
	p := s.createProject(1, 3)

	tasks, err := s.store.UpdateProjectTasks(ctx, UpdateTasksCmd{
		ProjectId:  p.Id,
		OperatorId: 1,
		Tasks:      []domain.Task{{Title: "设计表结构"}, {Title: "写接口", Priority: domain.TaskPriorityHigh}},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.NotZero(t, tasks[0].Id)
	assert.NotEqual(t, tasks[0].Id, tasks[1].Id)
	assert.Equal(t, domain.TaskStatusTodo, tasks[0].Status)
	assert.Equal(t, domain.TaskPriorityMedium, tasks[0].Priority)
	assert.Equal(t, domain.TaskPriorityHigh, tasks[1].Priority)

	created := tasks[0].Ctime
	s.store.now = func() time.Time {
		return testNow.Add(time.Hour)
	}
	first := tasks[0]
	first.Status = domain.TaskStatusDone
	tasks, err = s.store.UpdateProjectTasks(ctx, UpdateTasksCmd{
		ProjectId:  p.Id,
		OperatorId: 1,
		Tasks:      []domain.Task{first},
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, first.Id, tasks[0].Id)
	assert.Equal(t, created, tasks[0].Ctime)
	assert.Equal(t, testNow.Add(time.Hour).UnixMilli(), tasks[0].Utime)
	assert.Equal(t, domain.TaskStatusDone, s.raw(p.Id).Tasks[0].Status)
	assert.Equal(t, testNow.Add(time.Hour).UnixMilli(), s.raw(p.Id).Utime)

	_, err = s.store.UpdateProjectTasks(ctx, UpdateTasksCmd{ProjectId: p.Id, OperatorId: 2, Tasks: nil})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	_, err = s.store.UpdateProjectTasks(ctx, UpdateTasksCmd{
		ProjectId:  p.Id,
		OperatorId: 1,
		Tasks:      []domain.Task{{Title: "x", Status: "unknown"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func (s *StoreTestSuite) TestDiscussions() {
	t := s.T()
	ctx := context.Background()
	s.allowWrites()
	s.saveUser(1, "owner")
	s.saveUser(2, "Jerry")
	p1 := s.createProject(1, 3)
	p2 := s.createProject(1, 3)

	d, err := s.store.CreateDiscussion(ctx, CreateDiscussionCmd{
		ProjectId: p2.Id,
		AuthorId:  2,
		Title:     "选型",
		Content:   "gin 还是 echo",
		Tags:      []string{"web"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Jerry", d.AuthorName)

	reply, err := s.store.ReplyToDiscussion(ctx, ReplyCmd{DiscussionId: d.Id, AuthorId: 1, Content: "gin"})
	require.NoError(t, err)
	assert.Equal(t, "owner", reply.AuthorName)

	raw := s.raw(p2.Id)
	require.Len(t, raw.Discussions, 1)
	assert.Equal(t, []domain.Reply{reply}, raw.Discussions[0].Replies)
	assert.Empty(t, s.raw(p1.Id).Discussions)

	_, err = s.store.ReplyToDiscussion(ctx, ReplyCmd{DiscussionId: d.Id + 1, AuthorId: 1, Content: "gin"})
	assert.ErrorIs(t, err, ErrDiscussionNotFound)
	_, err = s.store.ReplyToDiscussion(ctx, ReplyCmd{DiscussionId: d.Id, AuthorId: 9, Content: "gin"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = s.store.CreateDiscussion(ctx, CreateDiscussionCmd{ProjectId: p1.Id, AuthorId: 9, Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func (s *StoreTestSuite) TestToggleStarAndDetail() {
	t := s.T()
	ctx := context.Background()
	s.allowWrites()
	s.saveUser(1, "owner")
	p := s.createProject(1, 3)

	starred, err := s.store.ToggleStar(ctx, p.Id, 7)
	require.NoError(t, err)
	assert.True(t, starred)
	starred, err = s.store.ToggleStar(ctx, p.Id, 8)
	require.NoError(t, err)
	assert.True(t, starred)
	starred, err = s.store.ToggleStar(ctx, p.Id, 7)
	require.NoError(t, err)
	assert.False(t, starred)

	_, err = s.store.Detail(ctx, p.Id)
	require.NoError(t, err)
	detail, err := s.store.Detail(ctx, p.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), detail.ViewCnt)
	require.NotNil(t, detail.Trending)
	assert.Equal(t, int64(2), detail.Trending.Views)
	assert.Equal(t, 1, detail.Trending.Stars)

	_, err = s.store.Detail(ctx, p.Id+1)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func (s *StoreTestSuite) TestListAndTrending() {
	t := s.T()
	ctx := context.Background()
	s.allowWrites()
	s.saveUser(1, "owner")
	s.saveUser(2, "A")
	s.saveUser(3, "B")
	old := s.createProject(1, 3)
	hot := s.createProject(1, 3)
	require.NoError(t, s.store.ApplyToProject(ctx, hot.Id, 2))

	// 一个月之后，没有任何更新的项目都不再热门
	s.store.now = func() time.Time {
		return testNow.Add(30 * day)
	}
	require.NoError(t, s.store.RecomputeTrending(ctx))
	res, err := s.store.TrendingProjects(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, res)

	// 10 + 5 + 20 + 0
	require.NoError(t, s.store.ApplyToProject(ctx, old.Id, 2))
	s.store.now = func() time.Time {
		return testNow.Add(30*day + time.Hour)
	}
	// 20 + 5 + 20 + 0
	require.NoError(t, s.store.ApplyToProject(ctx, hot.Id, 3))

	res, err = s.store.TrendingProjects(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{hot.Id, old.Id}, slice.Map(res, func(idx int, src domain.Project) int64 {
		return src.Id
	}))
	assert.Equal(t, 45, res[0].Trending.Score)
	assert.Equal(t, 35, res[1].Trending.Score)
	res, err = s.store.TrendingProjects(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, res, 1)

	// 最近更新的在前面
	testCases := []struct {
		name    string
		offset  int
		limit   int
		wantIds []int64
	}{
		{name: "第一页", offset: 0, limit: 1, wantIds: []int64{hot.Id}},
		{name: "第二页", offset: 1, limit: 10, wantIds: []int64{old.Id}},
		{name: "超出范围", offset: 5, limit: 10, wantIds: []int64{}},
		{name: "limit 为 0", offset: 0, limit: 0, wantIds: []int64{}},
		{name: "负数 offset 当成 0", offset: -5, limit: 3, wantIds: []int64{hot.Id, old.Id}},
		{name: "负数 limit", offset: 0, limit: -1, wantIds: []int64{}},
		{name: "limit 特别大", offset: 1, limit: math.MaxInt, wantIds: []int64{old.Id}},
		{name: "offset 和 limit 都特别大", offset: math.MaxInt, limit: math.MaxInt, wantIds: []int64{}},
		{name: "offset 最小值", offset: math.MinInt, limit: math.MaxInt, wantIds: []int64{hot.Id, old.Id}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := s.store.List(ctx, tc.offset, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.wantIds, slice.Map(list, func(idx int, src domain.Project) int64 {
				return src.Id
			}))
		})
	}
}

func (s *StoreTestSuite) TestRecommendations_Exclusion() {
	t := s.T()
	ctx := context.Background()
	s.allowWrites()
	s.saveUser(1, "owner", "go")
	s.saveUser(2, "A", "go", "mysql")
	own := s.createProject(2, 3, "go")
	applied := s.createProject(1, 3, "go", "mysql")
	joined := s.createProject(1, 3, "go")
	other := s.createProject(1, 3, "java")
	best := s.createProject(1, 3, "mysql", "go")
	require.NoError(t, s.store.ApplyToProject(ctx, applied.Id, 2))
	require.NoError(t, s.store.ApplyToProject(ctx, joined.Id, 2))
	require.NoError(t, s.store.AcceptApplication(ctx, AcceptApplicationCmd{ProjectId: joined.Id, OperatorId: 1, UserId: 2}))

	res, err := s.store.Recommendations(ctx, 2)
	require.NoError(t, err)
	ids := slice.Map(res, func(idx int, src domain.Project) int64 {
		return src.Id
	})
	assert.Equal(t, []int64{best.Id, other.Id}, ids)
	assert.NotContains(t, ids, own.Id)

	res, err = s.store.Recommendations(ctx, 100)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func (s *StoreTestSuite) TestProfile() {
	t := s.T()
	ctx := context.Background()
	s.allowWrites()
	u, err := s.store.SaveProfile(ctx, domain.User{Id: 1, Name: "Tom", Skills: []string{"go"}})
	require.NoError(t, err)
	assert.Equal(t, testNow.UnixMilli(), u.Ctime)

	s.store.now = func() time.Time {
		return testNow.Add(time.Hour)
	}
	u, err = s.store.SaveProfile(ctx, domain.User{Id: 1, Name: "Tommy", Bio: "gopher"})
	require.NoError(t, err)
	// 加入时间不会变
	assert.Equal(t, testNow.UnixMilli(), u.Ctime)

	res, err := s.store.Profile(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.User{Id: 1, Name: "Tommy", Bio: "gopher", Skills: []string{}, Ctime: testNow.UnixMilli()}, res)

	_, err = s.store.Profile(ctx, 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = s.store.SaveProfile(ctx, domain.User{Id: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.store.SaveProfile(ctx, domain.User{Id: 2, Name: "Jerry", Experience: "guru"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.store.SaveProfile(ctx, domain.User{Id: 2, Name: "Jerry", Availability: "never"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.store.Profile(ctx, 2)
	assert.ErrorIs(t, err, ErrUserNotFound)

	u, err = s.store.SaveProfile(ctx, domain.User{
		Id:           2,
		Name:         "Jerry",
		Experience:   domain.ExperienceExpert,
		Availability: domain.AvailabilityWeekends,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ExperienceExpert, u.Experience)
}

func (s *StoreTestSuite) TestLoad() {
	t := s.T()
	projects := []domain.Project{
		{
			Id:            1,
			OwnerId:       1,
			TeamSize:      1,
			MaxTeamSize:   2,
			TeamMemberIds: []int64{1},
			ApplicantIds:  []int64{},
			Discussions:   []domain.Discussion{{Id: 10, Title: "t", Replies: []domain.Reply{}}},
			Ctime:         testNow.UnixMilli(),
			Utime:         testNow.UnixMilli(),
		},
	}
	s.repo.EXPECT().LoadProjects(gomock.Any()).Return(projects, nil)
	s.repo.EXPECT().LoadUsers(gomock.Any()).
		Return([]domain.User{}, fmt.Errorf("%w: name=users", repository.ErrCorruptedSnapshot))
	s.repo.EXPECT().LoadMessages(gomock.Any()).Return([]domain.Message{{Id: 5, Content: "hi"}}, nil)

	require.NoError(t, s.store.Load(context.Background()))
	assert.Equal(t, projects, s.store.projects)
	assert.Empty(t, s.store.users)
	assert.Len(t, s.store.messages, 1)
	assert.Equal(t, map[int64]int64{10: 1}, s.store.discussionIdx)
	// 加载之后会重算热门
	assert.Contains(t, s.store.trending, int64(1))
}

func (s *StoreTestSuite) TestLoad_Error() {
	s.repo.EXPECT().LoadProjects(gomock.Any()).Return([]domain.Project{}, errors.New("mock db error"))
	s.repo.EXPECT().LoadUsers(gomock.Any()).Return([]domain.User{}, nil)
	s.repo.EXPECT().LoadMessages(gomock.Any()).Return([]domain.Message{}, nil)
	err := s.store.Load(context.Background())
	assert.Error(s.T(), err)
}

func TestStore(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
