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

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/devcollab/internal/project/internal/domain"
	"github.com/ecodeclub/devcollab/internal/project/internal/repository/cache"
	"github.com/ecodeclub/devcollab/internal/project/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

const (
	projectsKey = "projects"
	usersKey    = "users"
	messagesKey = "messages"
)

// ErrCorruptedSnapshot 快照存在，但是无法解析
var ErrCorruptedSnapshot = errors.New("快照数据损坏")

//go:generate mockgen -source=./snapshot.go -package=repomocks -destination=./mocks/snapshot.mock.go SnapshotRepository

// SnapshotRepository 每个集合整体读写。
// 快照不存在的时候返回空集合
type SnapshotRepository interface {
	LoadProjects(ctx context.Context) ([]domain.Project, error)
	SaveProjects(ctx context.Context, projects []domain.Project) error
	LoadUsers(ctx context.Context) ([]domain.User, error)
	SaveUsers(ctx context.Context, users []domain.User) error
	LoadMessages(ctx context.Context) ([]domain.Message, error)
	SaveMessages(ctx context.Context, msgs []domain.Message) error
}

var _ SnapshotRepository = &CachedSnapshotRepository{}

type CachedSnapshotRepository struct {
	dao    dao.SnapshotDAO
	cache  cache.SnapshotCache
	logger *elog.Component
}

func NewCachedSnapshotRepository(d dao.SnapshotDAO, c cache.SnapshotCache) SnapshotRepository {
	return &CachedSnapshotRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedSnapshotRepository) LoadProjects(ctx context.Context) ([]domain.Project, error) {
	res, err := load[dao.Project](ctx, repo, projectsKey)
	return slice.Map(res, func(idx int, src dao.Project) domain.Project {
		return repo.projectToDomain(src)
	}), err
}

func (repo *CachedSnapshotRepository) SaveProjects(ctx context.Context, projects []domain.Project) error {
	return save(ctx, repo, projectsKey, slice.Map(projects, func(idx int, src domain.Project) dao.Project {
		return repo.projectToEntity(src)
	}))
}

func (repo *CachedSnapshotRepository) LoadUsers(ctx context.Context) ([]domain.User, error) {
	res, err := load[dao.User](ctx, repo, usersKey)
	return slice.Map(res, func(idx int, src dao.User) domain.User {
		return repo.userToDomain(src)
	}), err
}

func (repo *CachedSnapshotRepository) SaveUsers(ctx context.Context, users []domain.User) error {
	return save(ctx, repo, usersKey, slice.Map(users, func(idx int, src domain.User) dao.User {
		return repo.userToEntity(src)
	}))
}

func (repo *CachedSnapshotRepository) LoadMessages(ctx context.Context) ([]domain.Message, error) {
	res, err := load[dao.Message](ctx, repo, messagesKey)
	return slice.Map(res, func(idx int, src dao.Message) domain.Message {
		return domain.Message(src)
	}), err
}

func (repo *CachedSnapshotRepository) SaveMessages(ctx context.Context, msgs []domain.Message) error {
	return save(ctx, repo, messagesKey, slice.Map(msgs, func(idx int, src domain.Message) dao.Message {
		return dao.Message(src)
	}))
}

// cachedSnapshot 缓存里存的值，带上写入时数据库的版本号
type cachedSnapshot struct {
	Version int64           `json:"version"`
	Val     json.RawMessage `json:"val"`
}

// load 先查缓存，缓存的版本号和数据库一致才用缓存。
// 缓存没有、坏了或者过期了，再查数据库并且回写缓存
func load[T any](ctx context.Context, repo *CachedSnapshotRepository, name string) ([]T, error) {
	if res, ok := loadFromCache[T](ctx, repo, name); ok {
		return res, nil
	}

	snapshot, err := repo.dao.Get(ctx, name)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var res []T
	if err = json.Unmarshal([]byte(snapshot.Val), &res); err != nil {
		return nil, fmt.Errorf("%w: name=%s, %w", ErrCorruptedSnapshot, name, err)
	}
	repo.setCache(ctx, name, snapshot.Version, snapshot.Val)
	return res, nil
}

func loadFromCache[T any](ctx context.Context, repo *CachedSnapshotRepository, name string) ([]T, bool) {
	val, err := repo.cache.Get(ctx, name)
	if err != nil {
		if !errors.Is(err, cache.ErrSnapshotNotFound) {
			repo.logger.Error("读取快照缓存失败", elog.String("name", name), elog.FieldErr(err))
		}
		return nil, false
	}
	var cs cachedSnapshot
	var res []T
	if err = json.Unmarshal([]byte(val), &cs); err == nil {
		err = json.Unmarshal(cs.Val, &res)
	}
	if err != nil {
		repo.logger.Warn("快照缓存无法解析", elog.String("name", name), elog.FieldErr(err))
		repo.deleteCache(ctx, name)
		return nil, false
	}
	version, err := repo.dao.Version(ctx, name)
	if err != nil {
		if !errors.Is(err, dao.ErrRecordNotFound) {
			repo.logger.Error("查询快照版本失败", elog.String("name", name), elog.FieldErr(err))
		}
		return nil, false
	}
	if version != cs.Version {
		repo.logger.Warn("快照缓存已过期",
			elog.String("name", name),
			elog.Int64("cacheVersion", cs.Version),
			elog.Int64("dbVersion", version))
		return nil, false
	}
	return res, true
}

// save 先写数据库，再更新缓存。缓存更新失败就删掉缓存；
// 删除也失败的话，旧缓存的版本号对不上数据库，读的时候会被丢弃
func save[T any](ctx context.Context, repo *CachedSnapshotRepository, name string, entities []T) error {
	if entities == nil {
		entities = []T{}
	}
	val, err := json.Marshal(entities)
	if err != nil {
		return fmt.Errorf("序列化快照失败: name=%s, %w", name, err)
	}
	version, err := repo.dao.Upsert(ctx, name, string(val))
	if err != nil {
		return err
	}
	if !repo.setCache(ctx, name, version, string(val)) {
		repo.deleteCache(ctx, name)
	}
	return nil
}

func (repo *CachedSnapshotRepository) setCache(ctx context.Context, name string, version int64, val string) bool {
	cs, err := json.Marshal(cachedSnapshot{Version: version, Val: json.RawMessage(val)})
	if err == nil {
		err = repo.cache.Set(ctx, name, string(cs))
	}
	if err != nil {
		repo.logger.Error("更新快照缓存失败", elog.String("name", name), elog.FieldErr(err))
		return false
	}
	return true
}

func (repo *CachedSnapshotRepository) deleteCache(ctx context.Context, name string) {
	if err := repo.cache.Delete(ctx, name); err != nil {
		repo.logger.Error("删除快照缓存失败", elog.String("name", name), elog.FieldErr(err))
	}
}

func (repo *CachedSnapshotRepository) projectToEntity(p domain.Project) dao.Project {
	return dao.Project{
		Id:             p.Id,
		Title:          p.Title,
		Desc:           p.Desc,
		Type:           p.Type.ToUint8(),
		Status:         p.Status.ToUint8(),
		RequiredSkills: p.RequiredSkills,
		TeamSize:       p.TeamSize,
		MaxTeamSize:    p.MaxTeamSize,
		Timeline:       p.Timeline,
		Budget:         p.Budget,
		Difficulty:     string(p.Difficulty),
		TimeCommitment: string(p.TimeCommitment),
		OwnerId:        p.OwnerId,
		TeamMemberIds:  p.TeamMemberIds,
		ApplicantIds:   p.ApplicantIds,
		Tasks: slice.Map(p.Tasks, func(idx int, src domain.Task) dao.Task {
			return dao.Task{
				Id:         src.Id,
				Title:      src.Title,
				Desc:       src.Desc,
				Status:     string(src.Status),
				Priority:   string(src.Priority),
				AssigneeId: src.AssigneeId,
				DueDate:    src.DueDate,
				Labels:     src.Labels,
				Ctime:      src.Ctime,
				Utime:      src.Utime,
			}
		}),
		Discussions: slice.Map(p.Discussions, func(idx int, src domain.Discussion) dao.Discussion {
			return dao.Discussion{
				Id:         src.Id,
				Title:      src.Title,
				Content:    src.Content,
				Tags:       src.Tags,
				AuthorId:   src.AuthorId,
				AuthorName: src.AuthorName,
				Pinned:     src.Pinned,
				Replies: slice.Map(src.Replies, func(idx int, src domain.Reply) dao.Reply {
					return dao.Reply(src)
				}),
				Ctime: src.Ctime,
				Utime: src.Utime,
			}
		}),
		Stargazers: p.Stargazers,
		ViewCnt:    p.ViewCnt,
		Ctime:      p.Ctime,
		Utime:      p.Utime,
	}
}

func (repo *CachedSnapshotRepository) projectToDomain(p dao.Project) domain.Project {
	return domain.Project{
		Id:             p.Id,
		Title:          p.Title,
		Desc:           p.Desc,
		Type:           domain.ProjectType(p.Type),
		Status:         domain.ProjectStatus(p.Status),
		RequiredSkills: p.RequiredSkills,
		TeamSize:       p.TeamSize,
		MaxTeamSize:    p.MaxTeamSize,
		Timeline:       p.Timeline,
		Budget:         p.Budget,
		Difficulty:     domain.Difficulty(p.Difficulty),
		TimeCommitment: domain.TimeCommitment(p.TimeCommitment),
		OwnerId:        p.OwnerId,
		TeamMemberIds:  p.TeamMemberIds,
		ApplicantIds:   p.ApplicantIds,
		Tasks: slice.Map(p.Tasks, func(idx int, src dao.Task) domain.Task {
			return domain.Task{
				Id:         src.Id,
				Title:      src.Title,
				Desc:       src.Desc,
				Status:     domain.TaskStatus(src.Status),
				Priority:   domain.TaskPriority(src.Priority),
				AssigneeId: src.AssigneeId,
				DueDate:    src.DueDate,
				Labels:     src.Labels,
				Ctime:      src.Ctime,
				Utime:      src.Utime,
			}
		}),
		Discussions: slice.Map(p.Discussions, func(idx int, src dao.Discussion) domain.Discussion {
			return domain.Discussion{
				Id:         src.Id,
				Title:      src.Title,
				Content:    src.Content,
				Tags:       src.Tags,
				AuthorId:   src.AuthorId,
				AuthorName: src.AuthorName,
				Pinned:     src.Pinned,
				Replies: slice.Map(src.Replies, func(idx int, src dao.Reply) domain.Reply {
					return domain.Reply(src)
				}),
				Ctime: src.Ctime,
				Utime: src.Utime,
			}
		}),
		Stargazers: p.Stargazers,
		ViewCnt:    p.ViewCnt,
		Ctime:      p.Ctime,
		Utime:      p.Utime,
	}
}

func (repo *CachedSnapshotRepository) userToEntity(u domain.User) dao.User {
	return dao.User{
		Id:           u.Id,
		Name:         u.Name,
		Avatar:       u.Avatar,
		Skills:       u.Skills,
		Experience:   string(u.Experience),
		Availability: string(u.Availability),
		Bio:          u.Bio,
		Location:     u.Location,
		SocialLinks:  dao.SocialLinks(u.SocialLinks),
		HourlyRate:   u.HourlyRate,
		Ctime:        u.Ctime,
	}
}

func (repo *CachedSnapshotRepository) userToDomain(u dao.User) domain.User {
	return domain.User{
		Id:           u.Id,
		Name:         u.Name,
		Avatar:       u.Avatar,
		Skills:       u.Skills,
		Experience:   domain.Experience(u.Experience),
		Availability: domain.Availability(u.Availability),
		Bio:          u.Bio,
		Location:     u.Location,
		SocialLinks:  domain.SocialLinks(u.SocialLinks),
		HourlyRate:   u.HourlyRate,
		Ctime:        u.Ctime,
	}
}
