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
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ecodeclub/devcollab/internal/pkg/snowflake"
	"github.com/ecodeclub/devcollab/internal/project/internal/domain"
	"github.com/ecodeclub/devcollab/internal/project/internal/event"
	"github.com/ecodeclub/devcollab/internal/project/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// errNoChange 数据没有变化，不需要持久化
var errNoChange = errors.New("数据没有变化")

var _ Service = &Store{}

// Store 在内存里面维护项目、用户、消息三个集合。
// 每次变更都先构造新的集合并持久化，成功之后才替换内存里的数据
type Store struct {
	mu         sync.RWMutex
	projects   []domain.Project
	projectIdx map[int64]int
	users      []domain.User
	userIdx    map[int64]int
	messages   []domain.Message
	// 讨论 id 到项目 id
	discussionIdx map[int64]int64
	// 派生数据，不持久化
	trending map[int64]domain.Trending

	repo     repository.SnapshotRepository
	producer event.ProjectEventProducer
	idGen    snowflake.Generator
	cfg      Config
	now      func() time.Time
	logger   *elog.Component
}

func NewStore(repo repository.SnapshotRepository,
	producer event.ProjectEventProducer,
	idGen snowflake.Generator,
	cfg Config) *Store {
	return &Store{
		projectIdx:    map[int64]int{},
		userIdx:       map[int64]int{},
		discussionIdx: map[int64]int64{},
		trending:      map[int64]domain.Trending{},
		repo:          repo,
		producer:      producer,
		idGen:         idGen,
		cfg:           cfg,
		now:           time.Now,
		logger:        elog.DefaultLogger,
	}
}

func (s *Store) Load(ctx context.Context) error {
	var (
		eg       errgroup.Group
		projects []domain.Project
		users    []domain.User
		msgs     []domain.Message
	)
	eg.Go(func() error {
		var err error
		projects, err = s.repo.LoadProjects(ctx)
		return s.failOpen("projects", err)
	})
	eg.Go(func() error {
		var err error
		users, err = s.repo.LoadUsers(ctx)
		return s.failOpen("users", err)
	})
	eg.Go(func() error {
		var err error
		msgs, err = s.repo.LoadMessages(ctx)
		return s.failOpen("messages", err)
	})
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("加载项目数据失败: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects, s.users, s.messages = projects, users, msgs
	s.projectIdx = make(map[int64]int, len(projects))
	s.discussionIdx = map[int64]int64{}
	for i, p := range projects {
		s.projectIdx[p.Id] = i
		for _, d := range p.Discussions {
			s.discussionIdx[d.Id] = p.Id
		}
	}
	s.userIdx = make(map[int64]int, len(users))
	for i, u := range users {
		s.userIdx[u.Id] = i
	}
	s.recomputeTrending()
	s.logger.Info("加载项目数据完成",
		elog.Int("projects", len(projects)),
		elog.Int("users", len(users)),
		elog.Int("messages", len(msgs)))
	return nil
}

// failOpen 快照损坏的时候使用空集合，保证服务可以启动
func (s *Store) failOpen(name string, err error) error {
	if errors.Is(err, repository.ErrCorruptedSnapshot) {
		s.logger.Error("快照数据损坏，使用空集合", elog.String("collection", name), elog.FieldErr(err))
		return nil
	}
	return err
}

func (s *Store) CreateProject(ctx context.Context, cmd CreateProjectCmd) (res domain.Project, err error) {
	defer func() { observe("create_project", err) }()
	if err = cmd.Validate(); err != nil {
		return domain.Project{}, err
	}
	id, err := s.idGen.Generate(snowflake.KindProject)
	if err != nil {
		return domain.Project{}, err
	}
	res, err = s.createProject(ctx, id.Int64(), cmd)
	if err != nil {
		return domain.Project{}, err
	}
	s.emit(ctx, event.ActionCreate, res.Id, cmd.OwnerId)
	return res, nil
}

func (s *Store) createProject(ctx context.Context, id int64, cmd CreateProjectCmd) (domain.Project, error) {
	now := s.now().UnixMilli()
	p := domain.Project{
		Id:             id,
		Title:          cmd.Title,
		Desc:           cmd.Desc,
		Type:           cmd.Type,
		Status:         cmd.Status,
		RequiredSkills: slices.Clone(cmd.RequiredSkills),
		TeamSize:       1,
		MaxTeamSize:    cmd.MaxTeamSize,
		Timeline:       cmd.Timeline,
		Budget:         cmd.Budget,
		Difficulty:     cmd.Difficulty,
		TimeCommitment: cmd.TimeCommitment,
		OwnerId:        cmd.OwnerId,
		TeamMemberIds:  []int64{cmd.OwnerId},
		ApplicantIds:   []int64{},
		Tasks:          []domain.Task{},
		Discussions:    []domain.Discussion{},
		Stargazers:     []int64{},
		Ctime:          now,
		Utime:          now,
	}
	if p.Status == domain.ProjectStatusUnknown {
		p.Status = domain.ProjectStatusPlanning
	}
	if p.Difficulty == "" {
		p.Difficulty = domain.DifficultyIntermediate
	}
	if p.TimeCommitment == "" {
		p.TimeCommitment = domain.TimeCommitmentPartTime
	}
	if p.RequiredSkills == nil {
		p.RequiredSkills = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	projects := append(slices.Clone(s.projects), p)
	if err := s.repo.SaveProjects(ctx, projects); err != nil {
		s.logger.Error("保存项目快照失败", elog.Int64("pid", id), elog.FieldErr(err))
		return domain.Project{}, fmt.Errorf("保存项目快照失败: %w", err)
	}
	s.projects = projects
	s.projectIdx[p.Id] = len(projects) - 1
	s.refreshTrending(p)
	return s.view(p), nil
}

func (s *Store) ApplyToProject(ctx context.Context, pid int64, uid int64) (err error) {
	defer func() { observe("apply", err) }()
	_, err = s.mutateProject(ctx, pid, func(p *domain.Project) error {
		if _, ok := s.userIdx[uid]; !ok {
			return fmt.Errorf("%w: uid=%d", ErrUserNotFound, uid)
		}
		if p.HasApplied(uid) {
			return errNoChange
		}
		if p.IsOwner(uid) || p.IsMember(uid) {
			return ErrAlreadyMember
		}
		p.ApplicantIds = append(p.ApplicantIds, uid)
		return nil
	})
	if errors.Is(err, errNoChange) {
		return nil
	}
	if err != nil {
		return err
	}
	s.emit(ctx, event.ActionApply, pid, uid)
	return nil
}

func (s *Store) AcceptApplication(ctx context.Context, cmd AcceptApplicationCmd) (err error) {
	defer func() { observe("accept", err) }()
	_, err = s.mutateProject(ctx, cmd.ProjectId, func(p *domain.Project) error {
		if !p.IsOwner(cmd.OperatorId) {
			return ErrPermissionDenied
		}
		idx := slices.Index(p.ApplicantIds, cmd.UserId)
		if idx < 0 {
			return ErrApplicationNotFound
		}
		if p.IsFull() {
			return ErrTeamFull
		}
		p.ApplicantIds = slices.Delete(p.ApplicantIds, idx, idx+1)
		p.TeamMemberIds = append(p.TeamMemberIds, cmd.UserId)
		p.TeamSize = len(p.TeamMemberIds)
		return nil
	})
	if err != nil {
		return err
	}
	s.emit(ctx, event.ActionAccept, cmd.ProjectId, cmd.UserId)
	return nil
}

func (s *Store) UpdateProjectTasks(ctx context.Context, cmd UpdateTasksCmd) (res []domain.Task, err error) {
	defer func() { observe("update_tasks", err) }()
	if err = cmd.Validate(); err != nil {
		return nil, err
	}
	p, err := s.mutateProject(ctx, cmd.ProjectId, func(p *domain.Project) error {
		if !p.IsOwner(cmd.OperatorId) && !p.IsMember(cmd.OperatorId) {
			return ErrPermissionDenied
		}
		old := make(map[int64]domain.Task, len(p.Tasks))
		for _, t := range p.Tasks {
			old[t.Id] = t
		}
		now := s.now().UnixMilli()
		tasks := make([]domain.Task, 0, len(cmd.Tasks))
		for _, t := range cmd.Tasks {
			t = t.Clone()
			if t.Id == 0 {
				id, er := s.idGen.Generate(snowflake.KindTask)
				if er != nil {
					return er
				}
				t.Id = id.Int64()
			}
			t.Ctime = now
			if o, ok := old[t.Id]; ok {
				t.Ctime = o.Ctime
			}
			if t.Status == "" {
				t.Status = domain.TaskStatusTodo
			}
			if t.Priority == "" {
				t.Priority = domain.TaskPriorityMedium
			}
			if t.Labels == nil {
				t.Labels = []string{}
			}
			t.Utime = now
			tasks = append(tasks, t)
		}
		p.Tasks = tasks
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, event.ActionTasks, cmd.ProjectId, cmd.OperatorId)
	return p.Tasks, nil
}

func (s *Store) CreateDiscussion(ctx context.Context, cmd CreateDiscussionCmd) (res domain.Discussion, err error) {
	defer func() { observe("create_discussion", err) }()
	if err = cmd.Validate(); err != nil {
		return domain.Discussion{}, err
	}
	id, err := s.idGen.Generate(snowflake.KindDiscussion)
	if err != nil {
		return domain.Discussion{}, err
	}
	_, err = s.mutateProject(ctx, cmd.ProjectId, func(p *domain.Project) error {
		author, ok := s.user(cmd.AuthorId)
		if !ok {
			return fmt.Errorf("%w: uid=%d", ErrUserNotFound, cmd.AuthorId)
		}
		now := s.now().UnixMilli()
		res = domain.Discussion{
			Id:         id.Int64(),
			Title:      cmd.Title,
			Content:    cmd.Content,
			Tags:       slices.Clone(cmd.Tags),
			AuthorId:   author.Id,
			AuthorName: author.Name,
			Pinned:     cmd.Pinned,
			Replies:    []domain.Reply{},
			Ctime:      now,
			Utime:      now,
		}
		if res.Tags == nil {
			res.Tags = []string{}
		}
		p.Discussions = append(p.Discussions, res)
		s.discussionIdx[res.Id] = p.Id
		return nil
	})
	if err != nil {
		return domain.Discussion{}, err
	}
	s.emit(ctx, event.ActionDiscussion, cmd.ProjectId, cmd.AuthorId)
	return res, nil
}

func (s *Store) ReplyToDiscussion(ctx context.Context, cmd ReplyCmd) (res domain.Reply, err error) {
	defer func() { observe("reply", err) }()
	if err = cmd.Validate(); err != nil {
		return domain.Reply{}, err
	}
	id, err := s.idGen.Generate(snowflake.KindReply)
	if err != nil {
		return domain.Reply{}, err
	}
	s.mu.RLock()
	pid, ok := s.discussionIdx[cmd.DiscussionId]
	s.mu.RUnlock()
	if !ok {
		return domain.Reply{}, fmt.Errorf("%w: id=%d", ErrDiscussionNotFound, cmd.DiscussionId)
	}
	_, err = s.mutateProject(ctx, pid, func(p *domain.Project) error {
		author, ok := s.user(cmd.AuthorId)
		if !ok {
			return fmt.Errorf("%w: uid=%d", ErrUserNotFound, cmd.AuthorId)
		}
		idx := slices.IndexFunc(p.Discussions, func(d domain.Discussion) bool {
			return d.Id == cmd.DiscussionId
		})
		if idx < 0 {
			return fmt.Errorf("%w: id=%d", ErrDiscussionNotFound, cmd.DiscussionId)
		}
		now := s.now().UnixMilli()
		res = domain.Reply{
			Id:         id.Int64(),
			Content:    cmd.Content,
			AuthorId:   author.Id,
			AuthorName: author.Name,
			Ctime:      now,
		}
		d := &p.Discussions[idx]
		d.Replies = append(d.Replies, res)
		d.Utime = now
		return nil
	})
	if err != nil {
		return domain.Reply{}, err
	}
	s.emit(ctx, event.ActionReply, pid, cmd.AuthorId)
	return res, nil
}

func (s *Store) ToggleStar(ctx context.Context, pid int64, uid int64) (starred bool, err error) {
	defer func() { observe("star", err) }()
	_, err = s.mutateProject(ctx, pid, func(p *domain.Project) error {
		idx := slices.Index(p.Stargazers, uid)
		if idx >= 0 {
			p.Stargazers = slices.Delete(p.Stargazers, idx, idx+1)
			starred = false
			return nil
		}
		p.Stargazers = append(p.Stargazers, uid)
		starred = true
		return nil
	})
	if err != nil {
		return false, err
	}
	s.emit(ctx, event.ActionStar, pid, uid)
	return starred, nil
}

// mutateProject 在副本上修改项目，持久化成功之后再替换。
// fn 执行的时候持有写锁
func (s *Store) mutateProject(ctx context.Context, pid int64, fn func(p *domain.Project) error) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.projectIdx[pid]
	if !ok {
		return domain.Project{}, fmt.Errorf("%w: id=%d", ErrProjectNotFound, pid)
	}
	p := s.projects[idx].Clone()
	if err := fn(&p); err != nil {
		return domain.Project{}, err
	}
	p.Utime = s.now().UnixMilli()
	projects := slices.Clone(s.projects)
	projects[idx] = p
	if err := s.repo.SaveProjects(ctx, projects); err != nil {
		s.logger.Error("保存项目快照失败", elog.Int64("pid", pid), elog.FieldErr(err))
		// 讨论索引可能已经被 fn 修改了，按照旧数据恢复
		s.rebuildDiscussionIdx()
		return domain.Project{}, fmt.Errorf("保存项目快照失败: %w", err)
	}
	s.projects = projects
	s.refreshTrending(p)
	return p, nil
}

func (s *Store) rebuildDiscussionIdx() {
	s.discussionIdx = map[int64]int64{}
	for _, p := range s.projects {
		for _, d := range p.Discussions {
			s.discussionIdx[d.Id] = p.Id
		}
	}
}

func (s *Store) List(ctx context.Context, offset int, limit int) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	projects := slices.Clone(s.projects)
	// 最近更新的在前面
	slices.SortStableFunc(projects, func(a, b domain.Project) int {
		return cmp.Compare(b.Utime, a.Utime)
	})
	offset = max(offset, 0)
	if offset >= len(projects) || limit <= 0 {
		return []domain.Project{}, nil
	}
	projects = projects[offset : offset+min(limit, len(projects)-offset)]
	return slice.Map(projects, func(idx int, src domain.Project) domain.Project {
		return s.view(src)
	}), nil
}

func (s *Store) Detail(ctx context.Context, pid int64) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.projectIdx[pid]
	if !ok {
		return domain.Project{}, fmt.Errorf("%w: id=%d", ErrProjectNotFound, pid)
	}
	// 浏览量只改内存，下一次持久化的时候一起写入
	s.projects[idx].ViewCnt++
	p := s.projects[idx]
	if t, ok := s.trending[pid]; ok {
		t.Views = p.ViewCnt
		s.trending[pid] = t
	}
	return s.view(p), nil
}

func (s *Store) SendMessage(ctx context.Context, cmd SendMessageCmd) (res domain.Message, err error) {
	defer func() { observe("send_message", err) }()
	if err = cmd.Validate(); err != nil {
		return domain.Message{}, err
	}
	id, err := s.idGen.Generate(snowflake.KindMessage)
	if err != nil {
		return domain.Message{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sender, ok := s.user(cmd.SenderId)
	if !ok {
		return domain.Message{}, fmt.Errorf("%w: uid=%d", ErrUserNotFound, cmd.SenderId)
	}
	if _, ok = s.projectIdx[cmd.ProjectId]; cmd.ProjectId != 0 && !ok {
		return domain.Message{}, fmt.Errorf("%w: id=%d", ErrProjectNotFound, cmd.ProjectId)
	}
	res = domain.Message{
		Id:         id.Int64(),
		SenderId:   sender.Id,
		SenderName: sender.Name,
		Content:    cmd.Content,
		ProjectId:  cmd.ProjectId,
		Ctime:      s.now().UnixMilli(),
	}
	msgs := append(slices.Clone(s.messages), res)
	if err = s.repo.SaveMessages(ctx, msgs); err != nil {
		s.logger.Error("保存消息快照失败", elog.Int64("uid", cmd.SenderId), elog.FieldErr(err))
		return domain.Message{}, fmt.Errorf("保存消息快照失败: %w", err)
	}
	s.messages = msgs
	return res, nil
}

func (s *Store) ProjectMessages(ctx context.Context, pid int64) ([]domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.projectIdx[pid]; pid != 0 && !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrProjectNotFound, pid)
	}
	return slice.FilterMap(s.messages, func(idx int, src domain.Message) (domain.Message, bool) {
		return src, src.ProjectId == pid
	}), nil
}

func (s *Store) SaveProfile(ctx context.Context, u domain.User) (res domain.User, err error) {
	defer func() { observe("save_profile", err) }()
	if u.Id <= 0 {
		return domain.User{}, fmt.Errorf("%w: 缺少用户 id", ErrInvalidInput)
	}
	if u.Name == "" {
		return domain.User{}, fmt.Errorf("%w: 名字不能为空", ErrInvalidInput)
	}
	if u.Experience != "" && !u.Experience.Valid() {
		return domain.User{}, fmt.Errorf("%w: 未知的经验等级 %s", ErrInvalidInput, u.Experience)
	}
	if u.Availability != "" && !u.Availability.Valid() {
		return domain.User{}, fmt.Errorf("%w: 未知的可用时间 %s", ErrInvalidInput, u.Availability)
	}
	u = u.Clone()
	if u.Skills == nil {
		u.Skills = []string{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	users := slices.Clone(s.users)
	idx, ok := s.userIdx[u.Id]
	if ok {
		u.Ctime = users[idx].Ctime
		users[idx] = u
	} else {
		u.Ctime = s.now().UnixMilli()
		users = append(users, u)
		idx = len(users) - 1
	}
	if err = s.repo.SaveUsers(ctx, users); err != nil {
		s.logger.Error("保存用户快照失败", elog.Int64("uid", u.Id), elog.FieldErr(err))
		return domain.User{}, fmt.Errorf("保存用户快照失败: %w", err)
	}
	s.users = users
	s.userIdx[u.Id] = idx
	return u.Clone(), nil
}

func (s *Store) Profile(ctx context.Context, uid int64) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.user(uid)
	if !ok {
		return domain.User{}, fmt.Errorf("%w: uid=%d", ErrUserNotFound, uid)
	}
	return u.Clone(), nil
}

func (s *Store) RecomputeTrending(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recomputeTrending()
	return nil
}

func (s *Store) TrendingProjects(ctx context.Context, limit int) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	projects := slice.FilterMap(s.projects, func(idx int, src domain.Project) (domain.Project, bool) {
		_, ok := s.trending[src.Id]
		return src, ok
	})
	slices.SortStableFunc(projects, func(a, b domain.Project) int {
		return s.trending[b.Id].Score - s.trending[a.Id].Score
	})
	if limit > 0 && len(projects) > limit {
		projects = projects[:limit]
	}
	return slice.Map(projects, func(idx int, src domain.Project) domain.Project {
		return s.view(src)
	}), nil
}

func (s *Store) Recommendations(ctx context.Context, uid int64) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.user(uid)
	if !ok {
		// 没有资料的用户没法推荐
		return []domain.Project{}, nil
	}
	res := Recommend(u, s.projects, s.cfg.RecommendLimit)
	return slice.Map(res, func(idx int, src domain.Project) domain.Project {
		return s.view(src)
	}), nil
}

// recomputeTrending 全量重算，调用方持有写锁
func (s *Store) recomputeTrending() {
	now := s.now()
	trending := make(map[int64]domain.Trending, len(s.projects))
	for _, p := range s.projects {
		if t, ok := Score(p, now, s.cfg.Trending); ok {
			trending[p.Id] = t
		}
	}
	s.trending = trending
	trendingGauge.Set(float64(len(trending)))
}

func (s *Store) refreshTrending(p domain.Project) {
	if t, ok := Score(p, s.now(), s.cfg.Trending); ok {
		s.trending[p.Id] = t
	} else {
		delete(s.trending, p.Id)
	}
	trendingGauge.Set(float64(len(s.trending)))
}

// view 关联用户数据和热门数据，调用方至少持有读锁
func (s *Store) view(p domain.Project) domain.Project {
	res := p.Clone()
	res.TeamMembers = slice.Map(p.TeamMemberIds, func(idx int, src int64) domain.User {
		return s.userOrPlaceholder(src)
	})
	res.Applicants = slice.Map(p.ApplicantIds, func(idx int, src int64) domain.User {
		return s.userOrPlaceholder(src)
	})
	if t, ok := s.trending[p.Id]; ok {
		res.Trending = &t
	}
	return res
}

func (s *Store) user(uid int64) (domain.User, bool) {
	idx, ok := s.userIdx[uid]
	if !ok {
		return domain.User{}, false
	}
	return s.users[idx], true
}

func (s *Store) userOrPlaceholder(uid int64) domain.User {
	if u, ok := s.user(uid); ok {
		return u.Clone()
	}
	return domain.User{Id: uid}
}

func (s *Store) emit(ctx context.Context, action string, pid int64, uid int64) {
	err := s.producer.Produce(ctx, event.ProjectEvent{
		Action: action,
		Pid:    pid,
		Uid:    uid,
		Ctime:  s.now().UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送项目事件失败",
			elog.String("action", action),
			elog.Int64("pid", pid),
			elog.FieldErr(err))
	}
}
