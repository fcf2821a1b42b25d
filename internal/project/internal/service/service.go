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

	"github.com/ecodeclub/devcollab/internal/project/internal/domain"
)

//go:generate mockgen -source=./service.go -package=svcmocks -destination=./mocks/service.mock.go Service
type Service interface {
	// Load 从持久化存储里面恢复所有集合，启动的时候调用一次
	Load(ctx context.Context) error

	CreateProject(ctx context.Context, cmd CreateProjectCmd) (domain.Project, error)
	// ApplyToProject 重复申请不会报错，也不会产生重复记录
	ApplyToProject(ctx context.Context, pid int64, uid int64) error
	// AcceptApplication 团队满了返回 ErrTeamFull，数据不会有任何变化
	AcceptApplication(ctx context.Context, cmd AcceptApplicationCmd) error
	UpdateProjectTasks(ctx context.Context, cmd UpdateTasksCmd) ([]domain.Task, error)
	CreateDiscussion(ctx context.Context, cmd CreateDiscussionCmd) (domain.Discussion, error)
	ReplyToDiscussion(ctx context.Context, cmd ReplyCmd) (domain.Reply, error)
	// ToggleStar 返回操作之后是否处于收藏状态
	ToggleStar(ctx context.Context, pid int64, uid int64) (bool, error)

	List(ctx context.Context, offset int, limit int) ([]domain.Project, error)
	// Detail 会增加浏览量
	Detail(ctx context.Context, pid int64) (domain.Project, error)

	SendMessage(ctx context.Context, cmd SendMessageCmd) (domain.Message, error)
	// ProjectMessages pid 为 0 的时候返回全局消息
	ProjectMessages(ctx context.Context, pid int64) ([]domain.Message, error)

	SaveProfile(ctx context.Context, u domain.User) (domain.User, error)
	Profile(ctx context.Context, uid int64) (domain.User, error)

	RecomputeTrending(ctx context.Context) error
	TrendingProjects(ctx context.Context, limit int) ([]domain.Project, error)
	Recommendations(ctx context.Context, uid int64) ([]domain.Project, error)
}
