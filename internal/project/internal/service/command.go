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
	"fmt"
	"strings"

	"github.com/ecodeclub/devcollab/internal/project/internal/domain"
)

type CreateProjectCmd struct {
	OwnerId        int64
	Title          string
	Desc           string
	Type           domain.ProjectType
	Status         domain.ProjectStatus
	RequiredSkills []string
	MaxTeamSize    int
	Timeline       string
	Budget         *float64
	Difficulty     domain.Difficulty
	TimeCommitment domain.TimeCommitment
}

func (c CreateProjectCmd) Validate() error {
	switch {
	case c.OwnerId <= 0:
		return fmt.Errorf("%w: 缺少创建者", ErrInvalidInput)
	case strings.TrimSpace(c.Title) == "":
		return fmt.Errorf("%w: 标题不能为空", ErrInvalidInput)
	case strings.TrimSpace(c.Desc) == "":
		return fmt.Errorf("%w: 描述不能为空", ErrInvalidInput)
	case !c.Type.Valid():
		return fmt.Errorf("%w: 未知的项目类型 %d", ErrInvalidInput, c.Type)
	case c.Status != domain.ProjectStatusUnknown && !c.Status.Valid():
		return fmt.Errorf("%w: 未知的项目状态 %d", ErrInvalidInput, c.Status)
	case c.Difficulty != "" && !c.Difficulty.Valid():
		return fmt.Errorf("%w: 未知的难度 %s", ErrInvalidInput, c.Difficulty)
	case c.TimeCommitment != "" && !c.TimeCommitment.Valid():
		return fmt.Errorf("%w: 未知的时间投入 %s", ErrInvalidInput, c.TimeCommitment)
	case c.MaxTeamSize < 1:
		return fmt.Errorf("%w: 团队人数上限至少为 1", ErrInvalidInput)
	case c.Budget != nil && *c.Budget < 0:
		return fmt.Errorf("%w: 预算不能为负数", ErrInvalidInput)
	}
	return nil
}

type AcceptApplicationCmd struct {
	ProjectId int64
	// OperatorId 必须是项目的 owner
	OperatorId int64
	UserId     int64
}

type SendMessageCmd struct {
	SenderId  int64
	Content   string
	ProjectId int64
}

func (c SendMessageCmd) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("%w: 消息内容不能为空", ErrInvalidInput)
	}
	return nil
}

// UpdateTasksCmd 整体替换任务列表，调用方要传完整的列表
type UpdateTasksCmd struct {
	ProjectId  int64
	OperatorId int64
	Tasks      []domain.Task
}

func (c UpdateTasksCmd) Validate() error {
	for _, t := range c.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("%w: 任务标题不能为空", ErrInvalidInput)
		}
		if t.Status != "" && !t.Status.Valid() {
			return fmt.Errorf("%w: 未知的任务状态 %s", ErrInvalidInput, t.Status)
		}
		if t.Priority != "" && !t.Priority.Valid() {
			return fmt.Errorf("%w: 未知的任务优先级 %s", ErrInvalidInput, t.Priority)
		}
	}
	return nil
}

type CreateDiscussionCmd struct {
	ProjectId int64
	AuthorId  int64
	Title     string
	Content   string
	Tags      []string
	Pinned    bool
}

func (c CreateDiscussionCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("%w: 讨论标题和内容不能为空", ErrInvalidInput)
	}
	return nil
}

type ReplyCmd struct {
	DiscussionId int64
	AuthorId     int64
	Content      string
}

func (c ReplyCmd) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("%w: 回复内容不能为空", ErrInvalidInput)
	}
	return nil
}
