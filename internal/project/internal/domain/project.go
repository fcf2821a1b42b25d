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

package domain

import "github.com/ecodeclub/ekit/slice"

type Project struct {
	Id             int64
	Title          string
	Desc           string
	Type           ProjectType
	Status         ProjectStatus
	RequiredSkills []string
	// TeamSize 始终等于 len(TeamMemberIds)，包含 owner
	TeamSize    int
	MaxTeamSize int
	Timeline    string
	// Budget 为 nil 表示没有预算
	Budget         *float64
	Difficulty     Difficulty
	TimeCommitment TimeCommitment
	OwnerId        int64

	// 只存 id，展示数据在读取的时候关联 User 集合
	TeamMemberIds []int64
	ApplicantIds  []int64
	TeamMembers   []User
	Applicants    []User

	Tasks       []Task
	Discussions []Discussion
	Stargazers  []int64
	ViewCnt     int64

	// Trending 只有分数超过阈值才有
	Trending *Trending

	Ctime int64
	Utime int64
}

func (p Project) IsOwner(uid int64) bool {
	return p.OwnerId == uid
}

func (p Project) IsMember(uid int64) bool {
	return slice.Contains(p.TeamMemberIds, uid)
}

func (p Project) HasApplied(uid int64) bool {
	return slice.Contains(p.ApplicantIds, uid)
}

func (p Project) IsFull() bool {
	return p.TeamSize >= p.MaxTeamSize
}

// Clone 深拷贝，修改副本不会影响原本的数据
func (p Project) Clone() Project {
	res := p
	res.RequiredSkills = cloneSlice(p.RequiredSkills)
	res.TeamMemberIds = cloneSlice(p.TeamMemberIds)
	res.ApplicantIds = cloneSlice(p.ApplicantIds)
	res.Stargazers = cloneSlice(p.Stargazers)
	res.TeamMembers = nil
	res.Applicants = nil
	if p.Budget != nil {
		budget := *p.Budget
		res.Budget = &budget
	}
	if p.Trending != nil {
		t := *p.Trending
		res.Trending = &t
	}
	if p.Tasks != nil {
		res.Tasks = make([]Task, 0, len(p.Tasks))
		for _, t := range p.Tasks {
			res.Tasks = append(res.Tasks, t.Clone())
		}
	}
	if p.Discussions != nil {
		res.Discussions = make([]Discussion, 0, len(p.Discussions))
		for _, d := range p.Discussions {
			res.Discussions = append(res.Discussions, d.Clone())
		}
	}
	return res
}

type ProjectType uint8

func (t ProjectType) ToUint8() uint8 {
	return uint8(t)
}

func (t ProjectType) Valid() bool {
	return t >= ProjectTypeOpenSource && t <= ProjectTypePersonal
}

const (
	ProjectTypeUnknown ProjectType = iota
	ProjectTypeOpenSource
	ProjectTypeFreelance
	ProjectTypeStartup
	ProjectTypePersonal
)

type ProjectStatus uint8

func (s ProjectStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	ProjectStatusUnknown ProjectStatus = iota
	ProjectStatusPlanning
	ProjectStatusInProgress
	ProjectStatusCompleted
	ProjectStatusOnHold
)

func (s ProjectStatus) Valid() bool {
	return s >= ProjectStatusPlanning && s <= ProjectStatusOnHold
}

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type TimeCommitment string

const (
	TimeCommitmentFullTime TimeCommitment = "full-time"
	TimeCommitmentPartTime TimeCommitment = "part-time"
	TimeCommitmentWeekends TimeCommitment = "weekends"
	TimeCommitmentFlexible TimeCommitment = "flexible"
)

func (t TimeCommitment) Valid() bool {
	switch t {
	case TimeCommitmentFullTime, TimeCommitmentPartTime, TimeCommitmentWeekends, TimeCommitmentFlexible:
		return true
	}
	return false
}

type Task struct {
	Id         int64
	Title      string
	Desc       string
	Status     TaskStatus
	Priority   TaskPriority
	AssigneeId int64
	// DueDate 0 表示没有截止时间
	DueDate int64
	Labels  []string
	Ctime   int64
	Utime   int64
}

func (t Task) Clone() Task {
	res := t
	res.Labels = cloneSlice(t.Labels)
	return res
}

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Discussion struct {
	Id         int64
	Title      string
	Content    string
	Tags       []string
	AuthorId   int64
	AuthorName string
	Pinned     bool
	Replies    []Reply
	Ctime      int64
	Utime      int64
}

func (d Discussion) Clone() Discussion {
	res := d
	res.Tags = cloneSlice(d.Tags)
	res.Replies = cloneSlice(d.Replies)
	return res
}

// Reply 只能追加，不能修改
type Reply struct {
	Id         int64
	Content    string
	AuthorId   int64
	AuthorName string
	Ctime      int64
}

func cloneSlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	res := make([]T, len(src))
	copy(res, src)
	return res
}
