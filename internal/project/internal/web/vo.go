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

package web

import (
	"github.com/ecodeclub/devcollab/internal/project/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type LimitReq struct {
	Limit int `json:"limit,omitempty"`
}

type CreateProjectReq struct {
	Title          string   `json:"title"`
	Desc           string   `json:"desc"`
	Type           uint8    `json:"type"`
	Status         uint8    `json:"status,omitempty"`
	RequiredSkills []string `json:"requiredSkills,omitempty"`
	MaxTeamSize    int      `json:"maxTeamSize"`
	Timeline       string   `json:"timeline,omitempty"`
	Budget         *float64 `json:"budget,omitempty"`
	Difficulty     string   `json:"difficulty,omitempty"`
	TimeCommitment string   `json:"timeCommitment,omitempty"`
}

type AcceptReq struct {
	Pid int64 `json:"pid"`
	Uid int64 `json:"uid"`
}

type SaveTasksReq struct {
	Pid   int64  `json:"pid"`
	Tasks []Task `json:"tasks"`
}

type CreateDiscussionReq struct {
	Pid     int64    `json:"pid"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
	Pinned  bool     `json:"pinned,omitempty"`
}

type ReplyReq struct {
	DiscussionId int64  `json:"discussionId"`
	Content      string `json:"content"`
}

type SendMessageReq struct {
	// Pid 不传就是全局消息
	Pid     int64  `json:"pid,omitempty"`
	Content string `json:"content"`
}

type MessageListReq struct {
	Pid int64 `json:"pid,omitempty"`
}

type StarResult struct {
	Starred bool `json:"starred"`
}

type Project struct {
	Id             int64        `json:"id,omitempty"`
	Title          string       `json:"title,omitempty"`
	Desc           string       `json:"desc,omitempty"`
	Type           uint8        `json:"type,omitempty"`
	Status         uint8        `json:"status,omitempty"`
	RequiredSkills []string     `json:"requiredSkills,omitempty"`
	TeamSize       int          `json:"teamSize,omitempty"`
	MaxTeamSize    int          `json:"maxTeamSize,omitempty"`
	Timeline       string       `json:"timeline,omitempty"`
	Budget         *float64     `json:"budget,omitempty"`
	Difficulty     string       `json:"difficulty,omitempty"`
	TimeCommitment string       `json:"timeCommitment,omitempty"`
	OwnerId        int64        `json:"ownerId,omitempty"`
	TeamMembers    []User       `json:"teamMembers,omitempty"`
	Applicants     []User       `json:"applicants,omitempty"`
	Tasks          []Task       `json:"tasks,omitempty"`
	Discussions    []Discussion `json:"discussions,omitempty"`
	Stars          int          `json:"stars,omitempty"`
	ViewCnt        int64        `json:"viewCnt,omitempty"`
	Trending       *Trending    `json:"trending,omitempty"`
	Ctime          int64        `json:"ctime,omitempty"`
	Utime          int64        `json:"utime,omitempty"`
}

func newProject(p domain.Project) Project {
	res := Project{
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
		TeamMembers:    slice.Map(p.TeamMembers, newUser),
		Applicants:     slice.Map(p.Applicants, newUser),
		Tasks:          slice.Map(p.Tasks, newTask),
		Discussions:    slice.Map(p.Discussions, newDiscussion),
		Stars:          len(p.Stargazers),
		ViewCnt:        p.ViewCnt,
		Ctime:          p.Ctime,
		Utime:          p.Utime,
	}
	if p.Trending != nil {
		res.Trending = &Trending{
			Score:          p.Trending.Score,
			Views:          p.Trending.Views,
			Applications:   p.Trending.Applications,
			Stars:          p.Trending.Stars,
			IsActive:       p.Trending.IsActive,
			LastCalculated: p.Trending.LastCalculated,
		}
	}
	return res
}

type Trending struct {
	Score          int   `json:"score"`
	Views          int64 `json:"views"`
	Applications   int   `json:"applications"`
	Stars          int   `json:"stars"`
	IsActive       bool  `json:"isActive"`
	LastCalculated int64 `json:"lastCalculated"`
}

type Task struct {
	Id         int64    `json:"id,omitempty"`
	Title      string   `json:"title,omitempty"`
	Desc       string   `json:"desc,omitempty"`
	Status     string   `json:"status,omitempty"`
	Priority   string   `json:"priority,omitempty"`
	AssigneeId int64    `json:"assigneeId,omitempty"`
	DueDate    int64    `json:"dueDate,omitempty"`
	Labels     []string `json:"labels,omitempty"`
	Ctime      int64    `json:"ctime,omitempty"`
	Utime      int64    `json:"utime,omitempty"`
}

func newTask(idx int, t domain.Task) Task {
	return Task{
		Id:         t.Id,
		Title:      t.Title,
		Desc:       t.Desc,
		Status:     string(t.Status),
		Priority:   string(t.Priority),
		AssigneeId: t.AssigneeId,
		DueDate:    t.DueDate,
		Labels:     t.Labels,
		Ctime:      t.Ctime,
		Utime:      t.Utime,
	}
}

func (t Task) toDomain() domain.Task {
	return domain.Task{
		Id:         t.Id,
		Title:      t.Title,
		Desc:       t.Desc,
		Status:     domain.TaskStatus(t.Status),
		Priority:   domain.TaskPriority(t.Priority),
		AssigneeId: t.AssigneeId,
		DueDate:    t.DueDate,
		Labels:     t.Labels,
	}
}

type Discussion struct {
	Id         int64    `json:"id,omitempty"`
	Title      string   `json:"title,omitempty"`
	Content    string   `json:"content,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	AuthorId   int64    `json:"authorId,omitempty"`
	AuthorName string   `json:"authorName,omitempty"`
	Pinned     bool     `json:"pinned,omitempty"`
	Replies    []Reply  `json:"replies,omitempty"`
	Ctime      int64    `json:"ctime,omitempty"`
	Utime      int64    `json:"utime,omitempty"`
}

func newDiscussion(idx int, d domain.Discussion) Discussion {
	return Discussion{
		Id:         d.Id,
		Title:      d.Title,
		Content:    d.Content,
		Tags:       d.Tags,
		AuthorId:   d.AuthorId,
		AuthorName: d.AuthorName,
		Pinned:     d.Pinned,
		Replies:    slice.Map(d.Replies, newReply),
		Ctime:      d.Ctime,
		Utime:      d.Utime,
	}
}

type Reply struct {
	Id         int64  `json:"id,omitempty"`
	Content    string `json:"content,omitempty"`
	AuthorId   int64  `json:"authorId,omitempty"`
	AuthorName string `json:"authorName,omitempty"`
	Ctime      int64  `json:"ctime,omitempty"`
}

func newReply(idx int, r domain.Reply) Reply {
	return Reply{
		Id:         r.Id,
		Content:    r.Content,
		AuthorId:   r.AuthorId,
		AuthorName: r.AuthorName,
		Ctime:      r.Ctime,
	}
}

type Message struct {
	Id         int64  `json:"id,omitempty"`
	SenderId   int64  `json:"senderId,omitempty"`
	SenderName string `json:"senderName,omitempty"`
	Content    string `json:"content,omitempty"`
	Pid        int64  `json:"pid,omitempty"`
	Ctime      int64  `json:"ctime,omitempty"`
}

func newMessage(idx int, m domain.Message) Message {
	return Message{
		Id:         m.Id,
		SenderId:   m.SenderId,
		SenderName: m.SenderName,
		Content:    m.Content,
		Pid:        m.ProjectId,
		Ctime:      m.Ctime,
	}
}

type User struct {
	Id           int64       `json:"id,omitempty"`
	Name         string      `json:"name,omitempty"`
	Avatar       string      `json:"avatar,omitempty"`
	Skills       []string    `json:"skills,omitempty"`
	Experience   string      `json:"experience,omitempty"`
	Availability string      `json:"availability,omitempty"`
	Bio          string      `json:"bio,omitempty"`
	Location     string      `json:"location,omitempty"`
	SocialLinks  SocialLinks `json:"socialLinks"`
	HourlyRate   *float64    `json:"hourlyRate,omitempty"`
	Ctime        int64       `json:"ctime,omitempty"`
}

type SocialLinks struct {
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

func newUser(idx int, u domain.User) User {
	return User{
		Id:           u.Id,
		Name:         u.Name,
		Avatar:       u.Avatar,
		Skills:       u.Skills,
		Experience:   string(u.Experience),
		Availability: string(u.Availability),
		Bio:          u.Bio,
		Location:     u.Location,
		SocialLinks:  SocialLinks(u.SocialLinks),
		HourlyRate:   u.HourlyRate,
		Ctime:        u.Ctime,
	}
}

// toDomain 用户 id 以登录态为准
func (u User) toDomain(uid int64) domain.User {
	return domain.User{
		Id:           uid,
		Name:         u.Name,
		Avatar:       u.Avatar,
		Skills:       u.Skills,
		Experience:   domain.Experience(u.Experience),
		Availability: domain.Availability(u.Availability),
		Bio:          u.Bio,
		Location:     u.Location,
		SocialLinks:  domain.SocialLinks(u.SocialLinks),
		HourlyRate:   u.HourlyRate,
	}
}
