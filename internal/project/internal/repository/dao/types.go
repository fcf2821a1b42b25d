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

package dao

// CollectionSnapshot 集合快照，Val 是整个集合序列化之后的 JSON 数组
type CollectionSnapshot struct {
	Name string `gorm:"primaryKey;type:varchar(64)"`
	Val  string `gorm:"type:longtext"`
	// Version 每次写入加一，用来判断缓存是否过期
	Version int64
	Ctime   int64
	Utime   int64
}

// 以下是快照里面的实体，字段名是持久化格式的一部分，不要随便改

type Project struct {
	Id             int64        `json:"id"`
	Title          string       `json:"title"`
	Desc           string       `json:"desc"`
	Type           uint8        `json:"type"`
	Status         uint8        `json:"status"`
	RequiredSkills []string     `json:"requiredSkills"`
	TeamSize       int          `json:"teamSize"`
	MaxTeamSize    int          `json:"maxTeamSize"`
	Timeline       string       `json:"timeline"`
	Budget         *float64     `json:"budget,omitempty"`
	Difficulty     string       `json:"difficulty"`
	TimeCommitment string       `json:"timeCommitment"`
	OwnerId        int64        `json:"ownerId"`
	TeamMemberIds  []int64      `json:"teamMemberIds"`
	ApplicantIds   []int64      `json:"applicantIds"`
	Tasks          []Task       `json:"tasks"`
	Discussions    []Discussion `json:"discussions"`
	Stargazers     []int64      `json:"stargazers"`
	ViewCnt        int64        `json:"viewCnt"`
	Ctime          int64        `json:"ctime"`
	Utime          int64        `json:"utime"`
}

type Task struct {
	Id         int64    `json:"id"`
	Title      string   `json:"title"`
	Desc       string   `json:"desc"`
	Status     string   `json:"status"`
	Priority   string   `json:"priority"`
	AssigneeId int64    `json:"assigneeId,omitempty"`
	DueDate    int64    `json:"dueDate,omitempty"`
	Labels     []string `json:"labels"`
	Ctime      int64    `json:"ctime"`
	Utime      int64    `json:"utime"`
}

type Discussion struct {
	Id         int64    `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	AuthorId   int64    `json:"authorId"`
	AuthorName string   `json:"authorName"`
	Pinned     bool     `json:"pinned"`
	Replies    []Reply  `json:"replies"`
	Ctime      int64    `json:"ctime"`
	Utime      int64    `json:"utime"`
}

type Reply struct {
	Id         int64  `json:"id"`
	Content    string `json:"content"`
	AuthorId   int64  `json:"authorId"`
	AuthorName string `json:"authorName"`
	Ctime      int64  `json:"ctime"`
}

type User struct {
	Id           int64       `json:"id"`
	Name         string      `json:"name"`
	Avatar       string      `json:"avatar"`
	Skills       []string    `json:"skills"`
	Experience   string      `json:"experience"`
	Availability string      `json:"availability"`
	Bio          string      `json:"bio"`
	Location     string      `json:"location"`
	SocialLinks  SocialLinks `json:"socialLinks"`
	HourlyRate   *float64    `json:"hourlyRate,omitempty"`
	Ctime        int64       `json:"ctime"`
}

type SocialLinks struct {
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

type Message struct {
	Id         int64  `json:"id"`
	SenderId   int64  `json:"senderId"`
	SenderName string `json:"senderName"`
	Content    string `json:"content"`
	ProjectId  int64  `json:"projectId,omitempty"`
	Ctime      int64  `json:"ctime"`
}
