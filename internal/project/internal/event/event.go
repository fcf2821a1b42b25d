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

package event

const ProjectEventTopic = "project_events"

const (
	ActionCreate     = "create"
	ActionApply      = "apply"
	ActionAccept     = "accept"
	ActionTasks      = "tasks"
	ActionDiscussion = "discussion"
	ActionReply      = "reply"
	ActionStar       = "star"
)

// ProjectEvent 项目发生了变更，消费者据此重算派生数据
type ProjectEvent struct {
	Action string `json:"action"`
	Pid    int64  `json:"pid"`
	// Uid 触发变更的用户
	Uid   int64 `json:"uid"`
	Ctime int64 `json:"ctime"`
}
