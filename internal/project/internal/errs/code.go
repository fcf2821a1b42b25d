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

package errs

var (
	SystemError = ErrorCode{Code: 504001, Msg: "系统错误"}
	// 业务错误，前端直接展示 Msg
	ProjectNotFound     = ErrorCode{Code: 504002, Msg: "项目不存在"}
	UserNotFound        = ErrorCode{Code: 504003, Msg: "用户资料不存在，请先完善资料"}
	DiscussionNotFound  = ErrorCode{Code: 504004, Msg: "讨论不存在"}
	ApplicationNotFound = ErrorCode{Code: 504005, Msg: "申请不存在"}
	TeamFull            = ErrorCode{Code: 504006, Msg: "团队人数已满"}
	AlreadyMember       = ErrorCode{Code: 504007, Msg: "已经是团队成员"}
	PermissionDenied    = ErrorCode{Code: 504008, Msg: "没有权限"}
	InvalidInput        = ErrorCode{Code: 504009, Msg: "参数错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
