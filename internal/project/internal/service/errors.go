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

import "errors"

var (
	ErrProjectNotFound     = errors.New("项目不存在")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrDiscussionNotFound  = errors.New("讨论不存在")
	ErrApplicationNotFound = errors.New("申请不存在")
	ErrTeamFull            = errors.New("团队人数已满")
	ErrAlreadyMember       = errors.New("已经是团队成员")
	ErrPermissionDenied    = errors.New("没有权限")
	ErrInvalidInput        = errors.New("参数错误")
)
