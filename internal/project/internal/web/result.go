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
	"errors"

	"github.com/ecodeclub/devcollab/internal/project/internal/errs"
	"github.com/ecodeclub/devcollab/internal/project/internal/service"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

var bizErrors = []struct {
	err  error
	code errs.ErrorCode
}{
	{err: service.ErrProjectNotFound, code: errs.ProjectNotFound},
	{err: service.ErrUserNotFound, code: errs.UserNotFound},
	{err: service.ErrDiscussionNotFound, code: errs.DiscussionNotFound},
	{err: service.ErrApplicationNotFound, code: errs.ApplicationNotFound},
	{err: service.ErrTeamFull, code: errs.TeamFull},
	{err: service.ErrAlreadyMember, code: errs.AlreadyMember},
	{err: service.ErrPermissionDenied, code: errs.PermissionDenied},
	{err: service.ErrInvalidInput, code: errs.InvalidInput},
}

// errResult 业务错误直接返回给前端，其余的按照系统错误处理
func errResult(err error) (ginx.Result, error) {
	for _, be := range bizErrors {
		if errors.Is(err, be.err) {
			return ginx.Result{Code: be.code.Code, Msg: be.code.Msg}, nil
		}
	}
	return systemErrorResult, err
}
