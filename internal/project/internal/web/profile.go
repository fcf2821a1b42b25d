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
	"github.com/ecodeclub/devcollab/internal/project/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &ProfileHandler{}

// ProfileHandler 用户在协作平台上的资料，登录本身由外部负责
type ProfileHandler struct {
	svc service.Service
}

func NewProfileHandler(svc service.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) PublicRoutes(server *gin.Engine) {}

func (h *ProfileHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/profile")
	g.POST("/save", ginx.BS[User](h.Save))
	g.POST("/detail", ginx.S(h.Detail))
}

func (h *ProfileHandler) Save(ctx *ginx.Context, req User, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.SaveProfile(ctx, req.toDomain(sess.Claims().Uid))
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newUser(0, res),
	}, nil
}

func (h *ProfileHandler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newUser(0, res),
	}, nil
}
