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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &MessageHandler{}

type MessageHandler struct {
	svc service.Service
}

func NewMessageHandler(svc service.Service) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func (h *MessageHandler) PublicRoutes(server *gin.Engine) {}

func (h *MessageHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/message")
	g.POST("/send", ginx.BS[SendMessageReq](h.Send))
	g.POST("/list", ginx.B[MessageListReq](h.List))
}

func (h *MessageHandler) Send(ctx *ginx.Context, req SendMessageReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.SendMessage(ctx, service.SendMessageCmd{
		SenderId:  sess.Claims().Uid,
		Content:   req.Content,
		ProjectId: req.Pid,
	})
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newMessage(0, res),
	}, nil
}

func (h *MessageHandler) List(ctx *ginx.Context, req MessageListReq) (ginx.Result, error) {
	res, err := h.svc.ProjectMessages(ctx, req.Pid)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: slice.Map(res, newMessage),
	}, nil
}
