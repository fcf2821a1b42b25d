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
	"github.com/ecodeclub/devcollab/internal/project/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const defaultTrendingLimit = 10

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/project")
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[IdReq](h.Detail))
	g.POST("/trending", ginx.B[LimitReq](h.Trending))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/project")
	g.POST("/create", ginx.BS[CreateProjectReq](h.Create))
	g.POST("/apply", ginx.BS[IdReq](h.Apply))
	g.POST("/accept", ginx.BS[AcceptReq](h.Accept))
	g.POST("/tasks/save", ginx.BS[SaveTasksReq](h.SaveTasks))
	g.POST("/discussion/create", ginx.BS[CreateDiscussionReq](h.CreateDiscussion))
	g.POST("/discussion/reply", ginx.BS[ReplyReq](h.Reply))
	g.POST("/star", ginx.BS[IdReq](h.Star))
	g.POST("/recommend", ginx.S(h.Recommend))
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	res, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(res, func(idx int, src domain.Project) Project {
			return newProject(src)
		}),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	res, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newProject(res),
	}, nil
}

func (h *Handler) Trending(ctx *ginx.Context, req LimitReq) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultTrendingLimit
	}
	res, err := h.svc.TrendingProjects(ctx, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(res, func(idx int, src domain.Project) Project {
			return newProject(src)
		}),
	}, nil
}

func (h *Handler) Create(ctx *ginx.Context, req CreateProjectReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.CreateProject(ctx, service.CreateProjectCmd{
		OwnerId:        sess.Claims().Uid,
		Title:          req.Title,
		Desc:           req.Desc,
		Type:           domain.ProjectType(req.Type),
		Status:         domain.ProjectStatus(req.Status),
		RequiredSkills: req.RequiredSkills,
		MaxTeamSize:    req.MaxTeamSize,
		Timeline:       req.Timeline,
		Budget:         req.Budget,
		Difficulty:     domain.Difficulty(req.Difficulty),
		TimeCommitment: domain.TimeCommitment(req.TimeCommitment),
	})
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newProject(res),
	}, nil
}

func (h *Handler) Apply(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.ApplyToProject(ctx, req.Id, sess.Claims().Uid)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) Accept(ctx *ginx.Context, req AcceptReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.AcceptApplication(ctx, service.AcceptApplicationCmd{
		ProjectId:  req.Pid,
		OperatorId: sess.Claims().Uid,
		UserId:     req.Uid,
	})
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{}, nil
}

func (h *Handler) SaveTasks(ctx *ginx.Context, req SaveTasksReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.UpdateProjectTasks(ctx, service.UpdateTasksCmd{
		ProjectId:  req.Pid,
		OperatorId: sess.Claims().Uid,
		Tasks: slice.Map(req.Tasks, func(idx int, src Task) domain.Task {
			return src.toDomain()
		}),
	})
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: slice.Map(res, newTask),
	}, nil
}

func (h *Handler) CreateDiscussion(ctx *ginx.Context, req CreateDiscussionReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.CreateDiscussion(ctx, service.CreateDiscussionCmd{
		ProjectId: req.Pid,
		AuthorId:  sess.Claims().Uid,
		Title:     req.Title,
		Content:   req.Content,
		Tags:      req.Tags,
		Pinned:    req.Pinned,
	})
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newDiscussion(0, res),
	}, nil
}

func (h *Handler) Reply(ctx *ginx.Context, req ReplyReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.ReplyToDiscussion(ctx, service.ReplyCmd{
		DiscussionId: req.DiscussionId,
		AuthorId:     sess.Claims().Uid,
		Content:      req.Content,
	})
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newReply(0, res),
	}, nil
}

func (h *Handler) Star(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	starred, err := h.svc.ToggleStar(ctx, req.Id, sess.Claims().Uid)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: StarResult{Starred: starred},
	}, nil
}

func (h *Handler) Recommend(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Recommendations(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(res, func(idx int, src domain.Project) Project {
			return newProject(src)
		}),
	}, nil
}
