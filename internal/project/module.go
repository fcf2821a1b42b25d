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

package project

import (
	"github.com/ecodeclub/devcollab/internal/project/internal/consumer"
	"github.com/ecodeclub/devcollab/internal/project/internal/domain"
	"github.com/ecodeclub/devcollab/internal/project/internal/job"
	"github.com/ecodeclub/devcollab/internal/project/internal/service"
	"github.com/ecodeclub/devcollab/internal/project/internal/web"
)

type Module struct {
	Hdl         *Handler
	MsgHdl      *MessageHandler
	ProfileHdl  *ProfileHandler
	Svc         Service
	Consumer    *TrendingConsumer
	TrendingJob *RecomputeTrendingJob
}

type (
	Handler              = web.Handler
	MessageHandler       = web.MessageHandler
	ProfileHandler       = web.ProfileHandler
	Service              = service.Service
	TrendingConsumer     = consumer.TrendingConsumer
	RecomputeTrendingJob = job.RecomputeTrendingJob

	Project  = domain.Project
	User     = domain.User
	Message  = domain.Message
	Trending = domain.Trending
)
