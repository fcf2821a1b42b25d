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

//go:build wireinject

package project

import (
	"github.com/ecodeclub/devcollab/internal/pkg/snowflake"
	"github.com/ecodeclub/devcollab/internal/project/internal/consumer"
	"github.com/ecodeclub/devcollab/internal/project/internal/event"
	"github.com/ecodeclub/devcollab/internal/project/internal/repository"
	"github.com/ecodeclub/devcollab/internal/project/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	idGen snowflake.Generator) (*Module, error) {
	wire.Build(
		initSnapshotDAO,
		initSnapshotCache,
		repository.NewCachedSnapshotRepository,
		event.NewProjectEventProducer,
		initConfig,
		initService,
		consumer.NewTrendingConsumer,
		initRecomputeTrendingJob,
		web.NewHandler,
		web.NewMessageHandler,
		web.NewProfileHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
