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
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/devcollab/internal/pkg/snowflake"
	"github.com/ecodeclub/devcollab/internal/project/internal/event"
	"github.com/ecodeclub/devcollab/internal/project/internal/job"
	"github.com/ecodeclub/devcollab/internal/project/internal/repository"
	"github.com/ecodeclub/devcollab/internal/project/internal/repository/cache"
	"github.com/ecodeclub/devcollab/internal/project/internal/repository/dao"
	"github.com/ecodeclub/devcollab/internal/project/internal/service"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

var (
	snapshotDAO     dao.SnapshotDAO
	snapshotDAOOnce sync.Once
)

func initSnapshotDAO(db *egorm.Component) dao.SnapshotDAO {
	snapshotDAOOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		snapshotDAO = dao.NewGORMSnapshotDAO(db)
	})
	return snapshotDAO
}

func initSnapshotCache(ec ecache.Cache) cache.SnapshotCache {
	return cache.NewBreakerSnapshotCache(cache.NewSnapshotCache(ec))
}

// initConfig 没有配置 project 的时候使用默认权重
func initConfig() service.Config {
	cfg := service.DefaultConfig()
	if econf.Get("project") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("project", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initService(repo repository.SnapshotRepository,
	producer event.ProjectEventProducer,
	idGen snowflake.Generator,
	cfg service.Config) (service.Service, error) {
	svc := service.NewStore(repo, producer, idGen, cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

func initRecomputeTrendingJob(svc service.Service) *job.RecomputeTrendingJob {
	return job.NewRecomputeTrendingJob(svc, time.Minute)
}
