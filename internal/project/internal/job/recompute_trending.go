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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/devcollab/internal/project/internal/service"
)

// RecomputeTrendingJob 没有任何变更的项目，热门分数也会随着时间衰减，所以要定时重算
type RecomputeTrendingJob struct {
	svc     service.Service
	timeout time.Duration
}

func NewRecomputeTrendingJob(svc service.Service, timeout time.Duration) *RecomputeTrendingJob {
	return &RecomputeTrendingJob{svc: svc, timeout: timeout}
}

func (j *RecomputeTrendingJob) Name() string {
	return "RecomputeTrendingJob"
}

func (j *RecomputeTrendingJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	if err := j.svc.RecomputeTrending(ctx); err != nil {
		return fmt.Errorf("重算热门项目失败: %w", err)
	}
	return nil
}
