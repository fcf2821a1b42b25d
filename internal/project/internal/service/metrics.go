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

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mutationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devcollab",
		Subsystem: "project_store",
		Name:      "mutations_total",
		Help:      "项目存储的变更次数",
	}, []string{"op", "result"})

	trendingGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "devcollab",
		Subsystem: "project_store",
		Name:      "trending_projects",
		Help:      "当前热门项目的数量",
	})
)

func observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	mutationCounter.WithLabelValues(op, result).Inc()
}
