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

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// breakerSnapshotCache Redis 出问题的时候熔断，直接走数据库，避免每次都等超时
type breakerSnapshotCache struct {
	c  SnapshotCache
	cb *gobreaker.CircuitBreaker
}

func NewBreakerSnapshotCache(c SnapshotCache) SnapshotCache {
	return &breakerSnapshotCache{
		c: c,
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "project_snapshot_cache",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			// 缓存未命中是正常情况
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrSnapshotNotFound)
			},
		}),
	}
}

func (b *breakerSnapshotCache) Get(ctx context.Context, name string) (string, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return b.c.Get(ctx, name)
	})
	if err != nil {
		return "", err
	}
	return res.(string), nil
}

func (b *breakerSnapshotCache) Set(ctx context.Context, name string, val string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.c.Set(ctx, name, val)
	})
	return err
}

func (b *breakerSnapshotCache) Delete(ctx context.Context, name string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.c.Delete(ctx, name)
	})
	return err
}
