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

package testioc

import (
	"sync"

	"github.com/ecodeclub/devcollab/ioc"
	"github.com/ecodeclub/ecache"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var (
	cache     ecache.Cache
	cacheOnce sync.Once
)

// InitCache 和线上共用同一个 namespace，key 的格式保持一致
func InitCache() ecache.Cache {
	cacheOnce.Do(func() {
		addr := "localhost:6379"
		if err := loadConfig(); err == nil && econf.GetString("redis.addr") != "" {
			addr = econf.GetString("redis.addr")
		}
		cache = ioc.InitCache(redis.NewClient(&redis.Options{Addr: addr}))
	})
	return cache
}
