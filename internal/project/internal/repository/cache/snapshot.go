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
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

var ErrSnapshotNotFound = errors.New("快照不存在")

const expiration = 24 * time.Hour

//go:generate mockgen -source=./snapshot.go -package=cachemocks -destination=./mocks/snapshot.mock.go SnapshotCache

// SnapshotCache 缓存的是序列化之后的集合快照，数据库才是准的
type SnapshotCache interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name string, val string) error
	Delete(ctx context.Context, name string) error
}

type snapshotCache struct {
	ec ecache.Cache
}

func NewSnapshotCache(ec ecache.Cache) SnapshotCache {
	return &snapshotCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "project:snapshot:",
		},
	}
}

func (c *snapshotCache) Get(ctx context.Context, name string) (string, error) {
	val := c.ec.Get(ctx, name)
	if val.KeyNotFound() {
		return "", ErrSnapshotNotFound
	}
	if val.Err != nil {
		return "", errors.Wrap(val.Err, "读取快照缓存失败")
	}
	res, err := val.String()
	return res, errors.Wrap(err, "快照缓存格式错误")
}

func (c *snapshotCache) Set(ctx context.Context, name string, val string) error {
	return errors.Wrap(c.ec.Set(ctx, name, val, expiration), "写入快照缓存失败")
}

func (c *snapshotCache) Delete(ctx context.Context, name string) error {
	_, err := c.ec.Delete(ctx, name)
	return errors.Wrap(err, "删除快照缓存失败")
}
