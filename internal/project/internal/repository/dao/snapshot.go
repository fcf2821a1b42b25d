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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

//go:generate mockgen -source=./snapshot.go -package=daomocks -destination=./mocks/snapshot.mock.go SnapshotDAO

// SnapshotDAO 每个集合一行，整体覆盖写
type SnapshotDAO interface {
	Get(ctx context.Context, name string) (CollectionSnapshot, error)
	// Version 只查版本号，不读快照内容
	Version(ctx context.Context, name string) (int64, error)
	// Upsert 覆盖写，返回写入之后的版本号
	Upsert(ctx context.Context, name string, val string) (int64, error)
}

var _ SnapshotDAO = &GORMSnapshotDAO{}

type GORMSnapshotDAO struct {
	db *egorm.Component
}

func NewGORMSnapshotDAO(db *egorm.Component) SnapshotDAO {
	return &GORMSnapshotDAO{db: db}
}

func (dao *GORMSnapshotDAO) Get(ctx context.Context, name string) (CollectionSnapshot, error) {
	var res CollectionSnapshot
	err := dao.db.WithContext(ctx).Where("name = ?", name).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CollectionSnapshot{}, ErrRecordNotFound
	}
	return res, err
}

func (dao *GORMSnapshotDAO) Version(ctx context.Context, name string) (int64, error) {
	var res CollectionSnapshot
	err := dao.db.WithContext(ctx).Select("version").Where("name = ?", name).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrRecordNotFound
	}
	return res.Version, err
}

func (dao *GORMSnapshotDAO) Upsert(ctx context.Context, name string, val string) (int64, error) {
	var version int64
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]any{
				"val":     val,
				"version": gorm.Expr("version + 1"),
				"utime":   now,
			}),
		}).Create(&CollectionSnapshot{
			Name:    name,
			Val:     val,
			Version: 1,
			Ctime:   now,
			Utime:   now,
		}).Error
		if err != nil {
			return err
		}
		var res CollectionSnapshot
		err = tx.Select("version").Where("name = ?", name).First(&res).Error
		version = res.Version
		return err
	})
	return version, err
}
