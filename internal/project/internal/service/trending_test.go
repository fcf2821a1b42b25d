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
	"testing"
	"time"

	"github.com/ecodeclub/devcollab/internal/project/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	daysAgo := func(d int) int64 {
		return now.Add(-time.Duration(d) * day).UnixMilli()
	}
	cfg := DefaultTrendingConfig()
	testCases := []struct {
		name      string
		p         domain.Project
		wantOK    bool
		wantScore int
		wantRes   domain.Trending
	}{
		{
			name: "新项目",
			p: domain.Project{
				Id:            1,
				TeamSize:      1,
				TeamMemberIds: []int64{1},
				Ctime:         now.UnixMilli(),
				Utime:         now.UnixMilli(),
			},
			wantOK: true,
			// 0 + 5 + 20 + 20 + 0
			wantRes: domain.Trending{Score: 45, IsActive: true, LastCalculated: now.UnixMilli()},
		},
		{
			name: "各项都封顶",
			p: domain.Project{
				Id:           2,
				TeamSize:     6,
				ApplicantIds: []int64{1, 2, 3, 4, 5, 6},
				Discussions:  make([]domain.Discussion, 6),
				Stargazers:   []int64{7, 8},
				ViewCnt:      100,
				Ctime:        daysAgo(3),
				Utime:        daysAgo(1),
			},
			wantOK: true,
			// 50 + 25 + 20 + 17 + 15
			wantRes: domain.Trending{
				Score:          127,
				Views:          100,
				Applications:   6,
				Stars:          2,
				IsActive:       true,
				LastCalculated: now.UnixMilli(),
			},
		},
		{
			name: "刚好等于阈值不算热门",
			p: domain.Project{
				// 10 + 5 + 0 + 15 + 0 = 30
				TeamSize:     1,
				ApplicantIds: []int64{9},
				Ctime:        daysAgo(5),
				Utime:        daysAgo(7),
			},
			wantOK: false,
		},
		{
			name: "超过阈值一分",
			p: domain.Project{
				// 10 + 5 + 0 + 16 + 0 = 31
				TeamSize:     1,
				ApplicantIds: []int64{9},
				Ctime:        daysAgo(4),
				Utime:        daysAgo(8),
			},
			wantOK: true,
			wantRes: domain.Trending{
				Score:          31,
				Applications:   1,
				LastCalculated: now.UnixMilli(),
			},
		},
		{
			name: "不满一天按零天算",
			p: domain.Project{
				TeamSize: 1,
				Ctime:    now.Add(-23 * time.Hour).UnixMilli(),
				Utime:    now.Add(-23 * time.Hour).UnixMilli(),
			},
			wantOK:  true,
			wantRes: domain.Trending{Score: 45, IsActive: true, LastCalculated: now.UnixMilli()},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, ok := Score(tc.p, now, cfg)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

// 没有申请、没有讨论、只有一个人，并且创建超过 20 天的项目，无论什么时候更新过都不会是热门
func TestScore_OldLonelyProjectNeverTrends(t *testing.T) {
	now := time.Now()
	cfg := DefaultTrendingConfig()
	for age := 21; age <= 400; age += 7 {
		for _, updated := range []int{0, 1, 6, 7, age} {
			p := domain.Project{
				TeamSize:      1,
				TeamMemberIds: []int64{1},
				Ctime:         now.Add(-time.Duration(age) * day).UnixMilli(),
				Utime:         now.Add(-time.Duration(updated) * day).UnixMilli(),
			}
			_, ok := Score(p, now, cfg)
			assert.False(t, ok, "age=%d updated=%d", age, updated)
		}
	}
}

func TestScore_CustomWeights(t *testing.T) {
	now := time.Now()
	cfg := DefaultTrendingConfig()
	cfg.Threshold = 0
	cfg.AgeBase = 0
	cfg.ActivityScore = 0
	cfg.TeamWeight = 1
	p := domain.Project{TeamSize: 3, Ctime: now.UnixMilli(), Utime: now.UnixMilli()}
	res, ok := Score(p, now, cfg)
	assert.True(t, ok)
	assert.Equal(t, 3, res.Score)
	assert.False(t, res.IsActive)
}
