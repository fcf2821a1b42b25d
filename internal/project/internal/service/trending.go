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
	"time"

	"github.com/ecodeclub/devcollab/internal/project/internal/domain"
)

const day = 24 * time.Hour

// Score 计算项目的热门分数，只有总分超过阈值才返回 true
func Score(p domain.Project, now time.Time, cfg TrendingConfig) (domain.Trending, bool) {
	applications := len(p.ApplicantIds)
	applicationScore := min(applications*cfg.ApplicationWeight, cfg.ApplicationCap)
	teamScore := min(p.TeamSize*cfg.TeamWeight, cfg.TeamCap)

	activityScore := 0
	window := time.Duration(cfg.ActivityWindowDays) * day
	if now.Sub(time.UnixMilli(p.Utime)) < window {
		activityScore = cfg.ActivityScore
	}

	// 不满一天的部分舍掉
	ageInDays := int(now.Sub(time.UnixMilli(p.Ctime)) / day)
	ageScore := max(0, cfg.AgeBase-ageInDays)
	discussionScore := min(len(p.Discussions)*cfg.DiscussionWeight, cfg.DiscussionCap)

	total := applicationScore + teamScore + activityScore + ageScore + discussionScore
	if total <= cfg.Threshold {
		return domain.Trending{}, false
	}
	return domain.Trending{
		Score:          total,
		Views:          p.ViewCnt,
		Applications:   applications,
		Stars:          len(p.Stargazers),
		IsActive:       activityScore > 0,
		LastCalculated: now.UnixMilli(),
	}, true
}
