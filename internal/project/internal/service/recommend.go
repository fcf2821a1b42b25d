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
	"slices"

	"github.com/ecodeclub/devcollab/internal/project/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

// Recommend 排除用户创建的、已经加入的、已经申请过的项目，
// 剩下的按照技能重合数量降序排列，数量相同的保持原有顺序
func Recommend(u domain.User, projects []domain.Project, limit int) []domain.Project {
	type candidate struct {
		project domain.Project
		overlap int
	}
	candidates := slice.FilterMap(projects, func(idx int, src domain.Project) (candidate, bool) {
		if src.IsOwner(u.Id) || src.IsMember(u.Id) || src.HasApplied(u.Id) {
			return candidate{}, false
		}
		return candidate{project: src, overlap: skillOverlap(u.Skills, src.RequiredSkills)}, true
	})
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return b.overlap - a.overlap
	})
	if limit >= 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return slice.Map(candidates, func(idx int, src candidate) domain.Project {
		return src.project
	})
}

// skillOverlap 项目要求的技能里面，用户掌握了几个。大小写敏感
func skillOverlap(skills []string, required []string) int {
	cnt := 0
	for _, r := range required {
		if slice.Contains(skills, r) {
			cnt++
		}
	}
	return cnt
}
