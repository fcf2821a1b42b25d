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

// TrendingConfig 各项权重都是经验值，可以通过配置调整
type TrendingConfig struct {
	ApplicationWeight int `yaml:"applicationWeight"`
	ApplicationCap    int `yaml:"applicationCap"`
	TeamWeight        int `yaml:"teamWeight"`
	TeamCap           int `yaml:"teamCap"`
	ActivityScore     int `yaml:"activityScore"`
	// ActivityWindowDays 最近多少天内有更新算活跃
	ActivityWindowDays int `yaml:"activityWindowDays"`
	AgeBase            int `yaml:"ageBase"`
	DiscussionWeight   int `yaml:"discussionWeight"`
	DiscussionCap      int `yaml:"discussionCap"`
	// Threshold 总分要严格大于它才算热门
	Threshold int `yaml:"threshold"`
}

type Config struct {
	Trending       TrendingConfig `yaml:"trending"`
	RecommendLimit int            `yaml:"recommendLimit"`
}

func DefaultConfig() Config {
	return Config{
		Trending:       DefaultTrendingConfig(),
		RecommendLimit: 10,
	}
}

func DefaultTrendingConfig() TrendingConfig {
	return TrendingConfig{
		ApplicationWeight:  10,
		ApplicationCap:     50,
		TeamWeight:         5,
		TeamCap:            25,
		ActivityScore:      20,
		ActivityWindowDays: 7,
		AgeBase:            20,
		DiscussionWeight:   3,
		DiscussionCap:      15,
		Threshold:          30,
	}
}
