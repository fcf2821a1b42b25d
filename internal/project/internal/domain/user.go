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

package domain

type User struct {
	Id           int64
	Name         string
	Avatar       string
	Skills       []string
	Experience   Experience
	Availability Availability
	Bio          string
	Location     string
	SocialLinks  SocialLinks
	// HourlyRate 为 nil 表示没有填写
	HourlyRate *float64
	Ctime      int64
}

func (u User) Clone() User {
	res := u
	res.Skills = cloneSlice(u.Skills)
	if u.HourlyRate != nil {
		rate := *u.HourlyRate
		res.HourlyRate = &rate
	}
	return res
}

type SocialLinks struct {
	Github   string
	Linkedin string
	Website  string
}

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
	ExperienceExpert       Experience = "expert"
)

func (e Experience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert:
		return true
	}
	return false
}

type Availability string

const (
	AvailabilityFullTime    Availability = "full-time"
	AvailabilityPartTime    Availability = "part-time"
	AvailabilityWeekends    Availability = "weekends"
	AvailabilityUnavailable Availability = "unavailable"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityFullTime, AvailabilityPartTime, AvailabilityWeekends, AvailabilityUnavailable:
		return true
	}
	return false
}
