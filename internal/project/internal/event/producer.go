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

package event

import (
	"strconv"

	"github.com/ecodeclub/devcollab/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/producer.mock.go ProjectEventProducer
type ProjectEventProducer mqx.Producer[ProjectEvent]

// NewProjectEventProducer 同一个项目的事件落在同一个分区上，保证有序
func NewProjectEventProducer(q mq.MQ) (ProjectEventProducer, error) {
	p, err := mqx.NewKeyedProducer[ProjectEvent](q, ProjectEventTopic, func(evt ProjectEvent) []byte {
		return []byte(strconv.FormatInt(evt.Pid, 10))
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
