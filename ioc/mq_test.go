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

package ioc

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTopics(t *testing.T) {
	q := memory.NewMQ()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := createTopics(ctx, q, []topicConfig{{Name: "project_events", Partitions: 1}})
	require.NoError(t, err)
	_, err = q.Producer("project_events")
	assert.NoError(t, err)
}
