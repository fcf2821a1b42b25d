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

package database

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"
)

func TestSpanName(t *testing.T) {
	assert.Equal(t, "collection_snapshots SELECT", spanName("collection_snapshots", "SELECT"))
	assert.Equal(t, "gorm RAW", spanName("", "RAW"))
}

func TestStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantDesc string
	}{
		{
			name:     "成功",
			wantCode: codes.Ok,
		},
		{
			name:     "找不到记录",
			err:      fmt.Errorf("查询快照: %w", gorm.ErrRecordNotFound),
			wantCode: codes.Ok,
		},
		{
			name:     "数据库错误",
			err:      errors.New("连接断开"),
			wantCode: codes.Error,
			wantDesc: "连接断开",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, desc := status(tc.err)
			assert.Equal(t, tc.wantCode, code)
			assert.Equal(t, tc.wantDesc, desc)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	long := strings.Repeat("a", maxStatementLen+10)
	got := truncate(long, maxStatementLen)
	assert.Len(t, got, maxStatementLen+3)
	assert.True(t, strings.HasSuffix(got, "..."))
}
