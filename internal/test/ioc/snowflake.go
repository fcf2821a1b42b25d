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

package testioc

import (
	"sync"

	"github.com/ecodeclub/devcollab/internal/pkg/snowflake"
)

var (
	idGen     snowflake.Generator
	idGenOnce sync.Once
)

func InitIDGenerator() snowflake.Generator {
	idGenOnce.Do(func() {
		res, err := snowflake.NewCustomSnowFlake(0, uint(snowflake.KindCount))
		if err != nil {
			panic(err)
		}
		idGen = res
	})
	return idGen
}
