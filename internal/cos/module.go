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

package cos

import (
	"github.com/ecodeclub/devcollab/internal/cos/internal/web"
)

type Module struct {
	Hdl *Handler
}

type (
	Handler = web.Handler
	Config  = web.Config
)

func InitModule(cfg Config) *Module {
	return &Module{Hdl: web.NewHandler(cfg)}
}
