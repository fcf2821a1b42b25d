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
	"net/http"
	"strings"

	"github.com/ecodeclub/devcollab/internal/cos"
	"github.com/ecodeclub/devcollab/internal/pkg/middleware"
	"github.com/ecodeclub/devcollab/internal/project"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(sp session.Provider,
	prjModule *project.Module,
	cosModule *cos.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost") ||
				strings.Contains(origin, "devcollab")
		},
	}))
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	hdls := []ginx.Handler{
		prjModule.Hdl,
		prjModule.MsgHdl,
		prjModule.ProfileHdl,
		cosModule.Hdl,
	}
	for _, hdl := range hdls {
		hdl.PublicRoutes(res.Engine)
	}
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	for _, hdl := range hdls {
		hdl.PrivateRoutes(res.Engine)
	}
	return res
}
