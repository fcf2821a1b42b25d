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

package test

import (
	"errors"
	"strconv"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const sessionKey = "_session"

var errNoSession = errors.New("未登录")

// 测试里面统一使用内存里的 session
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

// SessionProvider 只实现测试用到的方法
type SessionProvider struct {
	session.Provider
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid, Data: jwtData})
	ctx.Set(sessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(sessionKey)
	if !ok {
		return nil, errNoSession
	}
	return val.(session.Session), nil
}

// MockLogin 把请求头 uid 对应的用户当成已经登录的用户，没有这个头就是未登录
func MockLogin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uid, err := strconv.ParseInt(ctx.GetHeader("uid"), 10, 64)
		if err != nil {
			return
		}
		ctx.Set(sessionKey, session.NewMemorySession(session.Claims{Uid: uid}))
	}
}
