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

package web

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/ecodeclub/devcollab/internal/cos/internal/errs"
	"github.com/ecodeclub/devcollab/internal/test"
	"github.com/ecodeclub/ekit/iox"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarKey(t *testing.T) {
	testCases := []struct {
		name string
		uid  int64
		id   string
		ext  string
		want string
	}{
		{
			name: "png",
			uid:  12,
			id:   "abc",
			ext:  ".png",
			want: "avatar/12/abc.png",
		},
		{
			name: "jpg",
			uid:  1,
			id:   "x9Y",
			ext:  ".jpg",
			want: "avatar/1/x9Y.jpg",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AvatarKey(tc.uid, tc.id, tc.ext))
		})
	}
}

func TestObjectURL(t *testing.T) {
	cfg := Config{AppID: "1250000000", Bucket: "avatar", Region: "ap-nanjing"}
	assert.Equal(t, "https://avatar-1250000000.cos.ap-nanjing.myqcloud.com/avatar/1/a.png",
		ObjectURL(cfg, "avatar/1/a.png"))
}

func TestAvatarAuthCode_Rejected(t *testing.T) {
	econf.Set("server", map[string]any{"contextTimeout": "10s"})
	server := egin.Load("server").Build()
	server.Use(test.MockLogin())
	hdl := NewHandler(Config{AppID: "1250000000", Bucket: "avatar", Region: "ap-nanjing"})
	hdl.PrivateRoutes(server.Engine)

	testCases := []struct {
		name        string
		uid         int64
		contentType string
		wantCode    int
		wantBiz     int
	}{
		{
			name:        "未登录",
			contentType: "image/png",
			wantCode:    http.StatusUnauthorized,
		},
		{
			name:        "不是图片",
			uid:         1,
			contentType: "application/pdf",
			wantCode:    http.StatusOK,
			wantBiz:     errs.UnsupportedImage.Code,
		},
		{
			name:        "没有类型",
			uid:         1,
			contentType: "",
			wantCode:    http.StatusOK,
			wantBiz:     errs.UnsupportedImage.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/cos/avatar/authorization",
				iox.NewJSONReader(AvatarAuthReq{ContentType: tc.contentType}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			if tc.uid > 0 {
				req.Header.Set("uid", strconv.FormatInt(tc.uid, 10))
			}
			recorder := test.NewJSONResponseRecorder[COSTmpAuthCode]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			res := recorder.MustScan()
			assert.Equal(t, tc.wantBiz, res.Code)
		})
	}
}
