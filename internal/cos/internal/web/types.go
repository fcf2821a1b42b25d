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

type AvatarAuthReq struct {
	// ContentType 例如 image/png
	ContentType string `json:"contentType"`
}

type COSTmpAuthCode struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int64  `json:"startTime"`
	ExpiredTime  int64  `json:"expiredTime"`
	Bucket       string `json:"bucket"`
	Region       string `json:"region"`
	// Key 前端上传时使用的对象 key
	Key string `json:"key"`
	// URL 上传成功之后的访问地址，保存到个人资料里面
	URL string `json:"url"`
}
