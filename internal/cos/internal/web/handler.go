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
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/devcollab/internal/cos/internal/errs"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

var _ ginx.Handler = &Handler{}

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	unsupportedImageResult = ginx.Result{
		Code: errs.UnsupportedImage.Code,
		Msg:  errs.UnsupportedImage.Msg,
	}
)

// 头像只允许上传这几种图片
var imageExts = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type Config struct {
	SecretID  string `yaml:"secretID"`
	SecretKey string `yaml:"secretKey"`
	AppID     string `yaml:"appID"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

type Handler struct {
	client *sts.Client
	// 临时密钥的权限
	actions []string
	cfg     Config
	newId   func() string
}

func NewHandler(cfg Config) *Handler {
	c := sts.NewClient(
		cfg.SecretID,
		cfg.SecretKey,
		http.DefaultClient,
	)
	return &Handler{client: c,
		cfg:   cfg,
		newId: shortuuid.New,
		actions: []string{
			// 头像很小，只需要简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
		},
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	cos := server.Group("/cos")
	cos.POST("/avatar/authorization", ginx.BS(h.AvatarAuthCode))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
}

func (h *Handler) AvatarAuthCode(ctx *ginx.Context, req AvatarAuthReq, sess session.Session) (ginx.Result, error) {
	ext, ok := imageExts[req.ContentType]
	if !ok {
		return unsupportedImageResult, nil
	}
	key := AvatarKey(sess.Claims().Uid, h.newId(), ext)
	// 策略概述 https://cloud.tencent.com/document/product/436/18023
	// 存储桶的命名格式为 BucketName-APPID
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s",
		h.cfg.Region, h.cfg.AppID,
		h.cfg.Bucket, h.cfg.AppID, key)
	opt := &sts.CredentialOptions{
		DurationSeconds: int64((15 * time.Minute).Seconds()),
		Region:          h.cfg.Region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action: h.actions,
					Effect: "allow",
					Resource: []string{
						resource,
					},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": req.ContentType,
						},
					},
				},
			},
		},
	}

	res, err := h.client.GetCredential(opt)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: COSTmpAuthCode{
			SecretId:     res.Credentials.TmpSecretID,
			SecretKey:    res.Credentials.TmpSecretKey,
			SessionToken: res.Credentials.SessionToken,
			StartTime:    int64(res.StartTime),
			ExpiredTime:  int64(res.ExpiredTime),
			Bucket:       fmt.Sprintf("%s-%s", h.cfg.Bucket, h.cfg.AppID),
			Region:       h.cfg.Region,
			Key:          key,
			URL:          ObjectURL(h.cfg, key),
		},
	}, nil
}

// AvatarKey 每个用户的头像都放在自己的目录下，临时密钥只能写这一个对象
func AvatarKey(uid int64, id string, ext string) string {
	return fmt.Sprintf("avatar/%d/%s%s", uid, id, ext)
}

func ObjectURL(cfg Config, key string) string {
	return fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com/%s",
		cfg.Bucket, cfg.AppID, cfg.Region, key)
}
