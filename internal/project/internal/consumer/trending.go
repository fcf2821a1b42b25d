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

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ecodeclub/devcollab/internal/project/internal/event"
	"github.com/ecodeclub/devcollab/internal/project/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type handleFunc func(ctx context.Context, evt event.ProjectEvent) error

// TrendingConsumer 项目有变更就全量重算热门项目。
// 本实例的变更在写入的时候已经重算过，这里主要是让热度随时间衰减，
// 同时保证其它实例的变更也会触发一次重算
type TrendingConsumer struct {
	handlerMap map[string]handleFunc
	consumer   mq.Consumer
	svc        service.Service
	logger     *elog.Component
	now        func() time.Time
	// lastRecompute 上一次重算成功的时间，毫秒。早于它产生的事件不用再算
	lastRecompute atomic.Int64
}

func NewTrendingConsumer(svc service.Service, q mq.MQ) (*TrendingConsumer, error) {
	const groupID = "project_trending_group"
	consumer, err := q.Consumer(event.ProjectEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	c := &TrendingConsumer{
		consumer: consumer,
		svc:      svc,
		logger:   elog.DefaultLogger,
		now:      time.Now,
	}
	c.handlerMap = map[string]handleFunc{
		event.ActionCreate:     c.recomputeHandle,
		event.ActionApply:      c.recomputeHandle,
		event.ActionAccept:     c.recomputeHandle,
		event.ActionTasks:      c.recomputeHandle,
		event.ActionDiscussion: c.recomputeHandle,
		event.ActionReply:      c.recomputeHandle,
		event.ActionStar:       c.recomputeHandle,
	}
	return c, nil
}

func (c *TrendingConsumer) recomputeHandle(ctx context.Context, evt event.ProjectEvent) error {
	if evt.Ctime != 0 && evt.Ctime < c.lastRecompute.Load() {
		// 积压的事件，已经被后面的重算覆盖
		return nil
	}
	start := c.now().UnixMilli()
	if err := c.svc.RecomputeTrending(ctx); err != nil {
		return err
	}
	c.lastRecompute.Store(start)
	return nil
}

func (c *TrendingConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt event.ProjectEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	handler, ok := c.handlerMap[evt.Action]
	if !ok {
		return errors.New("未找到相关业务的处理方法")
	}
	err = handler(ctx, evt)
	if err != nil {
		c.logger.Error("处理项目事件失败", elog.Any("project_event", evt))
	}
	return err
}

func (c *TrendingConsumer) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费项目事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *TrendingConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
