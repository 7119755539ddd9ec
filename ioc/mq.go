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
	"fmt"
	"time"

	"github.com/ecodeclub/hirebook/internal/interview"
	"github.com/ecodeclub/hirebook/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/gotomicro/ego/core/econf"
)

type topicConfig struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

type kafkaConfig struct {
	Network   string        `yaml:"network"`
	Addresses []string      `yaml:"addresses"`
	Topics    []topicConfig `yaml:"topics"`
}

// InitMQ 面试事件必须有 topic，配置里没有的时候按照单分区创建
func InitMQ() mq.MQ {
	var cfg kafkaConfig
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	q, err := kafka.NewMQ(cfg.Network, cfg.Addresses)
	if err != nil {
		panic(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	for _, t := range withEventTopic(cfg.Topics) {
		if err = q.CreateTopic(ctx, t.Name, t.Partitions); err != nil {
			panic(fmt.Errorf("创建 topic %s 失败, partitions = %d: %w", t.Name, t.Partitions, err))
		}
	}
	return mqx.NewTraceMq(q)
}

func withEventTopic(topics []topicConfig) []topicConfig {
	res := make([]topicConfig, 0, len(topics)+1)
	found := false
	for _, t := range topics {
		if t.Partitions <= 0 {
			t.Partitions = 1
		}
		found = found || t.Name == interview.EventTopic
		res = append(res, t)
	}
	if !found {
		res = append(res, topicConfig{Name: interview.EventTopic, Partitions: 1})
	}
	return res
}
