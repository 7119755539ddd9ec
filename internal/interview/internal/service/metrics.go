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

package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"
)

// ActionMetrics 按操作和结果统计面试状态机的调用次数
type ActionMetrics struct {
	counter *prometheus.CounterVec
}

// NewActionMetrics reg 为 nil 的时候注册到默认的 Registerer
func NewActionMetrics(reg prometheus.Registerer) *ActionMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &ActionMetrics{
		counter: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "hirebook",
			Subsystem: "interview",
			Name:      "actions_total",
			Help:      "面试操作的次数",
		}, []string{"action", "result"}),
	}
}

func (m *ActionMetrics) observe(action, result string) {
	m.counter.WithLabelValues(action, result).Inc()
}
