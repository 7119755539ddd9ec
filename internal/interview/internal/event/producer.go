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

package event

import (
	"context"

	"github.com/ecodeclub/hirebook/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

const (
	InterviewTopic = "interview_events"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=mocks/producer.mock.go InterviewEventProducer
type InterviewEventProducer interface {
	Produce(ctx context.Context, evt InterviewEvent) error
}

// NewInterviewEventProducer 同一个面试的事件按面试编号进入同一个分区
func NewInterviewEventProducer(q mq.MQ) (InterviewEventProducer, error) {
	return mqx.NewKeyedProducer[InterviewEvent](q, InterviewTopic, func(evt InterviewEvent) string {
		return evt.JobID
	})
}
