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

package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "internal/pkg/mqx/tracing"

// TraceMq 给发送消息打点，消费者不做处理
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(q mq.MQ) *TraceMq {
	return &TraceMq{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TraceMq) Producer(topic string) (mq.Producer, error) {
	pro, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &TraceProducer{Producer: pro, tracer: t.tracer, topic: topic}, nil
}

type TraceProducer struct {
	mq.Producer
	tracer trace.Tracer
	topic  string
}

func (t *TraceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	return t.produce(ctx, "mq.produce", m, func(ctx context.Context) (*mq.ProducerResult, error) {
		return t.Producer.Produce(ctx, m)
	})
}

func (t *TraceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	return t.produce(ctx, "mq.produce_with_partition", m, func(ctx context.Context) (*mq.ProducerResult, error) {
		return t.Producer.ProduceWithPartition(ctx, m, partition)
	})
}

func (t *TraceProducer) produce(ctx context.Context, name string, m *mq.Message,
	fn func(ctx context.Context) (*mq.ProducerResult, error)) (*mq.ProducerResult, error) {
	ctx, span := t.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "mq"),
		attribute.String("messaging.operation", "produce"),
		attribute.String("messaging.topic", t.topic),
	}
	if m != nil {
		attrs = append(attrs,
			attribute.String("messaging.message_key", string(m.Key)),
			attribute.Int("messaging.message_length", len(m.Value)))
	}
	span.SetAttributes(attrs...)

	res, err := fn(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return res, nil
}
