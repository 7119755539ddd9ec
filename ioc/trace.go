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
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

type zipkinConfig struct {
	ServiceName    string  `yaml:"serviceName"`
	ServiceVersion string  `yaml:"serviceVersion"`
	Endpoint       string  `yaml:"endpoint"`
	SampleRatio    float64 `yaml:"sampleRatio"`
}

// InitZipkinTracer 设置全局的 tracer provider 和传播器，
// GORM 插件和 MQ 生产者都从全局取 tracer
func InitZipkinTracer() *trace.TracerProvider {
	cfg := zipkinConfig{ServiceName: "hirebook", ServiceVersion: "v0.0.1", SampleRatio: 1}
	if err := econf.UnmarshalKey("trace.zipkin", &cfg); err != nil {
		elog.Panic("读取 zipkin 配置失败", elog.FieldErr(err))
	}
	exporter, err := zipkin.New(cfg.Endpoint)
	if err != nil {
		elog.Panic("初始化 zipkin exporter 失败", elog.FieldErr(err))
	}
	// 不带 schema，避免和 resource.Default 的 schema 版本冲突
	res, err := resource.Merge(resource.Default(), resource.NewSchemaless(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	))
	if err != nil {
		elog.Panic("初始化 resource 失败", elog.FieldErr(err))
	}
	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)),
		trace.WithResource(res),
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(cfg.SampleRatio))),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp
}
