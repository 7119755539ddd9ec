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

//go:build wireinject

package interview

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirebook/internal/candidate"
	"github.com/ecodeclub/hirebook/internal/employee"
	"github.com/ecodeclub/hirebook/internal/interview/internal/domain"
	"github.com/ecodeclub/hirebook/internal/interview/internal/event"
	"github.com/ecodeclub/hirebook/internal/interview/internal/repository"
	"github.com/ecodeclub/hirebook/internal/interview/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/hirebook/internal/interview/internal/service"
	"github.com/ecodeclub/hirebook/internal/interview/internal/web"
	"github.com/ecodeclub/hirebook/internal/pkg/jobid"
	"github.com/ecodeclub/hirebook/internal/skill"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	empModule *employee.Module,
	candidateModule *candidate.Module,
	skillModule *skill.Module) (*Module, error) {
	wire.Build(
		initDAO,
		cache.NewInterviewCache,
		repository.NewCachedInterviewRepository,
		event.NewInterviewEventProducer,
		jobid.NewGenerator,
		wire.Bind(new(domain.JobIDGenerator), new(*jobid.Generator)),
		initActionMetrics,
		service.NewInterviewService,
		wire.FieldsOf(new(*employee.Module), "Svc", "Roles"),
		wire.FieldsOf(new(*candidate.Module), "Svc"),
		wire.FieldsOf(new(*skill.Module), "Svc"),
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	daoOnce     = sync.Once{}
	metricsOnce = sync.Once{}
	metrics     *service.ActionMetrics
)

func initDAO(db *egorm.Component) dao.InterviewDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMInterviewDAO(db, initRetryConfig())
}

// initRetryConfig 没有配置的时候最多重试 3 次
func initRetryConfig() dao.RetryConfig {
	cfg := dao.RetryConfig{
		Initial:    50 * time.Millisecond,
		Max:        time.Second,
		MaxRetries: 2,
	}
	if econf.Get("interview.lockRetry") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("interview.lockRetry", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// initActionMetrics 同一个指标只能注册一次
func initActionMetrics() *service.ActionMetrics {
	metricsOnce.Do(func() {
		metrics = service.NewActionMetrics(nil)
	})
	return metrics
}
