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

package startup

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirebook/internal/candidate"
	"github.com/ecodeclub/hirebook/internal/employee"
	"github.com/ecodeclub/hirebook/internal/interview"
	"github.com/ecodeclub/hirebook/internal/skill"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModules(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Modules, error) {
	wire.Build(
		employee.InitModule,
		skill.InitModule,
		candidate.InitModule,
		interview.InitModule,
		wire.Struct(new(Modules), "*"),
	)
	return new(Modules), nil
}
