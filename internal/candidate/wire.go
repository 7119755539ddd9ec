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

package candidate

import (
	"sync"

	"github.com/ecodeclub/hirebook/internal/candidate/internal/repository"
	"github.com/ecodeclub/hirebook/internal/candidate/internal/repository/dao"
	"github.com/ecodeclub/hirebook/internal/candidate/internal/service"
	"github.com/ecodeclub/hirebook/internal/candidate/internal/web"
	"github.com/ecodeclub/hirebook/internal/employee"
	"github.com/ecodeclub/hirebook/internal/skill"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, skillModule *skill.Module, empModule *employee.Module) *Module {
	wire.Build(
		initDAO,
		repository.NewCandidateRepository,
		service.NewCandidateService,
		wire.FieldsOf(new(*skill.Module), "Svc"),
		wire.FieldsOf(new(*employee.Module), "Roles"),
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func initDAO(db *egorm.Component) dao.CandidateDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMCandidateDAO(db)
}
