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

package skill

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirebook/internal/employee"
	"github.com/ecodeclub/hirebook/internal/skill/internal/repository"
	"github.com/ecodeclub/hirebook/internal/skill/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/skill/internal/repository/dao"
	"github.com/ecodeclub/hirebook/internal/skill/internal/service"
	"github.com/ecodeclub/hirebook/internal/skill/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, ec ecache.Cache, empModule *employee.Module) *Module {
	wire.Build(
		InitSkillDAO,
		cache.NewSkillCache,
		repository.NewSkillRepo,
		service.NewSkillService,
		wire.FieldsOf(new(*employee.Module), "Roles"),
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitSkillDAO(db *egorm.Component) dao.SkillDAO {
	InitTableOnce(db)
	return dao.NewSkillDAO(db)
}
