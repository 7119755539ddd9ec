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

package employee

import (
	"github.com/ecodeclub/hirebook/internal/employee/internal/domain"
	"github.com/ecodeclub/hirebook/internal/employee/internal/service"
	"github.com/ecodeclub/hirebook/internal/employee/internal/web"
	"github.com/ecodeclub/hirebook/internal/pkg/middleware"
)

type Module struct {
	Svc Service
	Hdl *Hdl
	// Roles 其它模块复用同一个角色校验
	Roles *middleware.CheckRoleMiddlewareBuilder
}

type Hdl = web.Handler
type Service = service.EmployeeService
type Employee = domain.Employee
type Role = domain.Role

const (
	RoleHR  = domain.RoleHR
	RoleDEV = domain.RoleDEV
)

var ErrEmployeeNotFound = service.ErrEmployeeNotFound
