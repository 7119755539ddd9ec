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
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/ecodeclub/hirebook/internal/employee/internal/domain"
	"github.com/ecodeclub/hirebook/internal/employee/internal/repository"
)

var (
	ErrEmployeeNotFound  = repository.ErrEmployeeNotFound
	ErrEmployeeDuplicate = repository.ErrEmployeeDuplicate
	ErrInvalidRole       = errors.New("员工角色不合法")
	ErrInvalidUsername   = errors.New("用户名不能为空")
)

//go:generate mockgen -source=./employee.go -package=svcmocks -destination=mocks/employee.mock.go EmployeeService
type EmployeeService interface {
	Save(ctx context.Context, e domain.Employee) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Employee, error)
	FindByUsername(ctx context.Context, username string) (domain.Employee, error)
	// Lookup 纯数字按照 ID 查找，否则依次按照用户名、邮箱查找
	Lookup(ctx context.Context, key string) (domain.Employee, error)
	// FindRole 给角色校验中间件使用，不是员工的用户返回空角色
	FindRole(ctx context.Context, uid int64) (string, bool, error)
}

type employeeService struct {
	repo repository.EmployeeRepository
}

func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

func (svc *employeeService) Save(ctx context.Context, e domain.Employee) (int64, error) {
	e.Username = strings.TrimSpace(e.Username)
	if e.Username == "" {
		return 0, ErrInvalidUsername
	}
	if !e.Role.IsValid() {
		return 0, ErrInvalidRole
	}
	return svc.repo.Save(ctx, e)
}

func (svc *employeeService) Detail(ctx context.Context, id int64) (domain.Employee, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *employeeService) FindByUsername(ctx context.Context, username string) (domain.Employee, error) {
	return svc.repo.FindByUsername(ctx, username)
}

func (svc *employeeService) Lookup(ctx context.Context, key string) (domain.Employee, error) {
	key = strings.TrimSpace(key)
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		return svc.repo.FindById(ctx, id)
	}
	e, err := svc.repo.FindByUsername(ctx, key)
	if !errors.Is(err, ErrEmployeeNotFound) {
		return e, err
	}
	return svc.repo.FindByEmail(ctx, key)
}

func (svc *employeeService) FindRole(ctx context.Context, uid int64) (string, bool, error) {
	e, err := svc.repo.FindById(ctx, uid)
	if errors.Is(err, ErrEmployeeNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return e.Role.String(), e.IsAdmin, nil
}
