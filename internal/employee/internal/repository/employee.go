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

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/hirebook/internal/employee/internal/domain"
	"github.com/ecodeclub/hirebook/internal/employee/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/employee/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrEmployeeNotFound  = dao.ErrDataNotFound
	ErrEmployeeDuplicate = dao.ErrEmployeeDuplicate
)

//go:generate mockgen -source=./employee.go -package=repomocks -destination=mocks/employee.mock.go EmployeeRepository
type EmployeeRepository interface {
	Save(ctx context.Context, e domain.Employee) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Employee, error)
	FindByUsername(ctx context.Context, username string) (domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (domain.Employee, error)
}

// CachedEmployeeRepository 按 ID 和用户名查询都会走缓存
type CachedEmployeeRepository struct {
	dao    dao.EmployeeDAO
	cache  cache.EmployeeCache
	logger *elog.Component
}

func NewCachedEmployeeRepository(d dao.EmployeeDAO, c cache.EmployeeCache) EmployeeRepository {
	return &CachedEmployeeRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedEmployeeRepository) Save(ctx context.Context, e domain.Employee) (int64, error) {
	var old domain.Employee
	if e.ID > 0 {
		// 用户名可能会被修改，旧的映射也要删掉
		old, _ = repo.FindById(ctx, e.ID)
	}
	id, err := repo.dao.Save(ctx, repo.toEntity(e), e.Role.String())
	if err != nil {
		return 0, err
	}
	e.ID = id
	for _, stale := range []domain.Employee{old, e} {
		if stale.ID == 0 {
			continue
		}
		if er := repo.cache.Delete(ctx, stale); er != nil {
			repo.logger.Error("删除员工缓存失败", elog.Int64("id", stale.ID), elog.FieldErr(er))
		}
	}
	return id, nil
}

func (repo *CachedEmployeeRepository) FindById(ctx context.Context, id int64) (domain.Employee, error) {
	e, err := repo.cache.Get(ctx, id)
	if err == nil {
		return e, nil
	}
	entity, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Employee{}, err
	}
	e = repo.toDomain(entity)
	// 忽略掉这里的错误
	_ = repo.cache.Set(ctx, e)
	return e, nil
}

func (repo *CachedEmployeeRepository) FindByUsername(ctx context.Context, username string) (domain.Employee, error) {
	id, err := repo.cache.GetID(ctx, username)
	if err == nil && id > 0 {
		return repo.FindById(ctx, id)
	}
	entity, err := repo.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.Employee{}, err
	}
	e := repo.toDomain(entity)
	_ = repo.cache.Set(ctx, e)
	return e, nil
}

func (repo *CachedEmployeeRepository) FindByEmail(ctx context.Context, email string) (domain.Employee, error) {
	entity, err := repo.dao.FindByEmail(ctx, email)
	return repo.toDomain(entity), err
}

func (repo *CachedEmployeeRepository) toEntity(e domain.Employee) dao.User {
	return dao.User{
		Id:       e.ID,
		Username: e.Username,
		Email: sql.NullString{
			String: e.Email,
			Valid:  e.Email != "",
		},
		FirstName: e.FirstName,
		LastName:  e.LastName,
		IsAdmin:   e.IsAdmin,
	}
}

func (repo *CachedEmployeeRepository) toDomain(e dao.Employee) domain.Employee {
	return domain.Employee{
		ID:        e.Id,
		Username:  e.Username,
		Email:     e.Email.String,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		IsAdmin:   e.IsAdmin,
		Role:      domain.Role(e.Role.String),
		Ctime:     e.Ctime,
		Utime:     e.Utime,
	}
}
