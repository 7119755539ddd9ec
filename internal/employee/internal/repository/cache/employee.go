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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirebook/internal/employee/internal/domain"
)

//go:generate mockgen -source=./employee.go -package=cachemocks -destination=mocks/employee.mock.go EmployeeCache
type EmployeeCache interface {
	Get(ctx context.Context, id int64) (domain.Employee, error)
	Set(ctx context.Context, e domain.Employee) error
	Delete(ctx context.Context, e domain.Employee) error
	// GetID 用户名到 ID 的映射
	GetID(ctx context.Context, username string) (int64, error)
}

type EmployeeECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewEmployeeECache(c ecache.Cache) EmployeeCache {
	return &EmployeeECache{
		cache: &ecache.NamespaceCache{
			Namespace: "employee:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (cache *EmployeeECache) Get(ctx context.Context, id int64) (domain.Employee, error) {
	var e domain.Employee
	err := cache.cache.Get(ctx, cache.key(id)).JSONScan(&e)
	return e, err
}

func (cache *EmployeeECache) Set(ctx context.Context, e domain.Employee) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err = cache.cache.Set(ctx, cache.key(e.ID), data, cache.expiration); err != nil {
		return err
	}
	return cache.cache.Set(ctx, cache.usernameKey(e.Username), e.ID, cache.expiration)
}

func (cache *EmployeeECache) Delete(ctx context.Context, e domain.Employee) error {
	_, err := cache.cache.Delete(ctx, cache.key(e.ID), cache.usernameKey(e.Username))
	return err
}

func (cache *EmployeeECache) GetID(ctx context.Context, username string) (int64, error) {
	return cache.cache.Get(ctx, cache.usernameKey(username)).AsInt64()
}

func (cache *EmployeeECache) key(id int64) string {
	return fmt.Sprintf("info:%d", id)
}

func (cache *EmployeeECache) usernameKey(username string) string {
	return fmt.Sprintf("username:%s", username)
}
