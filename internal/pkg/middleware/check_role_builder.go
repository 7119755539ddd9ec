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

package middleware

import (
	"context"
	"net/http"
	"slices"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	ClaimRole  = "role"
	ClaimAdmin = "admin"
	// RoleHR 和员工模块的角色取值一致
	RoleHR     = "HR"
)

//go:generate mockgen -source=./check_role_builder.go -package=middlewaremocks -destination=mocks/role.mock.go RoleFinder

// RoleFinder 实时查询员工的角色，会话里没有角色信息的时候使用
type RoleFinder interface {
	FindRole(ctx context.Context, uid int64) (role string, isAdmin bool, err error)
}

// CheckRoleMiddlewareBuilder 按照员工角色控制访问。
// 登录由外部系统负责，这里只校验会话里的角色，缺失时再实时查询一次。
type CheckRoleMiddlewareBuilder struct {
	finder RoleFinder
	logger *elog.Component
	sp     session.Provider
}

func NewCheckRoleMiddlewareBuilder(finder RoleFinder) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		finder: finder,
		logger: elog.DefaultLogger,
	}
}

// Employee 任意员工和管理员都可以访问
func (c *CheckRoleMiddlewareBuilder) Employee() gin.HandlerFunc {
	return c.build(true, nil)
}

// Admin 只有管理员可以访问
func (c *CheckRoleMiddlewareBuilder) Admin() gin.HandlerFunc {
	return c.build(true, []string{})
}

// AdminOr 管理员或者拥有指定角色的员工可以访问
func (c *CheckRoleMiddlewareBuilder) AdminOr(roles ...string) gin.HandlerFunc {
	return c.build(true, roles)
}

// Only 只有拥有指定角色的员工可以访问，管理员也不例外
func (c *CheckRoleMiddlewareBuilder) Only(roles ...string) gin.HandlerFunc {
	return c.build(false, roles)
}

// build roles 为 nil 表示任意角色都可以
func (c *CheckRoleMiddlewareBuilder) build(allowAdmin bool, roles []string) gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		role := claims.Get(ClaimRole).StringOrDefault("")
		isAdmin := claims.Get(ClaimAdmin).StringOrDefault("") == "true"
		if role == "" && !isAdmin {
			role, isAdmin, err = c.finder.FindRole(ctx.Request.Context(), claims.Uid)
			if err != nil {
				c.logger.Error("查询员工角色失败", elog.Int64("uid", claims.Uid), elog.FieldErr(err))
				gctx.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		if allowAdmin && isAdmin {
			return
		}
		// 没有角色的用户不是员工
		if role == "" {
			c.logger.Debug("非员工访问", elog.Int64("uid", claims.Uid))
			gctx.AbortWithStatus(http.StatusForbidden)
			return
		}
		if roles != nil && !slices.Contains(roles, role) {
			c.logger.Debug("员工角色不匹配", elog.Int64("uid", claims.Uid),
				elog.String("role", role), elog.Any("want", roles))
			gctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}
