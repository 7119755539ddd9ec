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

package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/employee/internal/service"
	"github.com/ecodeclub/hirebook/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.EmployeeService
	roles  *middleware.CheckRoleMiddlewareBuilder
	logger *elog.Component
}

func NewHandler(svc service.EmployeeService, roles *middleware.CheckRoleMiddlewareBuilder) *Handler {
	return &Handler{
		svc:    svc,
		roles:  roles,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/employee")
	g.POST("/save", h.roles.Admin(), ginx.B[SaveReq](h.Save))
	g.POST("/detail", h.roles.Employee(), ginx.B[EmployeeID](h.Detail))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), req.Employee.toDomain())
	switch {
	case err == nil:
		return ginx.Result{Data: id}, nil
	case errors.Is(err, service.ErrInvalidRole):
		ctx.JSON(http.StatusBadRequest, invalidRoleResult)
		return ginx.Result{}, ginx.ErrNoResponse
	case errors.Is(err, service.ErrInvalidUsername):
		ctx.JSON(http.StatusBadRequest, invalidUsernameResult)
		return ginx.Result{}, ginx.ErrNoResponse
	case errors.Is(err, service.ErrEmployeeDuplicate):
		ctx.JSON(http.StatusConflict, duplicateResult)
		return ginx.Result{}, ginx.ErrNoResponse
	case errors.Is(err, service.ErrEmployeeNotFound):
		ctx.JSON(http.StatusNotFound, notFoundResult)
		return ginx.Result{}, ginx.ErrNoResponse
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Detail(ctx *ginx.Context, req EmployeeID) (ginx.Result, error) {
	e, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrEmployeeNotFound) {
		ctx.JSON(http.StatusNotFound, notFoundResult)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newEmployee(e)}, nil
}
