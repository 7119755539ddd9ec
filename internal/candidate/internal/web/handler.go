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
	"github.com/ecodeclub/hirebook/internal/candidate/internal/domain"
	"github.com/ecodeclub/hirebook/internal/candidate/internal/service"
	"github.com/ecodeclub/hirebook/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc   service.CandidateService
	roles *middleware.CheckRoleMiddlewareBuilder
}

func NewHandler(svc service.CandidateService, roles *middleware.CheckRoleMiddlewareBuilder) *Handler {
	return &Handler{
		svc:   svc,
		roles: roles,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/candidate")
	g.POST("/save", h.roles.AdminOr(middleware.RoleHR), ginx.B[SaveReq](h.Save))
	g.POST("/detail", h.roles.Employee(), ginx.B[CandidateID](h.Detail))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), req.Candidate.toDomain())
	var verr *domain.ValidationError
	switch {
	case err == nil:
		return ginx.Result{Data: id}, nil
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, invalidResult(verr.Errors))
		return ginx.Result{}, ginx.ErrNoResponse
	case errors.Is(err, service.ErrCandidateNotFound):
		ctx.JSON(http.StatusNotFound, notFoundResult)
		return ginx.Result{}, ginx.ErrNoResponse
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Detail(ctx *ginx.Context, req CandidateID) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx.Request.Context(), req.ID)
	if errors.Is(err, service.ErrCandidateNotFound) {
		ctx.JSON(http.StatusNotFound, notFoundResult)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCandidate(c)}, nil
}
