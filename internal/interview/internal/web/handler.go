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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/interview/internal/domain"
	"github.com/ecodeclub/hirebook/internal/interview/internal/service"
	"github.com/ecodeclub/hirebook/internal/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const maxLimit = 100

type Handler struct {
	svc    service.InterviewService
	roles  *middleware.CheckRoleMiddlewareBuilder
	logger *elog.Component
}

func NewHandler(svc service.InterviewService, roles *middleware.CheckRoleMiddlewareBuilder) *Handler {
	return &Handler{
		svc:    svc,
		roles:  roles,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interview")
	g.POST("/assign", h.roles.AdminOr(middleware.RoleHR), ginx.B[AssignReq](h.Assign))
	// 管理员也不能推进面试流程
	g.POST("/action", h.roles.Only(middleware.RoleHR), ginx.BS[ActionReq](h.Action))
	g.POST("/actions", h.roles.Employee(), ginx.W(h.Actions))
	g.POST("/detail", h.roles.Employee(), ginx.B[JobID](h.Detail))
	g.POST("/list", h.roles.Employee(), ginx.B[ListReq](h.List))
	g.POST("/round/detail", h.roles.Employee(), ginx.B[RoundReq](h.RoundDetail))
	g.POST("/round/update", h.roles.Employee(), ginx.B[UpdateRoundReq](h.UpdateRound))
}

func (h *Handler) Assign(ctx *ginx.Context, req AssignReq) (ginx.Result, error) {
	iv, err := h.svc.Assign(ctx.Request.Context(), req.Employee, req.Candidate)
	if err != nil {
		return h.fail(ctx, err)
	}
	return ginx.Result{Data: newInterview(iv)}, nil
}

func (h *Handler) Action(ctx *ginx.Context, req ActionReq, sess session.Session) (ginx.Result, error) {
	action, err := domain.ParseAction(req.Action)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, invalidActionResult(err.Error()))
		return ginx.Result{}, ginx.ErrNoResponse
	}
	res, err := h.svc.Perform(ctx.Request.Context(), req.JobID, action, req.Remarks, sess.Claims().Uid)
	if err != nil {
		return h.fail(ctx, err)
	}
	if !res.OK {
		ctx.JSON(http.StatusBadRequest, rejectedResult(res.Errors))
		return ginx.Result{}, ginx.ErrNoResponse
	}
	return ginx.Result{Data: ActionResp{Status: true}}, nil
}

func (h *Handler) Actions(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{Data: domain.ActionNames()}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req JobID) (ginx.Result, error) {
	iv, err := h.svc.Detail(ctx.Request.Context(), req.JobID)
	if err != nil {
		return h.fail(ctx, err)
	}
	return ginx.Result{Data: newInterview(iv)}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	var status *domain.InterviewStatus
	if req.Status != nil {
		s := domain.InterviewStatus(*req.Status)
		if !s.IsValid() {
			ctx.JSON(http.StatusBadRequest, invalidResult([]string{"status must be one of SELECT, REJECT or empty."}))
			return ginx.Result{}, ginx.ErrNoResponse
		}
		status = &s
	}
	if req.Limit <= 0 || req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	ivs, total, err := h.svc.List(ctx.Request.Context(), status, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: InterviewList{
		Total: total,
		Interviews: slice.Map(ivs, func(_ int, src domain.Interview) Interview {
			return newInterview(src)
		}),
	}}, nil
}

func (h *Handler) RoundDetail(ctx *ginx.Context, req RoundReq) (ginx.Result, error) {
	r, err := h.svc.Round(ctx.Request.Context(), req.JobID, req.RoundNo)
	if err != nil {
		return h.fail(ctx, err)
	}
	return ginx.Result{Data: newRound(r)}, nil
}

func (h *Handler) UpdateRound(ctx *ginx.Context, req UpdateRoundReq) (ginx.Result, error) {
	upd, err := req.Round.toDomain()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, invalidResult([]string{err.Error()}))
		return ginx.Result{}, ginx.ErrNoResponse
	}
	r, err := h.svc.UpdateRound(ctx.Request.Context(), req.JobID, req.RoundNo, upd)
	if err != nil {
		return h.fail(ctx, err)
	}
	return ginx.Result{Data: newRound(r)}, nil
}

// fail 业务错误直接写响应，系统错误交给 ginx 记录日志并返回 500
func (h *Handler) fail(ctx *ginx.Context, err error) (ginx.Result, error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, invalidResult(verr.Errors))
	case errors.Is(err, service.ErrRoundNotFound):
		ctx.JSON(http.StatusNotFound, roundNotFoundResult)
	case errors.Is(err, service.ErrInterviewNotFound):
		ctx.JSON(http.StatusNotFound, interviewNotFoundResult)
	case errors.Is(err, service.ErrDuplicateRound):
		h.logger.Warn("面试轮次冲突", elog.FieldErr(err))
		ctx.JSON(http.StatusConflict, conflictResult)
	default:
		return systemErrorResult, err
	}
	return ginx.Result{}, ginx.ErrNoResponse
}
