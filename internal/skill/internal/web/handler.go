package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/pkg/middleware"
	"github.com/ecodeclub/hirebook/internal/skill/internal/domain"
	"github.com/ecodeclub/hirebook/internal/skill/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const maxLimit = 100

type Handler struct {
	svc    service.SkillService
	roles  *middleware.CheckRoleMiddlewareBuilder
	logger *elog.Component
}

func NewHandler(svc service.SkillService, roles *middleware.CheckRoleMiddlewareBuilder) *Handler {
	return &Handler{
		svc:    svc,
		roles:  roles,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/skill/save", h.roles.AdminOr(middleware.RoleHR), ginx.B[SaveReq](h.Save))
	server.POST("/skill/list", h.roles.Employee(), ginx.B[Page](h.List))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), req.Skill.toDomain())
	if errors.Is(err, domain.ErrInvalidName) {
		ctx.JSON(http.StatusBadRequest, invalidNameResult)
		return ginx.Result{}, ginx.ErrNoResponse
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	if req.Limit <= 0 || req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	skills, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SkillList{
			Total: total,
			Skills: slice.Map(skills, func(idx int, src domain.Skill) Skill {
				return newSkill(src)
			}),
		},
	}, nil
}
