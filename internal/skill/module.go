package skill

import (
	"github.com/ecodeclub/hirebook/internal/skill/internal/domain"
	"github.com/ecodeclub/hirebook/internal/skill/internal/service"
	"github.com/ecodeclub/hirebook/internal/skill/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.SkillService
type Skill = domain.Skill
