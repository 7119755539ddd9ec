package candidate

import (
	"github.com/ecodeclub/hirebook/internal/candidate/internal/domain"
	"github.com/ecodeclub/hirebook/internal/candidate/internal/service"
	"github.com/ecodeclub/hirebook/internal/candidate/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Hdl
}

type Hdl = web.Handler
type Service = service.CandidateService
type Candidate = domain.Candidate

var ErrCandidateNotFound = service.ErrCandidateNotFound
