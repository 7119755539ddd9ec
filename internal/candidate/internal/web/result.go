package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/candidate/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.CandidateNotFound.Code,
		Msg:  errs.CandidateNotFound.Msg,
	}
)

func invalidResult(errors []string) ginx.Result {
	return ginx.Result{
		Code: errs.InvalidCandidate.Code,
		Msg:  errs.InvalidCandidate.Msg,
		Data: errors,
	}
}
