package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/skill/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidNameResult = ginx.Result{
		Code: errs.InvalidName.Code,
		Msg:  errs.InvalidName.Msg,
	}
)
