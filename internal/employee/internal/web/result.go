package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/employee/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.EmployeeNotFound.Code,
		Msg:  errs.EmployeeNotFound.Msg,
	}
	invalidRoleResult = ginx.Result{
		Code: errs.InvalidRole.Code,
		Msg:  errs.InvalidRole.Msg,
	}
	invalidUsernameResult = ginx.Result{
		Code: errs.InvalidUsername.Code,
		Msg:  errs.InvalidUsername.Msg,
	}
	duplicateResult = ginx.Result{
		Code: errs.EmployeeDuplicate.Code,
		Msg:  errs.EmployeeDuplicate.Msg,
	}
)
