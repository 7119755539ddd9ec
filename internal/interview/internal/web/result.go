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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/hirebook/internal/interview/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	interviewNotFoundResult = ginx.Result{
		Code: errs.InterviewNotFound.Code,
		Msg:  errs.InterviewNotFound.Msg,
	}
	roundNotFoundResult = ginx.Result{
		Code: errs.RoundNotFound.Code,
		Msg:  errs.RoundNotFound.Msg,
	}
	conflictResult = ginx.Result{
		Code: errs.IntegrityConflict.Code,
		Msg:  errs.IntegrityConflict.Msg,
	}
)

func invalidResult(errors []string) ginx.Result {
	return ginx.Result{
		Code: errs.InvalidArgs.Code,
		Msg:  errs.InvalidArgs.Msg,
		Data: errors,
	}
}

func invalidActionResult(msg string) ginx.Result {
	return ginx.Result{
		Code: errs.InvalidAction.Code,
		Msg:  errs.InvalidAction.Msg,
		Data: ActionResp{Status: false, Errors: []string{msg}},
	}
}

func rejectedResult(errors []string) ginx.Result {
	return ginx.Result{
		Code: errs.ActionRejected.Code,
		Msg:  errs.ActionRejected.Msg,
		Data: ActionResp{Status: false, Errors: errors},
	}
}
