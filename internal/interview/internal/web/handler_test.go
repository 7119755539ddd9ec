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
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/interview/internal/domain"
	"github.com/ecodeclub/hirebook/internal/interview/internal/service"
	svcmocks "github.com/ecodeclub/hirebook/internal/interview/internal/service/mocks"
	"github.com/ecodeclub/hirebook/internal/pkg/middleware"
	middlewaremocks "github.com/ecodeclub/hirebook/internal/pkg/middleware/mocks"
	"github.com/ecodeclub/hirebook/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const jobID = "INT05-03-2024-1"

var (
	hrClaims  = session.Claims{Uid: 9, Data: map[string]string{middleware.ClaimRole: middleware.RoleHR}}
	devClaims = session.Claims{Uid: 10, Data: map[string]string{middleware.ClaimRole: "DEV"}}
)

func TestHandler(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	testCases := []struct {
		name     string
		path     string
		body     any
		claims   session.Claims
		mock     func(ctrl *gomock.Controller) service.InterviewService
		wantCode int
		wantBody string
	}{
		{
			name:   "执行操作成功",
			path:   "/interview/action",
			body:   ActionReq{JobID: jobID, Action: "action_move_to_next_round", Remarks: "ok"},
			claims: hrClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := svcmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Perform(gomock.Any(), jobID, domain.ActionMoveToNextRound, "ok", int64(9)).
					Return(domain.ActionResult{OK: true, Errors: []string{}}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantBody: `{"code":0,"msg":"","data":{"status":true}}`,
		},
		{
			name:   "未知操作",
			path:   "/interview/action",
			body:   ActionReq{JobID: jobID, Action: "hire"},
			claims: hrClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				return svcmocks.NewMockInterviewService(ctrl)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"code":533004,"msg":"Invalid Action","data":{"status":false,"errors":["未知的面试操作: \"hire\", valid actions are: start_first_round, move_to_next_round, reject, select, recommend"]}}`,
		},
		{
			name:   "前置条件不满足",
			path:   "/interview/action",
			body:   ActionReq{JobID: jobID, Action: "start_first_round"},
			claims: hrClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := svcmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Perform(gomock.Any(), jobID, domain.ActionStartFirstRound, "", int64(9)).
					Return(domain.ActionResult{OK: false, Errors: []string{"First round already started"}}, nil)
				return svc
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"code":533005,"msg":"Action can not be performed","data":{"status":false,"errors":["First round already started"]}}`,
		},
		{
			name:   "面试不存在",
			path:   "/interview/action",
			body:   ActionReq{JobID: jobID, Action: "reject"},
			claims: hrClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := svcmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Perform(gomock.Any(), jobID, domain.ActionReject, "", int64(9)).
					Return(domain.ActionResult{}, service.ErrInterviewNotFound)
				return svc
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"code":533002,"msg":"Interview not Found.","data":null}`,
		},
		{
			name:   "轮次冲突",
			path:   "/interview/action",
			body:   ActionReq{JobID: jobID, Action: "recommend"},
			claims: hrClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := svcmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Perform(gomock.Any(), jobID, domain.ActionRecommend, "", int64(9)).
					Return(domain.ActionResult{}, service.ErrDuplicateRound)
				return svc
			},
			wantCode: http.StatusConflict,
			wantBody: `{"code":533007,"msg":"Interview round already exists","data":null}`,
		},
		{
			name:   "系统错误",
			path:   "/interview/action",
			body:   ActionReq{JobID: jobID, Action: "select"},
			claims: hrClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := svcmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Perform(gomock.Any(), jobID, domain.ActionSelect, "", int64(9)).
					Return(domain.ActionResult{}, errors.New("db error"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:   "开发不能执行操作",
			path:   "/interview/action",
			body:   ActionReq{JobID: jobID, Action: "select"},
			claims: devClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				return svcmocks.NewMockInterviewService(ctrl)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "管理员不能执行操作",
			path:   "/interview/action",
			body:   ActionReq{JobID: jobID, Action: "select"},
			claims: session.Claims{Uid: 1, Data: map[string]string{middleware.ClaimAdmin: "true"}},
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				return svcmocks.NewMockInterviewService(ctrl)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "分配参数错误",
			path:   "/interview/assign",
			body:   AssignReq{Employee: "dev1", Candidate: "nobody@example.com"},
			claims: hrClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := svcmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Assign(gomock.Any(), "dev1", "nobody@example.com").
					Return(domain.Interview{}, &domain.ValidationError{Errors: []string{
						"Assigned Employee must be a HR. please check Employee is assigned any role",
						"Candidate not Found.",
					}})
				return svc
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"code":533006,"msg":"Invalid arguments","data":["Assigned Employee must be a HR. please check Employee is assigned any role","Candidate not Found."]}`,
		},
		{
			name:   "分配成功",
			path:   "/interview/assign",
			body:   AssignReq{Employee: "hr1", Candidate: "jane@example.com"},
			claims: hrClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := svcmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Assign(gomock.Any(), "hr1", "jane@example.com").
					Return(domain.Interview{
						ID:        1,
						JobID:     jobID,
						Employee:  domain.Employee{ID: 3, Username: "hr1"},
						Candidate: domain.Candidate{ID: 5, Email: "jane@example.com"},
						Ctime:     1,
						Utime:     1,
					}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantBody: `{"code":0,"msg":"","data":{"jobId":"INT05-03-2024-1","employee":"hr1","candidate":"jane@example.com","status":"","overallRating":null,"rounds":[],"ctime":1,"utime":1}}`,
		},
		{
			name:   "更新轮次",
			path:   "/interview/round/update",
			body:   UpdateRoundReq{JobID: jobID, RoundNo: 1, Round: RoundForm{Interviewer: "bob", Rating: 7, Date: "05-03-2024"}},
			claims: devClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local).UnixMilli()
				svc := svcmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().UpdateRound(gomock.Any(), jobID, 1, domain.RoundUpdate{
					Interviewer: domain.Employee{Username: "bob"},
					Rating:      7,
					Date:        date,
				}).Return(domain.InterviewRound{
					RoundNo:     1,
					Interviewer: domain.Employee{ID: 4, Username: "bob"},
					Rating:      7,
					Date:        date,
				}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantBody: `{"code":0,"msg":"","data":{"roundNo":1,"interviewer":"bob","status":"","rating":7,"remarks":"","isFinalRound":false,"skills":null,"date":"05-03-2024","utime":0}}`,
		},
		{
			name:   "日期格式错误",
			path:   "/interview/round/update",
			body:   UpdateRoundReq{JobID: jobID, RoundNo: 1, Round: RoundForm{Date: "2024-03-05"}},
			claims: devClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				return svcmocks.NewMockInterviewService(ctrl)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "轮次不存在",
			path:   "/interview/round/detail",
			body:   RoundReq{JobID: jobID, RoundNo: 3},
			claims: devClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				svc := svcmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Round(gomock.Any(), jobID, 3).Return(domain.InterviewRound{}, service.ErrRoundNotFound)
				return svc
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"code":533003,"msg":"Interview round not Found.","data":null}`,
		},
		{
			name:   "状态过滤不合法",
			path:   "/interview/list",
			body:   map[string]any{"status": "PASS"},
			claims: devClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				return svcmocks.NewMockInterviewService(ctrl)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"code":533006,"msg":"Invalid arguments","data":["status must be one of SELECT, REJECT or empty."]}`,
		},
		{
			name:   "查询进行中的面试",
			path:   "/interview/list",
			body:   map[string]any{"status": "", "limit": 500},
			claims: devClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				status := domain.StatusUnset
				svc := svcmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().List(gomock.Any(), &status, 0, maxLimit).Return(nil, int64(0), nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantBody: `{"code":0,"msg":"","data":{"total":0,"interviews":[]}}`,
		},
		{
			name:   "全部操作",
			path:   "/interview/actions",
			claims: devClaims,
			mock: func(ctrl *gomock.Controller) service.InterviewService {
				return svcmocks.NewMockInterviewService(ctrl)
			},
			wantCode: http.StatusOK,
			wantBody: `{"code":0,"msg":"","data":["start_first_round","move_to_next_round","reject","select","recommend"]}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				test.SetSession(ctx, tc.claims)
			})
			roles := middleware.NewCheckRoleMiddlewareBuilder(middlewaremocks.NewMockRoleFinder(ctrl))
			NewHandler(tc.mock(ctrl), roles).PrivateRoutes(server)

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)
			req, err := http.NewRequest(http.MethodPost, tc.path, bytes.NewReader(body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			assert.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, recorder.Body.String())
			}
		})
	}
}
