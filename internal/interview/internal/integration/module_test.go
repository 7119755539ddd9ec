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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/candidate"
	"github.com/ecodeclub/hirebook/internal/employee"
	"github.com/ecodeclub/hirebook/internal/interview/internal/domain"
	"github.com/ecodeclub/hirebook/internal/interview/internal/integration/startup"
	"github.com/ecodeclub/hirebook/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/hirebook/internal/interview/internal/web"
	"github.com/ecodeclub/hirebook/internal/pkg/middleware"
	"github.com/ecodeclub/hirebook/internal/skill"
	"github.com/ecodeclub/hirebook/internal/test"
	testioc "github.com/ecodeclub/hirebook/internal/test/ioc"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const roleHeader = "X-Test-Role"

type InterviewSuite struct {
	suite.Suite
	db     *gorm.DB
	mods   *startup.Modules
	server *egin.Component
	hrID   int64
}

func TestInterview(t *testing.T) {
	suite.Run(t, new(InterviewSuite))
}

func (s *InterviewSuite) SetupSuite() {
	db := testioc.InitDB()
	s.db = db
	for _, table := range []string{"users", "employee_profiles", "skills", "candidates", "interviews", "interview_rounds"} {
		// 表可能还没有创建
		_ = s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
	}
	mods, err := startup.InitModules(db, testioc.InitCache(), testioc.InitMQ())
	require.NoError(s.T(), err)
	s.mods = mods

	ctx := context.Background()
	s.hrID, err = mods.Employee.Svc.Save(ctx, employee.Employee{
		Username: "hr1", Email: "hr1@example.com", FirstName: "Hr", LastName: "One", Role: employee.RoleHR,
	})
	require.NoError(s.T(), err)
	_, err = mods.Employee.Svc.Save(ctx, employee.Employee{
		Username: "dev1", Email: "dev1@example.com", FirstName: "Dev", LastName: "One", Role: employee.RoleDEV,
	})
	require.NoError(s.T(), err)
	for _, name := range []string{"Go", "MySQL"} {
		_, err = mods.Skill.Svc.Save(ctx, skill.Skill{Name: name})
		require.NoError(s.T(), err)
	}
	_, err = mods.Candidate.Svc.Save(ctx, candidate.Candidate{
		Email: "jane@example.com", FirstName: "Jane", LastName: "Doe",
		Gender: "Female", MobileNo: "+919876543210", Skills: []string{"Go"},
	})
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "10s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		role := ctx.GetHeader(roleHeader)
		if role == "" {
			role = middleware.RoleHR
		}
		test.SetSession(ctx, session.Claims{
			Uid:  s.hrID,
			Data: map[string]string{middleware.ClaimRole: role},
		})
	})
	mods.Interview.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *InterviewSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `interviews`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `interview_rounds`").Error
	require.NoError(s.T(), err)
}

func post[T any](t *testing.T, server *egin.Component, path string, body any, role string) (int, test.Result[T]) {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	if role != "" {
		req.Header.Set(roleHeader, role)
	}
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	if recorder.Body.Len() == 0 {
		return recorder.Code, test.Result[T]{}
	}
	return recorder.Code, recorder.MustScan()
}

func (s *InterviewSuite) assign() string {
	code, res := post[web.Interview](s.T(), s.server, "/interview/assign",
		web.AssignReq{Employee: "hr1", Candidate: "jane@example.com"}, "")
	require.Equal(s.T(), http.StatusOK, code)
	return res.Data.JobID
}

func (s *InterviewSuite) act(jobID, action, remarks string) (int, test.Result[web.ActionResp]) {
	return post[web.ActionResp](s.T(), s.server, "/interview/action",
		web.ActionReq{JobID: jobID, Action: action, Remarks: remarks}, "")
}

func (s *InterviewSuite) updateRound(jobID string, roundNo int, form web.RoundForm) {
	code, _ := post[web.Round](s.T(), s.server, "/interview/round/update",
		web.UpdateRoundReq{JobID: jobID, RoundNo: roundNo, Round: form}, "DEV")
	require.Equal(s.T(), http.StatusOK, code)
}

func (s *InterviewSuite) TestAssign() {
	t := s.T()
	code, res := post[web.Interview](t, s.server, "/interview/assign",
		web.AssignReq{Employee: "hr1", Candidate: "jane@example.com"}, "")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, strings.HasPrefix(res.Data.JobID, "INT"))
	assert.Equal(t, "hr1", res.Data.Employee)
	assert.Equal(t, "jane@example.com", res.Data.Candidate)
	assert.Equal(t, "", res.Data.Status)
	assert.Empty(t, res.Data.Rounds)

	var iv dao.Interview
	err := s.db.Where("job_id = ?", res.Data.JobID).First(&iv).Error
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("-%d", iv.Id), res.Data.JobID[strings.LastIndex(res.Data.JobID, "-"):])

	code, errRes := post[[]string](t, s.server, "/interview/assign",
		web.AssignReq{Employee: "dev1", Candidate: "nobody@example.com"}, "")
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []string{
		"Assigned Employee must be a HR. please check Employee is assigned any role",
		"Candidate not Found.",
	}, errRes.Data)

	code, _ = post[web.Interview](t, s.server, "/interview/assign",
		web.AssignReq{Employee: "hr1", Candidate: "jane@example.com"}, "DEV")
	assert.Equal(t, http.StatusForbidden, code)
}

func (s *InterviewSuite) TestJourney() {
	t := s.T()
	jobID := s.assign()

	code, res := s.act(jobID, "start_first_round", "")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, res.Data.Status)
	s.updateRound(jobID, 1, web.RoundForm{Interviewer: "dev1", Rating: 6, Skills: []string{"Go"}, Date: "05-03-2024"})

	code, _ = s.act(jobID, "action_move_to_next_round", "good")
	require.Equal(t, http.StatusOK, code)
	s.updateRound(jobID, 2, web.RoundForm{Interviewer: "dev1", Rating: 8})

	code, _ = s.act(jobID, "recommend", "strong")
	require.Equal(t, http.StatusOK, code)
	s.updateRound(jobID, 3, web.RoundForm{Interviewer: "dev1", Rating: 9, IsFinalRound: true})

	code, _ = s.act(jobID, "select", "welcome")
	require.Equal(t, http.StatusOK, code)

	code, detail := post[web.Interview](t, s.server, "/interview/detail", web.JobID{JobID: jobID}, "DEV")
	require.Equal(t, http.StatusOK, code)
	iv := detail.Data
	assert.Equal(t, "SELECT", iv.Status)
	require.NotNil(t, iv.OverallRating)
	assert.InDelta(t, 23.0/3.0, *iv.OverallRating, 1e-9)
	require.Len(t, iv.Rounds, 3)
	assert.Equal(t, web.Round{RoundNo: 1, Interviewer: "dev1", Status: "PASS", Rating: 6,
		Remarks: "good", Skills: []string{"Go"}, Date: "05-03-2024", Utime: iv.Rounds[0].Utime}, iv.Rounds[0])
	assert.Equal(t, "RECOMMEND", iv.Rounds[1].Status)
	assert.Equal(t, "strong", iv.Rounds[1].Remarks)
	assert.Equal(t, "PASS", iv.Rounds[2].Status)
	assert.Equal(t, "welcome", iv.Rounds[2].Remarks)

	code, res = s.act(jobID, "reject", "")
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []string{"Invalid Action: Cannot mark reject, candidate is already marked SELECT."}, res.Data.Errors)

	code, listRes := post[web.InterviewList](t, s.server, "/interview/list",
		map[string]any{"status": "SELECT", "limit": 10}, "DEV")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(1), listRes.Data.Total)
}

func (s *InterviewSuite) TestActionErrors() {
	t := s.T()
	jobID := s.assign()

	code, _ := s.act("INT01-01-2024-999", "start_first_round", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, res := s.act(jobID, "hire", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, res.Data.Status)

	code, res = s.act(jobID, "move_to_next_round", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []string{"Invalid Action: First Round isn't started."}, res.Data.Errors)

	code, _ = post[web.ActionResp](t, s.server, "/interview/action",
		web.ActionReq{JobID: jobID, Action: "start_first_round"}, "DEV")
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = s.act(jobID, "start_first_round", "")
	require.Equal(t, http.StatusOK, code)
	code, errRes := post[[]string](t, s.server, "/interview/round/update",
		web.UpdateRoundReq{JobID: jobID, RoundNo: 1, Round: web.RoundForm{Rating: 5}}, "DEV")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, []string{"interviewer is a required field."}, errRes.Data)
}

// 并发推进同一个面试时轮次编号必须连续
func (s *InterviewSuite) TestConcurrentMoveToNextRound() {
	t := s.T()
	ctx := context.Background()
	svc := s.mods.Interview.Svc
	iv, err := svc.Assign(ctx, "hr1", "jane@example.com")
	require.NoError(t, err)
	res, err := svc.Perform(ctx, iv.JobID, domain.ActionStartFirstRound, "", s.hrID)
	require.NoError(t, err)
	require.True(t, res.OK)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Perform(ctx, iv.JobID, domain.ActionMoveToNextRound, "", s.hrID)
		}(i)
	}
	wg.Wait()
	for _, e := range errs {
		require.NoError(t, e)
	}

	var rounds []dao.InterviewRound
	err = s.db.Where("iid = ?", iv.ID).Order("round_no ASC").Find(&rounds).Error
	require.NoError(t, err)
	require.Len(t, rounds, n+1)
	for i, r := range rounds {
		assert.Equal(t, i+1, r.RoundNo)
	}
}
