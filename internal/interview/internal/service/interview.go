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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ecodeclub/hirebook/internal/candidate"
	"github.com/ecodeclub/hirebook/internal/employee"
	"github.com/ecodeclub/hirebook/internal/interview/internal/domain"
	"github.com/ecodeclub/hirebook/internal/interview/internal/event"
	"github.com/ecodeclub/hirebook/internal/interview/internal/repository"
	"github.com/ecodeclub/hirebook/internal/skill"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const actionAssign = "assign"

var (
	ErrInterviewNotFound = repository.ErrInterviewNotFound
	ErrRoundNotFound     = domain.ErrRoundNotFound
	ErrDuplicateRound    = domain.ErrDuplicateRound
	ErrUnknownAction     = domain.ErrUnknownAction

	// errActionRejected 前置条件不满足，用来回滚事务
	errActionRejected = errors.New("面试操作前置条件不满足")
)

//go:generate mockgen -source=./interview.go -package=svcmocks -destination=mocks/interview.mock.go InterviewService
type InterviewService interface {
	// Assign employeeKey 是员工的 ID 或者用户名，candidateKey 是候选人的 ID 或者邮箱。
	// 参数不合法时返回 *domain.ValidationError
	Assign(ctx context.Context, employeeKey, candidateKey string) (domain.Interview, error)
	// Perform 前置条件不满足不会返回 error，而是 ActionResult.OK 为 false
	Perform(ctx context.Context, jobID string, action domain.Action, remarks string, uid int64) (domain.ActionResult, error)
	Detail(ctx context.Context, jobID string) (domain.Interview, error)
	// List status 为 nil 时返回全部面试，结果不包含轮次
	List(ctx context.Context, status *domain.InterviewStatus, offset, limit int) ([]domain.Interview, int64, error)
	Round(ctx context.Context, jobID string, roundNo int) (domain.InterviewRound, error)
	// UpdateRound upd.Interviewer 只需要填写用户名
	UpdateRound(ctx context.Context, jobID string, roundNo int, upd domain.RoundUpdate) (domain.InterviewRound, error)
}

type interviewService struct {
	repo         repository.InterviewRepository
	employeeSvc  employee.Service
	candidateSvc candidate.Service
	skillSvc     skill.Service
	producer     event.InterviewEventProducer
	gen          domain.JobIDGenerator
	metrics      *ActionMetrics
	logger       *elog.Component
}

func NewInterviewService(
	repo repository.InterviewRepository,
	employeeSvc employee.Service,
	candidateSvc candidate.Service,
	skillSvc skill.Service,
	producer event.InterviewEventProducer,
	gen domain.JobIDGenerator,
	metrics *ActionMetrics,
) InterviewService {
	return &interviewService{
		repo:         repo,
		employeeSvc:  employeeSvc,
		candidateSvc: candidateSvc,
		skillSvc:     skillSvc,
		producer:     producer,
		gen:          gen,
		metrics:      metrics,
		logger:       elog.DefaultLogger,
	}
}

func (svc *interviewService) Assign(ctx context.Context, employeeKey, candidateKey string) (domain.Interview, error) {
	var (
		emp     employee.Employee
		cand    candidate.Candidate
		empErr  error
		candErr error
	)
	var eg errgroup.Group
	eg.Go(func() error {
		emp, empErr = svc.employeeSvc.Lookup(ctx, employeeKey)
		if errors.Is(empErr, employee.ErrEmployeeNotFound) {
			return nil
		}
		return empErr
	})
	eg.Go(func() error {
		cand, candErr = svc.candidateSvc.Lookup(ctx, candidateKey)
		if errors.Is(candErr, candidate.ErrCandidateNotFound) {
			return nil
		}
		return candErr
	})
	if err := eg.Wait(); err != nil {
		return domain.Interview{}, err
	}

	var errs []string
	switch {
	case empErr != nil:
		errs = append(errs, "Employee not Found.")
	case !emp.IsHR():
		errs = append(errs, "Assigned Employee must be a HR. please check Employee is assigned any role")
	}
	if candErr != nil {
		errs = append(errs, "Candidate not Found.")
	}
	if len(errs) > 0 {
		return domain.Interview{}, &domain.ValidationError{Errors: errs}
	}

	iv, err := svc.repo.Create(ctx, domain.Interview{
		Employee:  domain.Employee{ID: emp.ID, Username: emp.Username},
		Candidate: domain.Candidate{ID: cand.ID, Email: cand.Email},
	}, svc.gen)
	if err != nil {
		return domain.Interview{}, err
	}
	iv.Employee.Username = emp.Username
	iv.Candidate.Email = cand.Email
	svc.produce(ctx, iv, actionAssign, emp.ID)
	return iv, nil
}

func (svc *interviewService) Perform(ctx context.Context, jobID string, action domain.Action, remarks string, uid int64) (domain.ActionResult, error) {
	if !action.IsValid() {
		return domain.ActionResult{}, ErrUnknownAction
	}
	if !action.AcceptsRemarks() {
		remarks = ""
	}
	var res domain.ActionResult
	iv, err := svc.repo.Mutate(ctx, jobID, func(iv *domain.Interview) error {
		res = iv.Perform(action, remarks)
		if !res.OK {
			return errActionRejected
		}
		iv.Commit(svc.gen)
		return nil
	})
	switch {
	case errors.Is(err, errActionRejected):
		svc.metrics.observe(action.String(), resultRejected)
		return res, nil
	case err != nil:
		svc.metrics.observe(action.String(), resultError)
		return domain.ActionResult{}, err
	}
	svc.metrics.observe(action.String(), resultOK)
	svc.produce(ctx, iv, action.String(), uid)
	return res, nil
}

func (svc *interviewService) Detail(ctx context.Context, jobID string) (domain.Interview, error) {
	iv, err := svc.repo.FindByJobID(ctx, jobID)
	if err != nil {
		return domain.Interview{}, err
	}
	ivs := []domain.Interview{iv}
	err = svc.fill(ctx, ivs)
	return ivs[0], err
}

func (svc *interviewService) List(ctx context.Context, status *domain.InterviewStatus, offset, limit int) ([]domain.Interview, int64, error) {
	var (
		eg    errgroup.Group
		ivs   []domain.Interview
		total int64
	)
	eg.Go(func() error {
		var err error
		ivs, err = svc.repo.List(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = svc.repo.Count(ctx, status)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return ivs, total, svc.fill(ctx, ivs)
}

func (svc *interviewService) Round(ctx context.Context, jobID string, roundNo int) (domain.InterviewRound, error) {
	iv, err := svc.Detail(ctx, jobID)
	if err != nil {
		return domain.InterviewRound{}, err
	}
	r, ok := iv.Rounds.Get(roundNo)
	if !ok {
		return domain.InterviewRound{}, ErrRoundNotFound
	}
	return r, nil
}

func (svc *interviewService) UpdateRound(ctx context.Context, jobID string, roundNo int, upd domain.RoundUpdate) (domain.InterviewRound, error) {
	if err := svc.resolveRoundUpdate(ctx, &upd); err != nil {
		return domain.InterviewRound{}, err
	}
	iv, err := svc.repo.Mutate(ctx, jobID, func(iv *domain.Interview) error {
		r, ok := iv.Rounds.Get(roundNo)
		if !ok {
			return ErrRoundNotFound
		}
		if !r.HasInterviewer() && upd.Interviewer.ID == 0 {
			return &domain.ValidationError{Errors: []string{"interviewer is a required field."}}
		}
		if err := iv.UpdateRound(roundNo, upd); err != nil {
			return err
		}
		iv.Commit(svc.gen)
		return nil
	})
	if err != nil {
		return domain.InterviewRound{}, err
	}
	r, _ := iv.Rounds.Get(roundNo)
	if r.Interviewer.ID == upd.Interviewer.ID {
		r.Interviewer.Username = upd.Interviewer.Username
	} else if e, er := svc.employeeSvc.Detail(ctx, r.Interviewer.ID); er == nil {
		r.Interviewer.Username = e.Username
	}
	return r, nil
}

// resolveRoundUpdate 校验技能、评分，并且把面试官的用户名换成 ID
func (svc *interviewService) resolveRoundUpdate(ctx context.Context, upd *domain.RoundUpdate) error {
	var errs []string
	missing, err := svc.skillSvc.FindMissing(ctx, upd.Skills)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("Skill(s) not found: %s", strings.Join(missing, ", ")))
	}
	if upd.Rating < domain.MinRating || upd.Rating > domain.MaxRating {
		errs = append(errs, fmt.Sprintf("rating must be between %d and %d.", domain.MinRating, domain.MaxRating))
	}
	upd.Interviewer.ID = 0
	if username := strings.TrimSpace(upd.Interviewer.Username); username != "" {
		e, er := svc.employeeSvc.FindByUsername(ctx, username)
		switch {
		case errors.Is(er, employee.ErrEmployeeNotFound):
			errs = append(errs, "Employee(Interviewer) not Found.")
		case er != nil:
			return er
		default:
			upd.Interviewer = domain.Employee{ID: e.ID, Username: e.Username}
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// fill 补齐 HR、面试官的用户名和候选人的邮箱，已经被删除的员工或者候选人保持为空
func (svc *interviewService) fill(ctx context.Context, ivs []domain.Interview) error {
	var (
		mu         sync.Mutex
		usernames  = make(map[int64]string)
		emails     = make(map[int64]string)
		employees  = make(map[int64]struct{})
		candidates = make(map[int64]struct{})
	)
	for _, iv := range ivs {
		employees[iv.Employee.ID] = struct{}{}
		candidates[iv.Candidate.ID] = struct{}{}
		for _, r := range iv.Rounds {
			if r.HasInterviewer() {
				employees[r.Interviewer.ID] = struct{}{}
			}
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	for id := range employees {
		eg.Go(func() error {
			e, err := svc.employeeSvc.Detail(ctx, id)
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			usernames[id] = e.Username
			mu.Unlock()
			return nil
		})
	}
	for id := range candidates {
		eg.Go(func() error {
			c, err := svc.candidateSvc.Detail(ctx, id)
			if errors.Is(err, candidate.ErrCandidateNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			emails[id] = c.Email
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i := range ivs {
		ivs[i].Employee.Username = usernames[ivs[i].Employee.ID]
		ivs[i].Candidate.Email = emails[ivs[i].Candidate.ID]
		for j := range ivs[i].Rounds {
			r := &ivs[i].Rounds[j]
			r.Interviewer.Username = usernames[r.Interviewer.ID]
		}
	}
	return nil
}

// produce 事件发送失败只记录日志，不影响已经提交的变更
func (svc *interviewService) produce(ctx context.Context, iv domain.Interview, action string, uid int64) {
	evt := event.NewInterviewEvent(iv, action, uid)
	if err := svc.producer.Produce(ctx, evt); err != nil {
		svc.logger.Error("发送面试事件失败",
			elog.String("jobID", iv.JobID),
			elog.String("action", action),
			elog.FieldErr(err))
	}
}
