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
	"strconv"
	"strings"

	"github.com/ecodeclub/hirebook/internal/candidate/internal/domain"
	"github.com/ecodeclub/hirebook/internal/candidate/internal/repository"
	"github.com/ecodeclub/hirebook/internal/skill"
)

var (
	ErrCandidateNotFound = repository.ErrCandidateNotFound
	ErrDuplicateEmail    = repository.ErrDuplicateEmail
)

//go:generate mockgen -source=./candidate.go -package=svcmocks -destination=mocks/candidate.mock.go CandidateService
type CandidateService interface {
	// Save 参数不合法时返回 *domain.ValidationError
	Save(ctx context.Context, c domain.Candidate) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Candidate, error)
	// Lookup 纯数字按照 ID 查找，否则按照邮箱查找
	Lookup(ctx context.Context, key string) (domain.Candidate, error)
}

type candidateService struct {
	repo     repository.CandidateRepository
	skillSvc skill.Service
}

func NewCandidateService(repo repository.CandidateRepository, skillSvc skill.Service) CandidateService {
	return &candidateService{
		repo:     repo,
		skillSvc: skillSvc,
	}
}

func (svc *candidateService) Save(ctx context.Context, c domain.Candidate) (int64, error) {
	c.Email = strings.TrimSpace(c.Email)
	errs := c.Validate()
	missing, err := svc.skillSvc.FindMissing(ctx, c.Skills)
	if err != nil {
		return 0, err
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Sprintf("Skill(s) not found: %s", strings.Join(missing, ", ")))
	}
	if len(errs) > 0 {
		return 0, &domain.ValidationError{Errors: errs}
	}
	id, err := svc.repo.Save(ctx, c)
	if errors.Is(err, ErrDuplicateEmail) {
		return 0, &domain.ValidationError{
			Errors: []string{fmt.Sprintf("Candidate with email: %s, already exists.", c.Email)},
		}
	}
	return id, err
}

func (svc *candidateService) Detail(ctx context.Context, id int64) (domain.Candidate, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *candidateService) Lookup(ctx context.Context, key string) (domain.Candidate, error) {
	key = strings.TrimSpace(key)
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		return svc.repo.FindById(ctx, id)
	}
	return svc.repo.FindByEmail(ctx, key)
}
