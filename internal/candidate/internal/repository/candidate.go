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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hirebook/internal/candidate/internal/domain"
	"github.com/ecodeclub/hirebook/internal/candidate/internal/repository/dao"
)

var (
	ErrCandidateNotFound = dao.ErrDataNotFound
	ErrDuplicateEmail    = dao.ErrDuplicateEmail
)

//go:generate mockgen -source=./candidate.go -package=repomocks -destination=mocks/candidate.mock.go CandidateRepository
type CandidateRepository interface {
	Save(ctx context.Context, c domain.Candidate) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Candidate, error)
	FindByEmail(ctx context.Context, email string) (domain.Candidate, error)
}

type candidateRepository struct {
	dao dao.CandidateDAO
}

func NewCandidateRepository(d dao.CandidateDAO) CandidateRepository {
	return &candidateRepository{dao: d}
}

func (repo *candidateRepository) Save(ctx context.Context, c domain.Candidate) (int64, error) {
	return repo.dao.Save(ctx, dao.Candidate{
		Id:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Gender:    string(c.Gender),
		MobileNo:  c.MobileNo,
		Skills: sqlx.JsonColumn[[]string]{
			Val:   c.Skills,
			Valid: len(c.Skills) != 0,
		},
	})
}

func (repo *candidateRepository) FindById(ctx context.Context, id int64) (domain.Candidate, error) {
	c, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(c), err
}

func (repo *candidateRepository) FindByEmail(ctx context.Context, email string) (domain.Candidate, error) {
	c, err := repo.dao.FindByEmail(ctx, email)
	return repo.toDomain(c), err
}

func (repo *candidateRepository) toDomain(c dao.Candidate) domain.Candidate {
	return domain.Candidate{
		ID:        c.Id,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Gender:    domain.Gender(c.Gender),
		MobileNo:  c.MobileNo,
		Skills:    c.Skills.Val,
		Ctime:     c.Ctime,
		Utime:     c.Utime,
	}
}
