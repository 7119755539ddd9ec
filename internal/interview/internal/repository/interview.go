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
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hirebook/internal/interview/internal/domain"
	"github.com/ecodeclub/hirebook/internal/interview/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/interview/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrInterviewNotFound = dao.ErrDataNotFound

//go:generate mockgen -source=./interview.go -package=repomocks -destination=mocks/interview.mock.go InterviewRepository
type InterviewRepository interface {
	// Create 新建面试，插入之后立刻执行提交流程生成面试编号
	Create(ctx context.Context, iv domain.Interview, gen domain.JobIDGenerator) (domain.Interview, error)
	// Mutate 在行锁保护下加载完整的聚合根交给 fn 修改，fn 返回 error 时不会写入任何数据
	Mutate(ctx context.Context, jobID string, fn func(iv *domain.Interview) error) (domain.Interview, error)
	FindByJobID(ctx context.Context, jobID string) (domain.Interview, error)
	// List 不包含轮次
	List(ctx context.Context, status *domain.InterviewStatus, offset, limit int) ([]domain.Interview, error)
	Count(ctx context.Context, status *domain.InterviewStatus) (int64, error)
}

// cacheRedeleteDelay 提交之后第二次删除缓存的延迟
const cacheRedeleteDelay = time.Second

type CachedInterviewRepository struct {
	dao           dao.InterviewDAO
	cache         cache.InterviewCache
	logger        *elog.Component
	redeleteDelay time.Duration
}

func NewCachedInterviewRepository(d dao.InterviewDAO, c cache.InterviewCache) InterviewRepository {
	return &CachedInterviewRepository{
		dao:           d,
		cache:         c,
		logger:        elog.DefaultLogger,
		redeleteDelay: cacheRedeleteDelay,
	}
}

func (repo *CachedInterviewRepository) Create(ctx context.Context, iv domain.Interview, gen domain.JobIDGenerator) (domain.Interview, error) {
	entity, err := repo.dao.Create(ctx, repo.toEntity(iv), func(id int64) string {
		iv.ID = id
		iv.Commit(gen)
		return iv.JobID
	})
	if err != nil {
		return domain.Interview{}, err
	}
	return repo.toDomain(entity, nil), nil
}

func (repo *CachedInterviewRepository) Mutate(ctx context.Context, jobID string, fn func(iv *domain.Interview) error) (domain.Interview, error) {
	entity, rounds, err := repo.dao.Mutate(ctx, jobID, func(e dao.Interview, rs []dao.InterviewRound) (dao.Interview, []dao.InterviewRound, error) {
		iv := repo.toDomain(e, rs)
		if er := fn(&iv); er != nil {
			return dao.Interview{}, nil, er
		}
		return repo.toEntity(iv), repo.toRoundEntities(iv.Rounds), nil
	})
	if errors.Is(err, dao.ErrDuplicateRound) {
		return domain.Interview{}, domain.ErrDuplicateRound
	}
	if err != nil {
		return domain.Interview{}, err
	}
	repo.invalidate(ctx, jobID)
	return repo.toDomain(entity, rounds), nil
}

// invalidate 提交之后立刻删除缓存，延迟之后再删除一次，
// 覆盖提交前读到旧数据、提交后才回写缓存的并发读
func (repo *CachedInterviewRepository) invalidate(ctx context.Context, jobID string) {
	repo.deleteCache(ctx, jobID)
	time.AfterFunc(repo.redeleteDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		repo.deleteCache(ctx, jobID)
	})
}

func (repo *CachedInterviewRepository) deleteCache(ctx context.Context, jobID string) {
	if err := repo.cache.Delete(ctx, jobID); err != nil {
		repo.logger.Error("删除面试缓存失败", elog.String("jobID", jobID), elog.FieldErr(err))
	}
}

func (repo *CachedInterviewRepository) FindByJobID(ctx context.Context, jobID string) (domain.Interview, error) {
	iv, err := repo.cache.Get(ctx, jobID)
	if err == nil {
		return iv, nil
	}
	entity, rounds, err := repo.dao.FindByJobID(ctx, jobID)
	if err != nil {
		return domain.Interview{}, err
	}
	iv = repo.toDomain(entity, rounds)
	if er := repo.cache.Set(ctx, iv); er != nil {
		repo.logger.Error("回写面试缓存失败", elog.String("jobID", jobID), elog.FieldErr(er))
	}
	return iv, nil
}

func (repo *CachedInterviewRepository) List(ctx context.Context, status *domain.InterviewStatus, offset, limit int) ([]domain.Interview, error) {
	ivs, err := repo.dao.List(ctx, repo.statusFilter(status), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ivs, func(_ int, src dao.Interview) domain.Interview {
		return repo.toDomain(src, nil)
	}), nil
}

func (repo *CachedInterviewRepository) Count(ctx context.Context, status *domain.InterviewStatus) (int64, error) {
	return repo.dao.Count(ctx, repo.statusFilter(status))
}

func (repo *CachedInterviewRepository) statusFilter(status *domain.InterviewStatus) *string {
	if status == nil {
		return nil
	}
	s := status.String()
	return &s
}

func (repo *CachedInterviewRepository) toEntity(iv domain.Interview) dao.Interview {
	res := dao.Interview{
		Id:          iv.ID,
		JobId:       sql.NullString{String: iv.JobID, Valid: iv.JobID != ""},
		EmployeeId:  iv.Employee.ID,
		CandidateId: iv.Candidate.ID,
		Status:      iv.Status.String(),
		Ctime:       iv.Ctime,
		Utime:       iv.Utime,
	}
	if iv.OverallRating != nil {
		res.OverallRating = sql.NullFloat64{Float64: *iv.OverallRating, Valid: true}
	}
	return res
}

func (repo *CachedInterviewRepository) toRoundEntities(rounds domain.Rounds) []dao.InterviewRound {
	return slice.Map(rounds, func(_ int, r domain.InterviewRound) dao.InterviewRound {
		return dao.InterviewRound{
			Id:            r.ID,
			Iid:           r.Iid,
			RoundNo:       r.RoundNo,
			InterviewerId: sql.NullInt64{Int64: r.Interviewer.ID, Valid: r.Interviewer.ID > 0},
			Status:        r.Status.String(),
			Rating:        r.Rating,
			Remarks:       sql.NullString{String: r.Remarks, Valid: r.Remarks != ""},
			IsFinalRound:  r.IsFinalRound,
			Skills:        sqlx.JsonColumn[[]string]{Val: r.Skills, Valid: len(r.Skills) > 0},
			Date:          sql.NullInt64{Int64: r.Date, Valid: r.Date > 0},
			Ctime:         r.Ctime,
			Utime:         r.Utime,
		}
	})
}

func (repo *CachedInterviewRepository) toDomain(iv dao.Interview, rounds []dao.InterviewRound) domain.Interview {
	res := domain.Interview{
		ID:        iv.Id,
		JobID:     iv.JobId.String,
		Employee:  domain.Employee{ID: iv.EmployeeId},
		Candidate: domain.Candidate{ID: iv.CandidateId},
		Status:    domain.InterviewStatus(iv.Status),
		Ctime:     iv.Ctime,
		Utime:     iv.Utime,
		Rounds: slice.Map(rounds, func(_ int, r dao.InterviewRound) domain.InterviewRound {
			return domain.InterviewRound{
				ID:           r.Id,
				Iid:          r.Iid,
				RoundNo:      r.RoundNo,
				Interviewer:  domain.Employee{ID: r.InterviewerId.Int64},
				Status:       domain.RoundStatus(r.Status),
				Rating:       r.Rating,
				Remarks:      r.Remarks.String,
				IsFinalRound: r.IsFinalRound,
				Skills:       r.Skills.Val,
				Date:         r.Date.Int64,
				Ctime:        r.Ctime,
				Utime:        r.Utime,
			}
		}),
	}
	if iv.OverallRating.Valid {
		rating := iv.OverallRating.Float64
		res.OverallRating = &rating
	}
	return res
}
