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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/hirebook/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDataNotFound   = gorm.ErrRecordNotFound
	ErrDuplicateRound = errors.New("面试轮次已经存在")
)

// MutateFunc 在持有面试行锁的情况下修改面试和轮次，返回 error 会回滚整个事务
type MutateFunc func(iv Interview, rounds []InterviewRound) (Interview, []InterviewRound, error)

// RetryConfig 死锁或者锁等待超时的时候重试整个事务
type RetryConfig struct {
	Initial    time.Duration `yaml:"initial"`
	Max        time.Duration `yaml:"max"`
	MaxRetries int32         `yaml:"maxRetries"`
}

//go:generate mockgen -source=./interview.go -package=daomocks -destination=mocks/interview.mock.go InterviewDAO
type InterviewDAO interface {
	// Create 先插入拿到主键，再用主键生成面试编号，两步在同一个事务里面
	Create(ctx context.Context, iv Interview, jobID func(id int64) string) (Interview, error)
	Mutate(ctx context.Context, jobID string, fn MutateFunc) (Interview, []InterviewRound, error)
	FindByJobID(ctx context.Context, jobID string) (Interview, []InterviewRound, error)
	// List status 为 nil 的时候不过滤状态
	List(ctx context.Context, status *string, offset, limit int) ([]Interview, error)
	Count(ctx context.Context, status *string) (int64, error)
}

type GORMInterviewDAO struct {
	db    *egorm.Component
	retry RetryConfig
}

func NewGORMInterviewDAO(db *egorm.Component, cfg RetryConfig) InterviewDAO {
	return &GORMInterviewDAO{db: db, retry: cfg}
}

func (g *GORMInterviewDAO) Create(ctx context.Context, iv Interview, jobID func(id int64) string) (Interview, error) {
	now := time.Now().UnixMilli()
	iv.Id = 0
	iv.Ctime = now
	iv.Utime = now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&iv).Error; err != nil {
			return err
		}
		iv.JobId.String = jobID(iv.Id)
		iv.JobId.Valid = iv.JobId.String != ""
		return tx.Model(&Interview{}).Where("id = ?", iv.Id).
			Update("job_id", iv.JobId).Error
	})
	return iv, err
}

func (g *GORMInterviewDAO) Mutate(ctx context.Context, jobID string, fn MutateFunc) (Interview, []InterviewRound, error) {
	var (
		iv     Interview
		rounds []InterviewRound
	)
	err := retryOnContention(ctx, g.retry, func() error {
		var err error
		iv, rounds, err = g.mutate(ctx, jobID, fn)
		return err
	})
	if err != nil {
		return Interview{}, nil, err
	}
	return iv, rounds, nil
}

// retryOnContention 死锁或者锁等待超时的时候整个事务重试，其它错误直接返回
func retryOnContention(ctx context.Context, cfg RetryConfig, tx func() error) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(cfg.Initial, cfg.Max, cfg.MaxRetries)
	if err != nil {
		return err
	}
	for {
		err = tx()
		if !database.IsLockContention(err) {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(next):
		}
	}
}

func (g *GORMInterviewDAO) mutate(ctx context.Context, jobID string, fn MutateFunc) (Interview, []InterviewRound, error) {
	var (
		res       Interview
		resRounds []InterviewRound
	)
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var iv Interview
		// 同一个面试的所有变更串行执行
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("job_id = ?", jobID).First(&iv).Error
		if err != nil {
			return err
		}
		var rounds []InterviewRound
		err = tx.Where("iid = ?", iv.Id).Order("round_no ASC").Find(&rounds).Error
		if err != nil {
			return err
		}
		res, resRounds, err = fn(iv, rounds)
		if err != nil {
			return err
		}

		now := time.Now().UnixMilli()
		res.Utime = now
		err = tx.Model(&Interview{}).Where("id = ?", iv.Id).Updates(map[string]any{
			"job_id":         res.JobId,
			"status":         res.Status,
			"overall_rating": res.OverallRating,
			"utime":          res.Utime,
		}).Error
		if err != nil {
			return err
		}
		for i := range resRounds {
			r := &resRounds[i]
			r.Iid = iv.Id
			r.Utime = now
			if r.Id == 0 {
				r.Ctime = now
				if err = tx.Create(r).Error; err != nil {
					return err
				}
				continue
			}
			err = tx.Model(&InterviewRound{}).Where("id = ? AND iid = ?", r.Id, iv.Id).Updates(map[string]any{
				"interviewer_id": r.InterviewerId,
				"status":         r.Status,
				"rating":         r.Rating,
				"remarks":        r.Remarks,
				"is_final_round": r.IsFinalRound,
				"skills":         r.Skills,
				"date":           r.Date,
				"utime":          r.Utime,
			}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if database.IsUniqueConflict(err) {
		return Interview{}, nil, ErrDuplicateRound
	}
	return res, resRounds, err
}

func (g *GORMInterviewDAO) FindByJobID(ctx context.Context, jobID string) (Interview, []InterviewRound, error) {
	var iv Interview
	var rounds []InterviewRound
	db := g.db.WithContext(ctx)
	if err := db.Where("job_id = ?", jobID).First(&iv).Error; err != nil {
		return Interview{}, nil, err
	}
	err := db.Where("iid = ?", iv.Id).Order("round_no ASC").Find(&rounds).Error
	return iv, rounds, err
}

func (g *GORMInterviewDAO) List(ctx context.Context, status *string, offset, limit int) ([]Interview, error) {
	var res []Interview
	err := g.filter(ctx, status).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) Count(ctx context.Context, status *string) (int64, error) {
	var count int64
	err := g.filter(ctx, status).Model(&Interview{}).Count(&count).Error
	return count, err
}

func (g *GORMInterviewDAO) filter(ctx context.Context, status *string) *gorm.DB {
	db := g.db.WithContext(ctx)
	if status != nil {
		db = db.Where("status = ?", *status)
	}
	return db
}
