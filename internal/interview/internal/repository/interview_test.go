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
	"testing"
	"time"

	"github.com/ecodeclub/hirebook/internal/interview/internal/domain"
	cachemocks "github.com/ecodeclub/hirebook/internal/interview/internal/repository/cache/mocks"
	"github.com/ecodeclub/hirebook/internal/interview/internal/repository/dao"
	daomocks "github.com/ecodeclub/hirebook/internal/interview/internal/repository/dao/mocks"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const jobID = "INT05-03-2024-1"

func TestCachedInterviewRepository_Mutate(t *testing.T) {
	stored := dao.Interview{
		Id:          1,
		JobId:       sql.NullString{String: jobID, Valid: true},
		EmployeeId:  9,
		CandidateId: 3,
	}
	testCases := []struct {
		name string
		fn   func(iv *domain.Interview) error
		// daoErr 不为 nil 时 DAO 直接返回这个错误
		daoErr      error
		wantDeletes int
		wantErr     error
		wantRounds  int
	}{
		{
			name: "提交之后删除两次缓存",
			fn: func(iv *domain.Interview) error {
				if res := iv.Perform(domain.ActionStartFirstRound, ""); !res.OK {
					return errors.New(res.Errors[0])
				}
				return nil
			},
			wantDeletes: 2,
			wantRounds:  1,
		},
		{
			name: "修改失败不删除缓存",
			fn: func(iv *domain.Interview) error {
				return domain.ErrRoundNotFound
			},
			wantErr: domain.ErrRoundNotFound,
		},
		{
			name:    "轮次冲突",
			fn:      func(iv *domain.Interview) error { return nil },
			daoErr:  dao.ErrDuplicateRound,
			wantErr: domain.ErrDuplicateRound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := daomocks.NewMockInterviewDAO(ctrl)
			d.EXPECT().Mutate(gomock.Any(), jobID, gomock.Any()).
				DoAndReturn(func(ctx context.Context, jobID string, fn dao.MutateFunc) (dao.Interview, []dao.InterviewRound, error) {
					if tc.daoErr != nil {
						return dao.Interview{}, nil, tc.daoErr
					}
					return fn(stored, nil)
				})
			deleted := make(chan struct{}, 2)
			c := cachemocks.NewMockInterviewCache(ctrl)
			c.EXPECT().Delete(gomock.Any(), jobID).
				DoAndReturn(func(ctx context.Context, jobID string) error {
					deleted <- struct{}{}
					return nil
				}).Times(tc.wantDeletes)
			repo := &CachedInterviewRepository{
				dao:           d,
				cache:         c,
				logger:        elog.DefaultLogger,
				redeleteDelay: time.Millisecond,
			}

			iv, err := repo.Mutate(context.Background(), jobID, tc.fn)
			assert.ErrorIs(t, err, tc.wantErr)
			for i := 0; i < tc.wantDeletes; i++ {
				select {
				case <-deleted:
				case <-time.After(time.Second):
					require.FailNow(t, "缓存没有被删除两次")
				}
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, jobID, iv.JobID)
			assert.Len(t, iv.Rounds, tc.wantRounds)
		})
	}
}
