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
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestRetryOnContention(t *testing.T) {
	deadlock := &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}
	lockWait := &mysql.MySQLError{Number: 1205, Message: "Lock wait timeout exceeded"}
	fast := RetryConfig{Initial: time.Millisecond, Max: 5 * time.Millisecond, MaxRetries: 2}

	testCases := []struct {
		name string
		cfg  RetryConfig
		// errs 依次作为每次执行的结果，超出部分返回 nil
		errs      []error
		cancel    bool
		wantErr   error
		wantCalls int
	}{
		{
			name:      "一次成功",
			cfg:       fast,
			wantCalls: 1,
		},
		{
			name:      "死锁之后重试成功",
			cfg:       fast,
			errs:      []error{deadlock, lockWait},
			wantCalls: 3,
		},
		{
			name:      "重试次数耗尽",
			cfg:       fast,
			errs:      []error{deadlock, deadlock, lockWait, deadlock},
			wantErr:   lockWait,
			wantCalls: 3,
		},
		{
			name:      "其它错误不重试",
			cfg:       fast,
			errs:      []error{&mysql.MySQLError{Number: 1062}},
			wantErr:   &mysql.MySQLError{Number: 1062},
			wantCalls: 1,
		},
		{
			name:      "等待期间取消",
			cfg:       RetryConfig{Initial: time.Hour, Max: time.Hour, MaxRetries: 2},
			errs:      []error{deadlock},
			cancel:    true,
			wantErr:   context.Canceled,
			wantCalls: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			calls := 0
			err := retryOnContention(ctx, tc.cfg, func() error {
				calls++
				if tc.cancel {
					cancel()
				}
				if calls <= len(tc.errs) {
					return tc.errs[calls-1]
				}
				return nil
			})
			assert.Equal(t, tc.wantCalls, calls)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}
