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

package domain

import (
	"testing"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/jobid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterview_Commit(t *testing.T) {
	gen := jobid.NewGeneratorWith(func() time.Time {
		return time.Date(2024, time.March, 5, 10, 0, 0, 0, time.Local)
	})
	rating := func(v float64) *float64 { return &v }

	testCases := []struct {
		name       string
		iv         Interview
		wantJobID  string
		wantRating *float64
	}{
		{
			name:      "生成面试编号",
			iv:        Interview{ID: 42},
			wantJobID: "INT05-03-2024-42",
		},
		{
			name:      "面试编号只生成一次",
			iv:        Interview{ID: 42, JobID: "INT01-01-2024-42"},
			wantJobID: "INT01-01-2024-42",
		},
		{
			name: "还没有落库",
			iv:   Interview{},
		},
		{
			name: "录用之后先求和取整再除以轮数",
			iv: Interview{ID: 42, Status: StatusSelect, Rounds: Rounds{
				{RoundNo: 1, Rating: 6, Status: RoundStatusPass},
				{RoundNo: 2, Rating: 8, Status: RoundStatusPass},
				{RoundNo: 3, Rating: 9, Status: RoundStatusPass, IsFinalRound: true},
			}},
			wantJobID:  "INT05-03-2024-42",
			wantRating: rating(23.0 / 3.0),
		},
		{
			name: "没有终面不计算",
			iv: Interview{ID: 42, Status: StatusSelect, Rounds: Rounds{
				{RoundNo: 1, Rating: 6, Status: RoundStatusPass},
			}},
			wantJobID: "INT05-03-2024-42",
		},
		{
			name: "没有录用不计算",
			iv: Interview{ID: 42, Status: StatusReject, Rounds: Rounds{
				{RoundNo: 1, Rating: 6, Status: RoundStatusFail, IsFinalRound: true},
			}},
			wantJobID: "INT05-03-2024-42",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.iv.Commit(gen)
			assert.Equal(t, tc.wantJobID, tc.iv.JobID)
			if tc.wantRating == nil {
				assert.Nil(t, tc.iv.OverallRating)
				return
			}
			require.NotNil(t, tc.iv.OverallRating)
			assert.InDelta(t, *tc.wantRating, *tc.iv.OverallRating, 1e-9)
		})
	}
}
