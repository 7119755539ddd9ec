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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func round(no int, status RoundStatus, final bool) InterviewRound {
	return InterviewRound{Iid: 1, RoundNo: no, Status: status, IsFinalRound: final}
}

func TestInterview_StartFirstRound(t *testing.T) {
	testCases := []struct {
		name       string
		iv         Interview
		wantOK     bool
		wantErrs   []string
		wantRounds Rounds
	}{
		{
			name:   "新建的面试",
			iv:     Interview{ID: 1},
			wantOK: true,
			wantRounds: Rounds{
				{Iid: 1, RoundNo: 1, Status: RoundStatusPending},
			},
		},
		{
			name:       "第一轮已经开始",
			iv:         Interview{ID: 1, Rounds: Rounds{round(1, RoundStatusPending, false)}},
			wantErrs:   []string{"First round already started"},
			wantRounds: Rounds{round(1, RoundStatusPending, false)},
		},
		{
			name: "已经淘汰并且第一轮已经开始",
			iv: Interview{ID: 1, Status: StatusReject,
				Rounds: Rounds{round(1, RoundStatusFail, false)}},
			wantErrs: []string{
				"Candidate status is already REJECT, can't create first round",
				"First round already started",
			},
			wantRounds: Rounds{round(1, RoundStatusFail, false)},
		},
		{
			name:     "已经录用",
			iv:       Interview{ID: 1, Status: StatusSelect},
			wantErrs: []string{"Candidate status is already SELECT, can't create first round"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.iv.StartFirstRound()
			assert.Equal(t, tc.wantOK, res.OK)
			if tc.wantOK {
				assert.Empty(t, res.Errors)
			} else {
				assert.Equal(t, tc.wantErrs, res.Errors)
			}
			assert.Equal(t, tc.wantRounds, tc.iv.Rounds)
		})
	}
}

func TestInterview_MoveToNextRound(t *testing.T) {
	testCases := []struct {
		name       string
		iv         Interview
		remarks    string
		wantOK     bool
		wantErrs   []string
		wantRounds Rounds
	}{
		{
			name:     "第一轮还没有开始",
			iv:       Interview{ID: 1},
			wantErrs: []string{"Invalid Action: First Round isn't started."},
		},
		{
			name:    "最后一轮没有结论时视为通过",
			iv:      Interview{ID: 1, Rounds: Rounds{round(1, RoundStatusPending, false)}},
			remarks: "good",
			wantOK:  true,
			wantRounds: Rounds{
				{Iid: 1, RoundNo: 1, Status: RoundStatusPass, Remarks: "good"},
				{Iid: 1, RoundNo: 2, Status: RoundStatusPending},
			},
		},
		{
			name:   "最后一轮已经推荐",
			iv:     Interview{ID: 1, Rounds: Rounds{round(1, RoundStatusRecommend, false)}},
			wantOK: true,
			wantRounds: Rounds{
				round(1, RoundStatusRecommend, false),
				{Iid: 1, RoundNo: 2, Status: RoundStatusPending},
			},
		},
		{
			name: "有轮次不通过",
			iv: Interview{ID: 1, Rounds: Rounds{
				round(1, RoundStatusFail, false),
			}},
			wantErrs:   []string{"Invalid Action: Candidate has failed one of the round. can't move to next round"},
			wantRounds: Rounds{round(1, RoundStatusFail, false)},
		},
		{
			name: "已经有终面",
			iv: Interview{ID: 1, Rounds: Rounds{
				round(1, RoundStatusPass, false),
				round(2, RoundStatusPending, true),
			}},
			wantErrs: []string{"Final Round is already taken for the no next round."},
			wantRounds: Rounds{
				round(1, RoundStatusPass, false),
				round(2, RoundStatusPending, true),
			},
		},
		{
			name: "已经淘汰",
			iv: Interview{ID: 1, Status: StatusReject, Rounds: Rounds{
				round(1, RoundStatusFail, false),
			}},
			wantErrs: []string{
				"Invalid Action: Candidate status is already REJECT,can't move to next round",
				"Invalid Action: Candidate has failed one of the round. can't move to next round",
			},
			wantRounds: Rounds{round(1, RoundStatusFail, false)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.iv.MoveToNextRound(tc.remarks)
			assert.Equal(t, tc.wantOK, res.OK)
			if !tc.wantOK {
				assert.Equal(t, tc.wantErrs, res.Errors)
			}
			assert.Equal(t, tc.wantRounds, tc.iv.Rounds)
		})
	}
}

func TestInterview_FailedRoundBlocksProgress(t *testing.T) {
	newIv := func() Interview {
		return Interview{ID: 1, Rounds: Rounds{
			round(1, RoundStatusPass, false),
			round(2, RoundStatusFail, true),
		}}
	}
	testCases := []struct {
		action  Action
		wantErr string
	}{
		{action: ActionMoveToNextRound, wantErr: "Invalid Action: Candidate has failed one of the round. can't move to next round"},
		{action: ActionSelect, wantErr: "Invalid Action: Candidate has failed one of the round. can't move to next round"},
		{action: ActionRecommend, wantErr: "Invalid Action: Candidate has failed one of the round. can't recommend"},
	}
	for _, tc := range testCases {
		t.Run(tc.action.String(), func(t *testing.T) {
			iv := newIv()
			res := iv.Perform(tc.action, "")
			require.False(t, res.OK)
			assert.Contains(t, res.Errors, tc.wantErr)
			assert.Equal(t, StatusUnset, iv.Status)
			assert.Equal(t, newIv().Rounds, iv.Rounds)
		})
	}

	iv := newIv()
	res := iv.Reject("bad")
	assert.True(t, res.OK)
	assert.Equal(t, StatusReject, iv.Status)
}

func TestInterview_Select(t *testing.T) {
	testCases := []struct {
		name       string
		iv         Interview
		remarks    string
		wantOK     bool
		wantErrs   []string
		wantStatus InterviewStatus
		wantRounds Rounds
	}{
		{
			name:     "第一轮还没有开始",
			iv:       Interview{ID: 1},
			wantErrs: []string{"Invalid Action: First Round isn't started.", "Invalid Action :Last round still pending cannot proceed selection"},
		},
		{
			name:       "没有终面",
			iv:         Interview{ID: 1, Rounds: Rounds{round(1, RoundStatusPass, false)}},
			wantErrs:   []string{"Invalid Action :Last round still pending cannot proceed selection"},
			wantRounds: Rounds{round(1, RoundStatusPass, false)},
		},
		{
			name: "已经淘汰",
			iv: Interview{ID: 1, Status: StatusReject, Rounds: Rounds{
				round(1, RoundStatusPending, true),
			}},
			wantErrs:   []string{"Invalid Action: Cannot mark select, candidate is already marked REJECT."},
			wantStatus: StatusReject,
			wantRounds: Rounds{round(1, RoundStatusPending, true)},
		},
		{
			name: "录用",
			iv: Interview{ID: 1, Rounds: Rounds{
				round(1, RoundStatusPass, false),
				round(2, RoundStatusPending, true),
			}},
			remarks:    "welcome",
			wantOK:     true,
			wantStatus: StatusSelect,
			wantRounds: Rounds{
				round(1, RoundStatusPass, false),
				{Iid: 1, RoundNo: 2, Status: RoundStatusPass, IsFinalRound: true, Remarks: "welcome"},
			},
		},
		{
			name: "重复录用只更新备注",
			iv: Interview{ID: 1, Status: StatusSelect, Rounds: Rounds{
				{Iid: 1, RoundNo: 1, Status: RoundStatusPass, IsFinalRound: true, Remarks: "welcome"},
			}},
			remarks:    "welcome again",
			wantOK:     true,
			wantStatus: StatusSelect,
			wantRounds: Rounds{
				{Iid: 1, RoundNo: 1, Status: RoundStatusPass, IsFinalRound: true, Remarks: "welcome again"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.iv.Select(tc.remarks)
			assert.Equal(t, tc.wantOK, res.OK)
			if !tc.wantOK {
				assert.Equal(t, tc.wantErrs, res.Errors)
			}
			assert.Equal(t, tc.wantStatus, tc.iv.Status)
			assert.Equal(t, tc.wantRounds, tc.iv.Rounds)
		})
	}
}

func TestInterview_Reject(t *testing.T) {
	testCases := []struct {
		name       string
		iv         Interview
		wantOK     bool
		wantErrs   []string
		wantStatus InterviewStatus
		wantRounds Rounds
	}{
		{
			name:     "第一轮还没有开始",
			iv:       Interview{ID: 1},
			wantErrs: []string{"Invalid Action: First Round isn't started."},
		},
		{
			name: "已经录用",
			iv: Interview{ID: 1, Status: StatusSelect, Rounds: Rounds{
				round(1, RoundStatusPass, true),
			}},
			wantErrs:   []string{"Invalid Action: Cannot mark reject, candidate is already marked SELECT."},
			wantStatus: StatusSelect,
			wantRounds: Rounds{round(1, RoundStatusPass, true)},
		},
		{
			name: "没有结论的轮次都不通过",
			iv: Interview{ID: 1, Rounds: Rounds{
				round(1, RoundStatusPass, false),
				round(2, RoundStatusRecommend, false),
				round(3, RoundStatusPending, false),
			}},
			wantOK:     true,
			wantStatus: StatusReject,
			wantRounds: Rounds{
				round(1, RoundStatusPass, false),
				round(2, RoundStatusRecommend, false),
				{Iid: 1, RoundNo: 3, Status: RoundStatusFail, Remarks: "no"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.iv.Reject("no")
			assert.Equal(t, tc.wantOK, res.OK)
			if !tc.wantOK {
				assert.Equal(t, tc.wantErrs, res.Errors)
			}
			assert.Equal(t, tc.wantStatus, tc.iv.Status)
			assert.Equal(t, tc.wantRounds, tc.iv.Rounds)
		})
	}
}

func TestInterview_Recommend(t *testing.T) {
	testCases := []struct {
		name       string
		iv         Interview
		wantOK     bool
		wantErrs   []string
		wantRounds Rounds
	}{
		{
			name:     "第一轮还没有开始",
			iv:       Interview{ID: 1},
			wantErrs: []string{"Invalid Action: First Round isn't started."},
		},
		{
			name:   "推荐非终面会进入下一轮",
			iv:     Interview{ID: 1, Rounds: Rounds{round(1, RoundStatusPending, false)}},
			wantOK: true,
			wantRounds: Rounds{
				{Iid: 1, RoundNo: 1, Status: RoundStatusRecommend, Remarks: "strong"},
				{Iid: 1, RoundNo: 2, Status: RoundStatusPending},
			},
		},
		{
			name: "推荐终面不会进入下一轮",
			iv: Interview{ID: 1, Rounds: Rounds{
				round(1, RoundStatusPass, false),
				round(2, RoundStatusPending, true),
			}},
			wantOK: true,
			wantRounds: Rounds{
				round(1, RoundStatusPass, false),
				{Iid: 1, RoundNo: 2, Status: RoundStatusRecommend, IsFinalRound: true, Remarks: "strong"},
			},
		},
		{
			name: "更早的轮次是终面时推荐依然生效",
			iv: Interview{ID: 1, Rounds: Rounds{
				round(1, RoundStatusPass, true),
				round(2, RoundStatusPending, false),
			}},
			wantOK: true,
			wantRounds: Rounds{
				round(1, RoundStatusPass, true),
				{Iid: 1, RoundNo: 2, Status: RoundStatusRecommend, Remarks: "strong"},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := tc.iv.Recommend("strong")
			assert.Equal(t, tc.wantOK, res.OK)
			if !tc.wantOK {
				assert.Equal(t, tc.wantErrs, res.Errors)
			}
			assert.Equal(t, tc.wantRounds, tc.iv.Rounds)
		})
	}
}

func TestInterview_Perform(t *testing.T) {
	iv := Interview{ID: 7}
	res := iv.Perform(ActionStartFirstRound, "ignored")
	require.True(t, res.OK)
	assert.Equal(t, "", iv.Rounds[0].Remarks)

	res = iv.Perform(ActionUnknown, "")
	assert.False(t, res.OK)
	assert.Len(t, res.Errors, 1)
}

func TestInterview_UpdateRound(t *testing.T) {
	testCases := []struct {
		name    string
		roundNo int
		upd     RoundUpdate
		wantErr error
		want    InterviewRound
	}{
		{
			name:    "评分过高",
			roundNo: 1,
			upd:     RoundUpdate{Rating: 11},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "轮次不存在",
			roundNo: 3,
			upd:     RoundUpdate{Rating: 5},
			wantErr: ErrRoundNotFound,
		},
		{
			name:    "不修改面试官",
			roundNo: 1,
			upd:     RoundUpdate{Rating: 8, Remarks: "ok", Skills: []string{"go"}, Date: 1709596800000, IsFinalRound: true},
			want: InterviewRound{Iid: 1, RoundNo: 1, Interviewer: Employee{ID: 3, Username: "bob"},
				Rating: 8, Remarks: "ok", Skills: []string{"go"}, Date: 1709596800000, IsFinalRound: true},
		},
		{
			name:    "修改面试官",
			roundNo: 1,
			upd:     RoundUpdate{Interviewer: Employee{ID: 4, Username: "alice"}, Rating: 0},
			want:    InterviewRound{Iid: 1, RoundNo: 1, Interviewer: Employee{ID: 4, Username: "alice"}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			iv := Interview{ID: 1, Rounds: Rounds{
				{Iid: 1, RoundNo: 1, Interviewer: Employee{ID: 3, Username: "bob"}, Rating: 2},
			}}
			err := iv.UpdateRound(tc.roundNo, tc.upd)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			r, ok := iv.Rounds.Get(tc.roundNo)
			require.True(t, ok)
			assert.Equal(t, tc.want, r)
		})
	}
}
