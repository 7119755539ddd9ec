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
	"fmt"
	"slices"
)

// InterviewStatus 面试的最终结论，空值表示还在进行中。
// SELECT 和 REJECT 都是终态，进入之后不允许再变更。
type InterviewStatus string

const (
	StatusUnset  InterviewStatus = ""
	StatusSelect InterviewStatus = "SELECT"
	StatusReject InterviewStatus = "REJECT"
)

func (s InterviewStatus) IsValid() bool {
	switch s {
	case StatusUnset, StatusSelect, StatusReject:
		return true
	default:
		return false
	}
}

func (s InterviewStatus) String() string {
	return string(s)
}

func (s InterviewStatus) IsTerminal() bool {
	return s == StatusSelect || s == StatusReject
}

// Employee 员工引用，面试的分配人和每一轮的面试官都是员工
type Employee struct {
	ID       int64
	Username string
}

// Candidate 候选人引用
type Candidate struct {
	ID    int64
	Email string
}

// Interview 是面试的领域模型，也是聚合根。
// 所有轮次的创建和状态变更都必须通过它的操作方法完成。
type Interview struct {
	ID        int64
	JobID     string
	Employee  Employee
	Candidate Candidate
	Status    InterviewStatus
	// OverallRating 只有录用并且存在终面之后才会计算，nil 表示还没有
	OverallRating *float64
	Rounds        Rounds
	Ctime         int64
	Utime         int64
}

// Perform 把操作分发到对应的方法上，不接收备注的操作会忽略 remarks
func (iv *Interview) Perform(action Action, remarks string) ActionResult {
	switch action {
	case ActionStartFirstRound:
		return iv.StartFirstRound()
	case ActionMoveToNextRound:
		return iv.MoveToNextRound(remarks)
	case ActionReject:
		return iv.Reject(remarks)
	case ActionSelect:
		return iv.Select(remarks)
	case ActionRecommend:
		return iv.Recommend(remarks)
	default:
		return failed([]string{fmt.Sprintf("Unexpected Error: unsupported action %s", action)})
	}
}

// StartFirstRound 创建第一轮面试
func (iv *Interview) StartFirstRound() ActionResult {
	var errs []string
	if iv.Status.IsTerminal() {
		errs = append(errs, fmt.Sprintf("Candidate status is already %s, can't create first round", iv.Status))
	}
	if _, ok := iv.Rounds.First(); ok {
		errs = append(errs, "First round already started")
	}
	if len(errs) > 0 {
		return failed(errs)
	}
	rounds := slices.Clone(iv.Rounds)
	if _, err := rounds.Create(iv.ID, 1); err != nil {
		return failed([]string{unexpected(err)})
	}
	iv.Rounds = rounds
	return succeeded()
}

// MoveToNextRound 如果最后一轮还没有结论，就认为它通过了，然后创建下一轮
func (iv *Interview) MoveToNextRound(remarks string) ActionResult {
	var errs []string
	if iv.Status.IsTerminal() {
		errs = append(errs, fmt.Sprintf("Invalid Action: Candidate status is already %s,can't move to next round", iv.Status))
	}
	if _, ok := iv.Rounds.First(); !ok {
		errs = append(errs, "Invalid Action: First Round isn't started.")
	}
	if iv.Rounds.HasFailed() {
		errs = append(errs, "Invalid Action: Candidate has failed one of the round. can't move to next round")
	}
	if len(errs) > 0 {
		return failed(errs)
	}
	// 已经有终面了，就不会再有下一轮
	if iv.Rounds.HasFinal() {
		return failed([]string{"Final Round is already taken for the no next round."})
	}
	latest, ok := iv.Rounds.Latest()
	if !ok {
		return failed([]string{"Unexpected Error: No interview rounds found."})
	}

	rounds := slices.Clone(iv.Rounds)
	if latest.Status.IsPending() {
		rounds.update(latest.RoundNo, func(r *InterviewRound) {
			r.Status = RoundStatusPass
			r.Remarks = remarks
		})
	}
	if _, err := rounds.Create(iv.ID, latest.RoundNo+1); err != nil {
		return failed([]string{unexpected(err)})
	}
	iv.Rounds = rounds
	return succeeded()
}

// Reject 淘汰候选人，所有还没有结论的轮次都会被标记为不通过。
// 已经录用的候选人不能通过这个操作淘汰。
func (iv *Interview) Reject(remarks string) ActionResult {
	var errs []string
	if _, ok := iv.Rounds.First(); !ok {
		errs = append(errs, "Invalid Action: First Round isn't started.")
	}
	if iv.Status == StatusSelect {
		errs = append(errs, "Invalid Action: Cannot mark reject, candidate is already marked SELECT.")
	}
	if len(errs) > 0 {
		return failed(errs)
	}
	iv.Status = StatusReject
	for i := range iv.Rounds {
		if iv.Rounds[i].Status.IsPending() {
			iv.Rounds[i].Status = RoundStatusFail
			iv.Rounds[i].Remarks = remarks
		}
	}
	return succeeded()
}

// Select 录用候选人，要求终面已经存在。重复录用是幂等的，但每次都会刷新终面的备注。
func (iv *Interview) Select(remarks string) ActionResult {
	var errs []string
	if _, ok := iv.Rounds.First(); !ok {
		errs = append(errs, "Invalid Action: First Round isn't started.")
	}
	if iv.Status == StatusReject {
		errs = append(errs, "Invalid Action: Cannot mark select, candidate is already marked REJECT.")
	}
	if iv.Rounds.HasFailed() {
		errs = append(errs, "Invalid Action: Candidate has failed one of the round. can't move to next round")
	}
	final, ok := iv.Rounds.Final()
	if !ok {
		errs = append(errs, "Invalid Action :Last round still pending cannot proceed selection")
	}
	if len(errs) > 0 {
		return failed(errs)
	}
	iv.Rounds.update(final.RoundNo, func(r *InterviewRound) {
		r.Status = RoundStatusPass
		r.Remarks = remarks
	})
	iv.Status = StatusSelect
	return succeeded()
}

// Recommend 推荐最后一轮。如果最后一轮不是终面，会紧接着进入下一轮，
// 进入下一轮时不会带上这次的备注。
func (iv *Interview) Recommend(remarks string) ActionResult {
	var errs []string
	if iv.Status.IsTerminal() {
		errs = append(errs, fmt.Sprintf("Invalid Action: Candidate status is already %s", iv.Status))
	}
	if _, ok := iv.Rounds.First(); !ok {
		errs = append(errs, "Invalid Action: First Round isn't started.")
	}
	if iv.Rounds.HasFailed() {
		errs = append(errs, "Invalid Action: Candidate has failed one of the round. can't recommend")
	}
	if len(errs) > 0 {
		return failed(errs)
	}
	latest, _ := iv.Rounds.Latest()
	iv.Rounds.update(latest.RoundNo, func(r *InterviewRound) {
		r.Status = RoundStatusRecommend
		r.Remarks = remarks
	})
	if !latest.IsFinalRound {
		// 推荐本身已经生效，进入下一轮失败（例如更早的轮次被标记成了终面）不影响推荐的结果
		_ = iv.MoveToNextRound("")
	}
	return succeeded()
}

// RoundUpdate 面试官可以修改的轮次信息，Status 不在其中
type RoundUpdate struct {
	// Interviewer ID 为 0 表示不修改面试官
	Interviewer  Employee
	Rating       int
	Remarks      string
	Skills       []string
	Date         int64
	IsFinalRound bool
}

func (iv *Interview) UpdateRound(roundNo int, upd RoundUpdate) error {
	if upd.Rating < MinRating || upd.Rating > MaxRating {
		return ErrInvalidRating
	}
	ok := iv.Rounds.update(roundNo, func(r *InterviewRound) {
		if upd.Interviewer.ID > 0 {
			r.Interviewer = upd.Interviewer
		}
		r.Rating = upd.Rating
		r.Remarks = upd.Remarks
		r.Skills = upd.Skills
		r.Date = upd.Date
		r.IsFinalRound = upd.IsFinalRound
	})
	if !ok {
		return ErrRoundNotFound
	}
	return nil
}

func unexpected(err error) string {
	return fmt.Sprintf("Unexpected Error: %s", err.Error())
}
