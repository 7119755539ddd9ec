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
	"errors"
	"time"
)

var (
	ErrDuplicateRound  = errors.New("面试轮次已经存在")
	ErrRoundOutOfOrder = errors.New("面试轮次必须按顺序创建")
	ErrRoundNotFound   = errors.New("面试轮次不存在")
	ErrInvalidRating   = errors.New("评分必须在 0 到 10 之间")
)

const (
	MinRating = 0
	MaxRating = 10
)

// RoundStatus 面试轮次的结果，空值表示还在等待面试官给出结论
type RoundStatus string

const (
	RoundStatusPending   RoundStatus = ""
	RoundStatusPass      RoundStatus = "PASS"
	RoundStatusFail      RoundStatus = "FAIL"
	RoundStatusRecommend RoundStatus = "RECOMMEND"
)

func (s RoundStatus) IsValid() bool {
	switch s {
	case RoundStatusPending, RoundStatusPass, RoundStatusFail, RoundStatusRecommend:
		return true
	default:
		return false
	}
}

func (s RoundStatus) String() string {
	return string(s)
}

func (s RoundStatus) IsPending() bool {
	return s == RoundStatusPending
}

// InterviewRound 是面试轮次的领域模型。
// 它的业务一致性由其所属的 Interview 聚合根来维护，
// Status 只能由状态机修改，外部只能修改面试官、评分、备注等信息。
type InterviewRound struct {
	ID           int64
	Iid          int64
	RoundNo      int
	Interviewer  Employee
	Status       RoundStatus
	Rating       int
	Remarks      string
	IsFinalRound bool
	Skills       []string
	// Date 面试日期，毫秒时间戳，0 表示未安排
	Date  int64
	Ctime int64
	Utime int64
}

func (r InterviewRound) HasInterviewer() bool {
	return r.Interviewer.ID > 0
}

func (r InterviewRound) DateTime() time.Time {
	return time.UnixMilli(r.Date)
}

// Rounds 是面试轮次的台账，始终按 RoundNo 升序排列，轮次只追加不删除。
type Rounds []InterviewRound

// First 第一轮面试
func (rs Rounds) First() (InterviewRound, bool) {
	return rs.Get(1)
}

func (rs Rounds) Get(roundNo int) (InterviewRound, bool) {
	idx := rs.index(roundNo)
	if idx < 0 {
		return InterviewRound{}, false
	}
	return rs[idx], true
}

// Latest 轮次号最大的一轮
func (rs Rounds) Latest() (InterviewRound, bool) {
	if len(rs) == 0 {
		return InterviewRound{}, false
	}
	return rs[len(rs)-1], true
}

func (rs Rounds) HasFailed() bool {
	for _, r := range rs {
		if r.Status == RoundStatusFail {
			return true
		}
	}
	return false
}

func (rs Rounds) HasFinal() bool {
	_, ok := rs.Final()
	return ok
}

// Final 被标记为终面的轮次，如果有多个，取轮次号最小的那个
func (rs Rounds) Final() (InterviewRound, bool) {
	for _, r := range rs {
		if r.IsFinalRound {
			return r, true
		}
	}
	return InterviewRound{}, false
}

// Create 追加一个新的轮次，轮次号必须紧跟在最后一轮之后
func (rs *Rounds) Create(iid int64, roundNo int) (InterviewRound, error) {
	if rs.index(roundNo) >= 0 {
		return InterviewRound{}, ErrDuplicateRound
	}
	next := 1
	if latest, ok := rs.Latest(); ok {
		next = latest.RoundNo + 1
	}
	if roundNo != next {
		return InterviewRound{}, ErrRoundOutOfOrder
	}
	r := InterviewRound{
		Iid:     iid,
		RoundNo: roundNo,
		Status:  RoundStatusPending,
	}
	*rs = append(*rs, r)
	return r, nil
}

// TotalRating 所有轮次评分之和
func (rs Rounds) TotalRating() int {
	total := 0
	for _, r := range rs {
		total += r.Rating
	}
	return total
}

func (rs Rounds) index(roundNo int) int {
	for i := range rs {
		if rs[i].RoundNo == roundNo {
			return i
		}
	}
	return -1
}

// update 原地修改指定轮次
func (rs Rounds) update(roundNo int, fn func(r *InterviewRound)) bool {
	idx := rs.index(roundNo)
	if idx < 0 {
		return false
	}
	fn(&rs[idx])
	return true
}
