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

package web

import (
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/interview/internal/domain"
)

// dateLayout 对外的日期格式都是 DD-MM-YYYY
const dateLayout = "02-01-2006"

type AssignReq struct {
	// Employee 员工的 ID 或者用户名
	Employee string `json:"employee"`
	// Candidate 候选人的 ID 或者邮箱
	Candidate string `json:"candidate"`
}

type JobID struct {
	JobID string `json:"jobId"`
}

type ActionReq struct {
	JobID   string `json:"jobId"`
	Action  string `json:"action"`
	Remarks string `json:"remarks"`
}

type ActionResp struct {
	Status bool     `json:"status"`
	Errors []string `json:"errors,omitempty"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	// Status 不传表示全部，空字符串表示还在进行中
	Status *string `json:"status"`
}

type InterviewList struct {
	Total      int64       `json:"total"`
	Interviews []Interview `json:"interviews"`
}

type RoundReq struct {
	JobID   string `json:"jobId"`
	RoundNo int    `json:"roundNo"`
}

type UpdateRoundReq struct {
	JobID   string    `json:"jobId"`
	RoundNo int       `json:"roundNo"`
	Round   RoundForm `json:"round"`
}

// RoundForm 面试官可以修改的字段，状态只能通过面试操作修改
type RoundForm struct {
	// Interviewer 面试官的用户名，不传表示保持不变
	Interviewer  string   `json:"interviewer"`
	Rating       int      `json:"rating"`
	Remarks      string   `json:"remarks"`
	Skills       []string `json:"skills"`
	Date         string   `json:"date"`
	IsFinalRound bool     `json:"isFinalRound"`
}

func (f RoundForm) toDomain() (domain.RoundUpdate, error) {
	upd := domain.RoundUpdate{
		Interviewer:  domain.Employee{Username: f.Interviewer},
		Rating:       f.Rating,
		Remarks:      f.Remarks,
		Skills:       f.Skills,
		IsFinalRound: f.IsFinalRound,
	}
	if date := strings.TrimSpace(f.Date); date != "" {
		t, err := time.ParseInLocation(dateLayout, date, time.Local)
		if err != nil {
			return domain.RoundUpdate{}, fmt.Errorf("date must be in DD-MM-YYYY format: %w", err)
		}
		upd.Date = t.UnixMilli()
	}
	return upd, nil
}

type Interview struct {
	JobID         string   `json:"jobId"`
	Employee      string   `json:"employee"`
	Candidate     string   `json:"candidate"`
	Status        string   `json:"status"`
	OverallRating *float64 `json:"overallRating"`
	Rounds        []Round  `json:"rounds"`
	Ctime         int64    `json:"ctime"`
	Utime         int64    `json:"utime"`
}

type Round struct {
	RoundNo      int      `json:"roundNo"`
	Interviewer  string   `json:"interviewer"`
	Status       string   `json:"status"`
	Rating       int      `json:"rating"`
	Remarks      string   `json:"remarks"`
	IsFinalRound bool     `json:"isFinalRound"`
	Skills       []string `json:"skills"`
	Date         string   `json:"date"`
	Utime        int64    `json:"utime"`
}

func newInterview(iv domain.Interview) Interview {
	return Interview{
		JobID:         iv.JobID,
		Employee:      iv.Employee.Username,
		Candidate:     iv.Candidate.Email,
		Status:        iv.Status.String(),
		OverallRating: iv.OverallRating,
		Rounds: slice.Map(iv.Rounds, func(_ int, r domain.InterviewRound) Round {
			return newRound(r)
		}),
		Ctime: iv.Ctime,
		Utime: iv.Utime,
	}
}

func newRound(r domain.InterviewRound) Round {
	res := Round{
		RoundNo:      r.RoundNo,
		Interviewer:  r.Interviewer.Username,
		Status:       r.Status.String(),
		Rating:       r.Rating,
		Remarks:      r.Remarks,
		IsFinalRound: r.IsFinalRound,
		Skills:       r.Skills,
		Utime:        r.Utime,
	}
	if r.Date > 0 {
		res.Date = r.DateTime().Format(dateLayout)
	}
	return res
}
