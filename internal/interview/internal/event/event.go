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

package event

import "github.com/ecodeclub/hirebook/internal/interview/internal/domain"

// InterviewEvent 面试状态或者轮次发生变化之后发出
type InterviewEvent struct {
	JobID  string `json:"job_id"`
	Action string `json:"action"`
	Status string `json:"status"`
	// RoundNo 最新的轮次编号，没有轮次的时候是 0
	RoundNo int   `json:"round_no"`
	Uid     int64 `json:"uid"`
	Utime   int64 `json:"utime"`
}

func NewInterviewEvent(iv domain.Interview, action string, uid int64) InterviewEvent {
	evt := InterviewEvent{
		JobID:  iv.JobID,
		Action: action,
		Status: iv.Status.String(),
		Uid:    uid,
		Utime:  iv.Utime,
	}
	if latest, ok := iv.Rounds.Latest(); ok {
		evt.RoundNo = latest.RoundNo
	}
	return evt
}
