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

import "github.com/ecodeclub/hirebook/internal/candidate/internal/domain"

type CandidateID struct {
	ID int64 `json:"id"`
}

type SaveReq struct {
	Candidate Candidate `json:"candidate"`
}

type Candidate struct {
	ID        int64    `json:"id,omitempty"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Gender    string   `json:"gender"`
	MobileNo  string   `json:"mobileNo"`
	Skills    []string `json:"skills"`
	Utime     int64    `json:"utime,omitempty"`
}

func (c Candidate) toDomain() domain.Candidate {
	return domain.Candidate{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Gender:    domain.Gender(c.Gender),
		MobileNo:  c.MobileNo,
		Skills:    c.Skills,
	}
}

func newCandidate(c domain.Candidate) Candidate {
	return Candidate{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Gender:    string(c.Gender),
		MobileNo:  c.MobileNo,
		Skills:    c.Skills,
		Utime:     c.Utime,
	}
}
