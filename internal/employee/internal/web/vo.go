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
	"github.com/ecodeclub/hirebook/internal/employee/internal/domain"
)

type EmployeeID struct {
	ID int64 `json:"id"`
}

type SaveReq struct {
	Employee Employee `json:"employee"`
}

type Employee struct {
	ID        int64  `json:"id,omitempty"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsAdmin   bool   `json:"isAdmin"`
	Role      string `json:"role"`
	Utime     int64  `json:"utime,omitempty"`
}

func newEmployee(e domain.Employee) Employee {
	return Employee{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		IsAdmin:   e.IsAdmin,
		Role:      e.Role.String(),
		Utime:     e.Utime,
	}
}

func (e Employee) toDomain() domain.Employee {
	return domain.Employee{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		IsAdmin:   e.IsAdmin,
		Role:      domain.Role(e.Role),
	}
}
