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

// Role 员工角色，没有角色的用户不算员工
type Role string

const (
	RoleUnknown Role = ""
	RoleHR      Role = "HR"
	RoleDEV     Role = "DEV"
)

func (r Role) IsValid() bool {
	return r == RoleHR || r == RoleDEV
}

func (r Role) String() string {
	return string(r)
}

type Employee struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	// IsAdmin 超级管理员，可以不是员工
	IsAdmin bool
	Role    Role
	Ctime   int64
	Utime   int64
}

func (e Employee) IsHR() bool {
	return e.Role == RoleHR
}
