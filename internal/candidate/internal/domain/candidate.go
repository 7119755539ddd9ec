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
	"net/mail"
	"regexp"
	"strings"
)

var (
	// namePattern 只允许字母，点只能出现在字母之间
	namePattern   = regexp.MustCompile(`^[A-Za-z]+(\.?[A-Za-z]+)*$`)
	mobilePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

type Candidate struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Gender    Gender
	MobileNo  string
	// Skills 技能名称
	Skills []string
	Ctime  int64
	Utime  int64
}

// Validate 返回所有不合法的字段，技能是否存在由技能模块校验
func (c Candidate) Validate() []string {
	var errs []string
	if _, err := mail.ParseAddress(c.Email); err != nil || strings.ContainsAny(c.Email, "<> ") {
		errs = append(errs, fmt.Sprintf("Enter a valid email address: %q", c.Email))
	}
	if !namePattern.MatchString(c.FirstName) {
		errs = append(errs, "first_name must contain only alphabets")
	}
	if !namePattern.MatchString(c.LastName) {
		errs = append(errs, "last_name must contain only alphabets")
	}
	if !c.Gender.IsValid() {
		errs = append(errs, fmt.Sprintf("%q is not a valid choice for gender", c.Gender))
	}
	if !mobilePattern.MatchString(c.MobileNo) {
		errs = append(errs, "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed.")
	}
	return errs
}

// ValidationError 请求参数不合法，Errors 是给调用方看的说明
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errors, "; ")
}
