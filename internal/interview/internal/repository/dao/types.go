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

package dao

import (
	"database/sql"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Interview{}, &InterviewRound{})
}

// Interview 面试，job_id 在插入之后才能生成，所以允许为 NULL
type Interview struct {
	Id            int64           `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	JobId         sql.NullString  `gorm:"type:VARCHAR(200);unique;comment:'面试编号，INT{DD-MM-YYYY}-{id}'"`
	EmployeeId    int64           `gorm:"type:BIGINT;NOT NULL;index:idx_employee_id;comment:'负责的HR'"`
	CandidateId   int64           `gorm:"type:BIGINT;NOT NULL;index:idx_candidate_id;comment:'候选人ID'"`
	Status        string          `gorm:"type:VARCHAR(10);NOT NULL;default:'';index:idx_status;comment:'空、SELECT、REJECT'"`
	OverallRating sql.NullFloat64 `gorm:"type:DOUBLE;comment:'综合评分，录用之后计算'"`
	Ctime         int64
	Utime         int64 `gorm:"index"`
}

func (Interview) TableName() string {
	return "interviews"
}

// InterviewRound 面试轮次，(iid, round_no) 唯一
type InterviewRound struct {
	Id            int64                     `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	Iid           int64                     `gorm:"type:BIGINT;NOT NULL;uniqueIndex:unq_iid_round_no,priority:1;comment:'所属面试ID'"`
	RoundNo       int                       `gorm:"type:INT;NOT NULL;uniqueIndex:unq_iid_round_no,priority:2;comment:'轮次编号，从 1 开始'"`
	InterviewerId sql.NullInt64             `gorm:"type:BIGINT;index:idx_interviewer_id;comment:'面试官'"`
	Status        string                    `gorm:"type:VARCHAR(10);NOT NULL;default:'';comment:'空、PASS、FAIL、RECOMMEND'"`
	Rating        int                       `gorm:"type:SMALLINT;NOT NULL;default:0;comment:'评分 0-10'"`
	Remarks       sql.NullString            `gorm:"type:TEXT;comment:'备注'"`
	IsFinalRound  bool                      `gorm:"type:BOOLEAN;NOT NULL;default:false;comment:'是否终面'"`
	Skills        sqlx.JsonColumn[[]string] `gorm:"type:VARCHAR(1024);comment:'考察的技能名称'"`
	Date          sql.NullInt64             `gorm:"type:BIGINT;comment:'面试日期'"`
	Ctime         int64
	Utime         int64
}

func (InterviewRound) TableName() string {
	return "interview_rounds"
}
