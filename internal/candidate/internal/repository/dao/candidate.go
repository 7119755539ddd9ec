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
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hirebook/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound   = gorm.ErrRecordNotFound
	ErrDuplicateEmail = errors.New("候选人邮箱已经存在")
)

type Candidate struct {
	Id        int64                     `gorm:"primaryKey,autoIncrement"`
	Email     string                    `gorm:"type:varchar(254);unique"`
	FirstName string                    `gorm:"type:varchar(50)"`
	LastName  string                    `gorm:"type:varchar(50)"`
	Gender    string                    `gorm:"type:varchar(10)"`
	MobileNo  string                    `gorm:"type:varchar(17)"`
	Skills    sqlx.JsonColumn[[]string] `gorm:"type:varchar(1024)"`
	Ctime     int64
	Utime     int64
}

func (Candidate) TableName() string {
	return "candidates"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Candidate{})
}

//go:generate mockgen -source=./candidate.go -package=daomocks -destination=mocks/candidate.mock.go CandidateDAO
type CandidateDAO interface {
	Save(ctx context.Context, c Candidate) (int64, error)
	FindById(ctx context.Context, id int64) (Candidate, error)
	FindByEmail(ctx context.Context, email string) (Candidate, error)
}

type GORMCandidateDAO struct {
	db *egorm.Component
}

func NewGORMCandidateDAO(db *egorm.Component) CandidateDAO {
	return &GORMCandidateDAO{db: db}
}

func (dao *GORMCandidateDAO) Save(ctx context.Context, c Candidate) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime = now
	var err error
	if c.Id == 0 {
		c.Ctime = now
		err = dao.db.WithContext(ctx).Create(&c).Error
	} else {
		res := dao.db.WithContext(ctx).Model(&Candidate{}).Where("id = ?", c.Id).Updates(map[string]any{
			"email":      c.Email,
			"first_name": c.FirstName,
			"last_name":  c.LastName,
			"gender":     c.Gender,
			"mobile_no":  c.MobileNo,
			"skills":     c.Skills,
			"utime":      c.Utime,
		})
		err = res.Error
		if err == nil && res.RowsAffected == 0 {
			err = ErrDataNotFound
		}
	}
	if database.IsUniqueConflict(err) {
		return 0, ErrDuplicateEmail
	}
	return c.Id, err
}

func (dao *GORMCandidateDAO) FindById(ctx context.Context, id int64) (Candidate, error) {
	var c Candidate
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (dao *GORMCandidateDAO) FindByEmail(ctx context.Context, email string) (Candidate, error) {
	var c Candidate
	err := dao.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	return c, err
}
