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
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/hirebook/internal/pkg/database"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrEmployeeDuplicate 用户名或者邮箱冲突
var ErrEmployeeDuplicate = errors.New("员工已经存在")

//go:generate mockgen -source=./employee.go -package=daomocks -destination=mocks/employee.mock.go EmployeeDAO
type EmployeeDAO interface {
	// Save 同时保存用户和员工档案，Id 为 0 的时候创建
	Save(ctx context.Context, u User, role string) (int64, error)
	FindById(ctx context.Context, id int64) (Employee, error)
	FindByUsername(ctx context.Context, username string) (Employee, error)
	FindByEmail(ctx context.Context, email string) (Employee, error)
}

type GORMEmployeeDAO struct {
	db *egorm.Component
}

func NewGORMEmployeeDAO(db *egorm.Component) EmployeeDAO {
	return &GORMEmployeeDAO{db: db}
}

func (dao *GORMEmployeeDAO) Save(ctx context.Context, u User, role string) (int64, error) {
	now := time.Now().UnixMilli()
	u.Utime = now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if u.Id == 0 {
			u.Ctime = now
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
		} else {
			res := tx.Model(&User{}).Where("id = ?", u.Id).Updates(map[string]any{
				"username":   u.Username,
				"email":      u.Email,
				"first_name": u.FirstName,
				"last_name":  u.LastName,
				"is_admin":   u.IsAdmin,
				"utime":      u.Utime,
			})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrDataNotFound
			}
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "utime"}),
		}).Create(&EmployeeProfile{
			Uid:   u.Id,
			Role:  role,
			Ctime: now,
			Utime: now,
		}).Error
	})
	if database.IsUniqueConflict(err) {
		return 0, ErrEmployeeDuplicate
	}
	return u.Id, err
}

func (dao *GORMEmployeeDAO) FindById(ctx context.Context, id int64) (Employee, error) {
	return dao.findBy(ctx, "users.id = ?", id)
}

func (dao *GORMEmployeeDAO) FindByUsername(ctx context.Context, username string) (Employee, error) {
	return dao.findBy(ctx, "users.username = ?", username)
}

func (dao *GORMEmployeeDAO) FindByEmail(ctx context.Context, email string) (Employee, error) {
	return dao.findBy(ctx, "users.email = ?", email)
}

// findBy 用户和员工档案一次性查出来，没有档案的用户 Role 为 NULL
func (dao *GORMEmployeeDAO) findBy(ctx context.Context, query string, arg any) (Employee, error) {
	var e Employee
	err := dao.db.WithContext(ctx).Model(&User{}).
		Select("users.*, employee_profiles.role AS role").
		Joins("LEFT JOIN employee_profiles ON employee_profiles.uid = users.id").
		Where(query, arg).
		Take(&e).Error
	return e, err
}

type User struct {
	Id        int64          `gorm:"primaryKey,autoIncrement"`
	Username  string         `gorm:"type:varchar(150);unique"`
	Email     sql.NullString `gorm:"type:varchar(254);unique"`
	FirstName string         `gorm:"type:varchar(150)"`
	LastName  string         `gorm:"type:varchar(150)"`
	IsAdmin   bool           `gorm:"not null;default:false"`
	Ctime     int64
	Utime     int64
}

func (User) TableName() string {
	return "users"
}

// EmployeeProfile 员工档案，一个用户最多一份
type EmployeeProfile struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Uid   int64  `gorm:"unique"`
	Role  string `gorm:"type:varchar(16);not null"`
	Ctime int64
	Utime int64
}

func (EmployeeProfile) TableName() string {
	return "employee_profiles"
}

// Employee 联表查询的结果
type Employee struct {
	User `gorm:"embedded"`
	Role sql.NullString
}
