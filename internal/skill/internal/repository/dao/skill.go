package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type Skill struct {
	Id   int64
	Name string `gorm:"type:varchar(80);unique"`
	// 技能本身的描述
	Desc  string
	Ctime int64
	Utime int64 `gorm:"index"`
}

func (Skill) TableName() string {
	return "skills"
}

//go:generate mockgen -source=./skill.go -package=daomocks -destination=mocks/skill.mock.go SkillDAO
type SkillDAO interface {
	// Save 名称冲突的时候更新描述
	Save(ctx context.Context, skill Skill) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Skill, error)
	Count(ctx context.Context) (int64, error)
	FindByNames(ctx context.Context, names []string) ([]Skill, error)
}

type skillDAO struct {
	db *egorm.Component
}

func NewSkillDAO(db *egorm.Component) SkillDAO {
	return &skillDAO{
		db: db,
	}
}

func (s *skillDAO) Save(ctx context.Context, skill Skill) (int64, error) {
	now := time.Now().UnixMilli()
	skill.Utime = now
	skill.Ctime = now
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoUpdates: clause.AssignmentColumns([]string{"desc", "utime"}),
		Columns:   []clause.Column{{Name: "name"}},
	}).Create(&skill).Error
	if err != nil {
		return 0, err
	}
	if skill.Id == 0 {
		// MySQL 在冲突更新的时候不一定能拿到自增主键
		err = s.db.WithContext(ctx).Model(&Skill{}).Select("id").
			Where("name = ?", skill.Name).Scan(&skill.Id).Error
	}
	return skill.Id, err
}

func (s *skillDAO) List(ctx context.Context, offset, limit int) ([]Skill, error) {
	var res []Skill
	err := s.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (s *skillDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Skill{}).Count(&count).Error
	return count, err
}

func (s *skillDAO) FindByNames(ctx context.Context, names []string) ([]Skill, error) {
	var res []Skill
	if len(names) == 0 {
		return res, nil
	}
	err := s.db.WithContext(ctx).Where("name IN ?", names).Find(&res).Error
	return res, err
}
