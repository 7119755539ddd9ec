package web

import (
	"github.com/ecodeclub/hirebook/internal/skill/internal/domain"
)

type SaveReq struct {
	Skill Skill `json:"skill,omitempty"`
}

type Skill struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Desc  string `json:"desc,omitempty"`
	Utime int64  `json:"utime,omitempty"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type SkillList struct {
	Skills []Skill `json:"skills,omitempty"`
	Total  int64   `json:"total,omitempty"`
}

func (s Skill) toDomain() domain.Skill {
	return domain.Skill{
		ID:   s.ID,
		Name: s.Name,
		Desc: s.Desc,
	}
}

func newSkill(s domain.Skill) Skill {
	return Skill{
		ID:    s.ID,
		Name:  s.Name,
		Desc:  s.Desc,
		Utime: s.Utime,
	}
}
