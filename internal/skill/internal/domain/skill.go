package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxNameLen = 80

var ErrInvalidName = errors.New("技能名称不能为空，且不能超过 80 个字符")

// Skill 技能，名称全局唯一，候选人和面试轮次都按照名称引用技能
type Skill struct {
	ID    int64
	Name  string
	Desc  string
	Ctime int64
	Utime int64
}

func (s Skill) Validate() error {
	name := strings.TrimSpace(s.Name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLen {
		return ErrInvalidName
	}
	return nil
}
