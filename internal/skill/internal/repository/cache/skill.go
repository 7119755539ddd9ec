package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
)

const expiration = time.Minute * 30

//go:generate mockgen -source=./skill.go -package=cachemocks -destination=mocks/skill.mock.go SkillCache
type SkillCache interface {
	// 缓存总数
	GetTotal(ctx context.Context) (int64, error)
	SetTotal(ctx context.Context, total int64) error
	DelTotal(ctx context.Context) error
	// Exists 技能名称是否存在，没有缓存的名称返回 false
	Exists(ctx context.Context, name string) bool
	SetNames(ctx context.Context, names []string) error
}

type skillCache struct {
	ec ecache.Cache
}

func NewSkillCache(ec ecache.Cache) SkillCache {
	return &skillCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "skill:",
		},
	}
}

func (s *skillCache) GetTotal(ctx context.Context) (int64, error) {
	return s.ec.Get(ctx, s.totalKey()).AsInt64()
}

func (s *skillCache) SetTotal(ctx context.Context, total int64) error {
	return s.ec.Set(ctx, s.totalKey(), total, expiration)
}

func (s *skillCache) DelTotal(ctx context.Context) error {
	_, err := s.ec.Delete(ctx, s.totalKey())
	return err
}

func (s *skillCache) Exists(ctx context.Context, name string) bool {
	val := s.ec.Get(ctx, s.nameKey(name))
	return val.Err == nil
}

func (s *skillCache) SetNames(ctx context.Context, names []string) error {
	for _, name := range names {
		if err := s.ec.Set(ctx, s.nameKey(name), 1, expiration); err != nil {
			return err
		}
	}
	return nil
}

func (s *skillCache) totalKey() string {
	return "total"
}

func (s *skillCache) nameKey(name string) string {
	return fmt.Sprintf("name:%s", name)
}
