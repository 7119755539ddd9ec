package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/skill/internal/domain"
	"github.com/ecodeclub/hirebook/internal/skill/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/skill/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./skill.go -package=repomocks -destination=mocks/skill.mock.go SkillRepo
type SkillRepo interface {
	Save(ctx context.Context, skill domain.Skill) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Skill, error)
	Count(ctx context.Context) (int64, error)
	// ExistingNames 返回 names 中已经存在的技能名称
	ExistingNames(ctx context.Context, names []string) ([]string, error)
}

type skillRepo struct {
	skillDao dao.SkillDAO
	cache    cache.SkillCache
	logger   *elog.Component
}

func NewSkillRepo(skillDao dao.SkillDAO, skillCache cache.SkillCache) SkillRepo {
	return &skillRepo{
		skillDao: skillDao,
		cache:    skillCache,
		logger:   elog.DefaultLogger,
	}
}

func (s *skillRepo) Save(ctx context.Context, skill domain.Skill) (int64, error) {
	id, err := s.skillDao.Save(ctx, s.skillToEntity(skill))
	if err != nil {
		return 0, err
	}
	if er := s.cache.DelTotal(ctx); er != nil {
		s.logger.Error("删除技能总数缓存失败", elog.FieldErr(er))
	}
	return id, nil
}

func (s *skillRepo) List(ctx context.Context, offset, limit int) ([]domain.Skill, error) {
	skillList, err := s.skillDao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(skillList, func(idx int, src dao.Skill) domain.Skill {
		return s.skillToDomain(src)
	}), nil
}

func (s *skillRepo) Count(ctx context.Context) (int64, error) {
	total, err := s.cache.GetTotal(ctx)
	if err == nil {
		return total, nil
	}
	total, err = s.skillDao.Count(ctx)
	if err != nil {
		return 0, err
	}
	if er := s.cache.SetTotal(ctx, total); er != nil {
		s.logger.Error("缓存技能总数失败", elog.FieldErr(er))
	}
	return total, nil
}

func (s *skillRepo) ExistingNames(ctx context.Context, names []string) ([]string, error) {
	res := make([]string, 0, len(names))
	misses := make([]string, 0, len(names))
	for _, name := range names {
		if s.cache.Exists(ctx, name) {
			res = append(res, name)
			continue
		}
		misses = append(misses, name)
	}
	if len(misses) == 0 {
		return res, nil
	}
	found, err := s.skillDao.FindByNames(ctx, misses)
	if err != nil {
		return nil, err
	}
	foundNames := slice.Map(found, func(idx int, src dao.Skill) string {
		return src.Name
	})
	if er := s.cache.SetNames(ctx, foundNames); er != nil {
		s.logger.Error("缓存技能名称失败", elog.FieldErr(er))
	}
	return append(res, foundNames...), nil
}

func (s *skillRepo) skillToDomain(skill dao.Skill) domain.Skill {
	return domain.Skill{
		ID:    skill.Id,
		Name:  skill.Name,
		Desc:  skill.Desc,
		Ctime: skill.Ctime,
		Utime: skill.Utime,
	}
}

func (s *skillRepo) skillToEntity(skill domain.Skill) dao.Skill {
	return dao.Skill{
		Id:   skill.ID,
		Name: skill.Name,
		Desc: skill.Desc,
	}
}
