package service

import (
	"context"
	"strings"

	"github.com/ecodeclub/hirebook/internal/skill/internal/domain"
	"github.com/ecodeclub/hirebook/internal/skill/internal/repository"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./skill.go -package=svcmocks -destination=mocks/skill.mock.go SkillService
type SkillService interface {
	Save(ctx context.Context, skill domain.Skill) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Skill, int64, error)
	// FindMissing 返回不存在的技能名称，顺序和输入保持一致，重复的名称只返回一次
	FindMissing(ctx context.Context, names []string) ([]string, error)
}

type skillService struct {
	repo repository.SkillRepo
}

func NewSkillService(repo repository.SkillRepo) SkillService {
	return &skillService{
		repo: repo,
	}
}

func (s *skillService) Save(ctx context.Context, skill domain.Skill) (int64, error) {
	if err := skill.Validate(); err != nil {
		return 0, err
	}
	skill.Name = strings.TrimSpace(skill.Name)
	return s.repo.Save(ctx, skill)
}

func (s *skillService) List(ctx context.Context, offset, limit int) ([]domain.Skill, int64, error) {
	var (
		eg     errgroup.Group
		skills []domain.Skill
		total  int64
	)
	eg.Go(func() error {
		var err error
		skills, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return skills, total, eg.Wait()
}

func (s *skillService) FindMissing(ctx context.Context, names []string) ([]string, error) {
	uniq := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		uniq = append(uniq, name)
	}
	if len(uniq) == 0 {
		return []string{}, nil
	}
	existing, err := s.repo.ExistingNames(ctx, uniq)
	if err != nil {
		return nil, err
	}
	found := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		found[name] = struct{}{}
	}
	missing := make([]string, 0, len(uniq))
	for _, name := range uniq {
		if _, ok := found[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing, nil
}
