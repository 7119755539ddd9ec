package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/hirebook/internal/skill/internal/domain"
	"github.com/ecodeclub/hirebook/internal/skill/internal/repository"
	repomocks "github.com/ecodeclub/hirebook/internal/skill/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSkillService_FindMissing(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.SkillRepo
		names   []string
		want    []string
		wantErr error
	}{
		{
			name: "全部存在",
			mock: func(ctrl *gomock.Controller) repository.SkillRepo {
				repo := repomocks.NewMockSkillRepo(ctrl)
				repo.EXPECT().ExistingNames(gomock.Any(), []string{"Go", "MySQL"}).
					Return([]string{"MySQL", "Go"}, nil)
				return repo
			},
			names: []string{"Go", "MySQL"},
			want:  []string{},
		},
		{
			name: "部分不存在-保持顺序并去重",
			mock: func(ctrl *gomock.Controller) repository.SkillRepo {
				repo := repomocks.NewMockSkillRepo(ctrl)
				repo.EXPECT().ExistingNames(gomock.Any(), []string{"Rust", "Go", "Kafka"}).
					Return([]string{"Go"}, nil)
				return repo
			},
			names: []string{"Rust", "Go", "Rust", "Kafka"},
			want:  []string{"Rust", "Kafka"},
		},
		{
			name: "没有技能不查询",
			mock: func(ctrl *gomock.Controller) repository.SkillRepo {
				return repomocks.NewMockSkillRepo(ctrl)
			},
			want: []string{},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) repository.SkillRepo {
				repo := repomocks.NewMockSkillRepo(ctrl)
				repo.EXPECT().ExistingNames(gomock.Any(), []string{"Go"}).
					Return(nil, errors.New("mock db error"))
				return repo
			},
			names:   []string{"Go"},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewSkillService(tc.mock(ctrl))
			missing, err := svc.FindMissing(context.Background(), tc.names)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, missing)
		})
	}
}

func TestSkillService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockSkillRepo(ctrl)
	repo.EXPECT().Save(gomock.Any(), domain.Skill{Name: "Go"}).Return(int64(3), nil)
	svc := NewSkillService(repo)

	id, err := svc.Save(context.Background(), domain.Skill{Name: "  Go "})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	_, err = svc.Save(context.Background(), domain.Skill{Name: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestSkillService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockSkillRepo(ctrl)
	repo.EXPECT().List(gomock.Any(), 0, 2).Return([]domain.Skill{{ID: 1, Name: "Go"}, {ID: 2, Name: "MySQL"}}, nil)
	repo.EXPECT().Count(gomock.Any()).Return(int64(5), nil)
	svc := NewSkillService(repo)

	skills, total, err := svc.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Equal(t, []domain.Skill{{ID: 1, Name: "Go"}, {ID: 2, Name: "MySQL"}}, skills)
}
