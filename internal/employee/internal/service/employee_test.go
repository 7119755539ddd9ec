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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/hirebook/internal/employee/internal/domain"
	"github.com/ecodeclub/hirebook/internal/employee/internal/repository"
	repomocks "github.com/ecodeclub/hirebook/internal/employee/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEmployeeService_Save(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.EmployeeRepository
		req     domain.Employee
		wantID  int64
		wantErr error
	}{
		{
			name: "保存成功",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				repo := repomocks.NewMockEmployeeRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), domain.Employee{
					Username: "alice",
					Role:     domain.RoleHR,
				}).Return(int64(1), nil)
				return repo
			},
			req:    domain.Employee{Username: " alice ", Role: domain.RoleHR},
			wantID: 1,
		},
		{
			name: "角色不合法",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				return repomocks.NewMockEmployeeRepository(ctrl)
			},
			req:     domain.Employee{Username: "alice", Role: "CEO"},
			wantErr: ErrInvalidRole,
		},
		{
			name: "没有角色",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				return repomocks.NewMockEmployeeRepository(ctrl)
			},
			req:     domain.Employee{Username: "alice"},
			wantErr: ErrInvalidRole,
		},
		{
			name: "用户名为空",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				return repomocks.NewMockEmployeeRepository(ctrl)
			},
			req:     domain.Employee{Username: "  ", Role: domain.RoleDEV},
			wantErr: ErrInvalidUsername,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewEmployeeService(tc.mock(ctrl))
			id, err := svc.Save(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestEmployeeService_Lookup(t *testing.T) {
	alice := domain.Employee{ID: 7, Username: "alice", Email: "alice@example.com", Role: domain.RoleHR}
	testCases := []struct {
		name    string
		key     string
		mock    func(ctrl *gomock.Controller) repository.EmployeeRepository
		want    domain.Employee
		wantErr error
	}{
		{
			name: "数字按照ID查找",
			key:  "7",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				repo := repomocks.NewMockEmployeeRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(7)).Return(alice, nil)
				return repo
			},
			want: alice,
		},
		{
			name: "按照用户名查找",
			key:  "alice",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				repo := repomocks.NewMockEmployeeRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "alice").Return(alice, nil)
				return repo
			},
			want: alice,
		},
		{
			name: "用户名找不到再按照邮箱查找",
			key:  "alice@example.com",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				repo := repomocks.NewMockEmployeeRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "alice@example.com").
					Return(domain.Employee{}, repository.ErrEmployeeNotFound)
				repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(alice, nil)
				return repo
			},
			want: alice,
		},
		{
			name: "都找不到",
			key:  "bob",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				repo := repomocks.NewMockEmployeeRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "bob").
					Return(domain.Employee{}, repository.ErrEmployeeNotFound)
				repo.EXPECT().FindByEmail(gomock.Any(), "bob").
					Return(domain.Employee{}, repository.ErrEmployeeNotFound)
				return repo
			},
			wantErr: ErrEmployeeNotFound,
		},
		{
			name: "查询用户名出错不再查邮箱",
			key:  "bob",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				repo := repomocks.NewMockEmployeeRepository(ctrl)
				repo.EXPECT().FindByUsername(gomock.Any(), "bob").
					Return(domain.Employee{}, errors.New("mock db error"))
				return repo
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewEmployeeService(tc.mock(ctrl))
			e, err := svc.Lookup(context.Background(), tc.key)
			if tc.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, e)
		})
	}
}

func TestEmployeeService_FindRole(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) repository.EmployeeRepository
		wantRole  string
		wantAdmin bool
		wantErr   error
	}{
		{
			name: "HR",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				repo := repomocks.NewMockEmployeeRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Employee{ID: 1, Role: domain.RoleHR}, nil)
				return repo
			},
			wantRole: "HR",
		},
		{
			name: "管理员不是员工",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				repo := repomocks.NewMockEmployeeRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Employee{ID: 1, IsAdmin: true}, nil)
				return repo
			},
			wantAdmin: true,
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) repository.EmployeeRepository {
				repo := repomocks.NewMockEmployeeRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Employee{}, repository.ErrEmployeeNotFound)
				return repo
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewEmployeeService(tc.mock(ctrl))
			role, isAdmin, err := svc.FindRole(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantRole, role)
			assert.Equal(t, tc.wantAdmin, isAdmin)
		})
	}
}
