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

package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownAction = errors.New("未知的面试操作")

// actionPrefix 历史接口里的操作名带有这个前缀，解析时兼容
const actionPrefix = "action_"

// Action 面试状态机对外暴露的操作，集合是封闭的，新增操作必须同时补齐 String 和 Interview.Perform
type Action uint8

const (
	ActionUnknown Action = iota
	ActionStartFirstRound
	ActionMoveToNextRound
	ActionReject
	ActionSelect
	ActionRecommend
)

// Actions 全部合法操作，顺序即对外展示的顺序
func Actions() []Action {
	return []Action{
		ActionStartFirstRound,
		ActionMoveToNextRound,
		ActionReject,
		ActionSelect,
		ActionRecommend,
	}
}

func ActionNames() []string {
	actions := Actions()
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, a.String())
	}
	return names
}

func (a Action) String() string {
	switch a {
	case ActionStartFirstRound:
		return "start_first_round"
	case ActionMoveToNextRound:
		return "move_to_next_round"
	case ActionReject:
		return "reject"
	case ActionSelect:
		return "select"
	case ActionRecommend:
		return "recommend"
	default:
		return "unknown"
	}
}

func (a Action) IsValid() bool {
	return a >= ActionStartFirstRound && a <= ActionRecommend
}

// AcceptsRemarks 只有开始第一轮不接收备注
func (a Action) AcceptsRemarks() bool {
	return a.IsValid() && a != ActionStartFirstRound
}

// ParseAction 大小写不敏感，同时兼容带 action_ 前缀的写法
func ParseAction(name string) (Action, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.TrimPrefix(normalized, actionPrefix)
	for _, a := range Actions() {
		if a.String() == normalized {
			return a, nil
		}
	}
	return ActionUnknown, fmt.Errorf("%w: %q, valid actions are: %s",
		ErrUnknownAction, name, strings.Join(ActionNames(), ", "))
}

// ActionResult 状态机操作的结果。前置条件不满足不是系统错误，
// 所有违反的条件都会收集到 Errors 里一起返回。
type ActionResult struct {
	OK     bool
	Errors []string
}

func succeeded() ActionResult {
	return ActionResult{OK: true, Errors: []string{}}
}

func failed(errs []string) ActionResult {
	return ActionResult{OK: false, Errors: errs}
}
