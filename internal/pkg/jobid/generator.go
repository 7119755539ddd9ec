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

package jobid

import (
	"fmt"
	"time"
)

// dateLayout 对应 DD-MM-YYYY
const dateLayout = "02-01-2006"

// NowFunc 定义获取当前时间的函数类型，方便测试时固定日期
type NowFunc func() time.Time

// Generator 根据面试的主键生成对外展示的面试编号
type Generator struct {
	nowFunc NowFunc
}

// NewGeneratorWith 创建一个Generator实例
func NewGeneratorWith(now NowFunc) *Generator {
	return &Generator{
		nowFunc: now,
	}
}

// NewGenerator 创建一个使用系统时间的Generator实例
func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now)
}

// Generate 生成形如 INT05-03-2024-42 的编号，id 必须是已经落库的主键
func (g *Generator) Generate(id int64) string {
	return fmt.Sprintf("INT%s-%d", g.nowFunc().Format(dateLayout), id)
}
