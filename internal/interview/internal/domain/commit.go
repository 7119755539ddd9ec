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

import "math"

// JobIDGenerator 根据已经落库的主键生成面试编号
type JobIDGenerator interface {
	Generate(id int64) string
}

// Commit 每次落库之前按固定顺序计算派生字段：先生成面试编号，再计算综合评分
func (iv *Interview) Commit(gen JobIDGenerator) {
	iv.AssignJobID(gen)
	iv.CalculateOverallRating()
}

// AssignJobID 面试编号只生成一次，并且依赖主键，所以必须在插入之后调用
func (iv *Interview) AssignJobID(gen JobIDGenerator) {
	if iv.JobID != "" || iv.ID <= 0 {
		return
	}
	iv.JobID = gen.Generate(iv.ID)
}

// CalculateOverallRating 录用且终面已经打分之后才计算综合评分。
// 注意这里是先对评分总和取整，再除以轮数，并不是平均值取整，历史数据都是这么算的。
func (iv *Interview) CalculateOverallRating() {
	if iv.Status != StatusSelect {
		return
	}
	// 评分字段不可为空，默认是 0，所以存在终面即认为终面已经打分
	if !iv.Rounds.HasFinal() || len(iv.Rounds) == 0 {
		return
	}
	rating := math.Round(float64(iv.Rounds.TotalRating())) / float64(len(iv.Rounds))
	iv.OverallRating = &rating
}
