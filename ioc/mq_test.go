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


package ioc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithEventTopic(t *testing.T) {
	testCases := []struct {
		name   string
		topics []topicConfig
		want   []topicConfig
	}{
		{
			name: "没有配置",
			want: []topicConfig{{Name: "interview_events", Partitions: 1}},
		},
		{
			name:   "已经配置",
			topics: []topicConfig{{Name: "interview_events", Partitions: 3}},
			want:   []topicConfig{{Name: "interview_events", Partitions: 3}},
		},
		{
			name:   "补齐分区数",
			topics: []topicConfig{{Name: "audit"}},
			want: []topicConfig{
				{Name: "audit", Partitions: 1},
				{Name: "interview_events", Partitions: 1},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, withEventTopic(tc.topics))
		})
	}
}
