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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirebook/internal/interview/internal/domain"
	"github.com/pkg/errors"
)

const (
	interviewExpiration = time.Minute
)

var (
	ErrInterviewNotFound = errors.New("面试没找到")
)

//go:generate mockgen -source=./interview.go -package=cachemocks -destination=mocks/interview.mock.go InterviewCache
type InterviewCache interface {
	Get(ctx context.Context, jobID string) (domain.Interview, error)
	Set(ctx context.Context, iv domain.Interview) error
	Delete(ctx context.Context, jobID string) error
}

type interviewCache struct {
	ec ecache.Cache
}

func NewInterviewCache(ec ecache.Cache) InterviewCache {
	return &interviewCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "interview:",
		},
	}
}

func (c *interviewCache) Get(ctx context.Context, jobID string) (domain.Interview, error) {
	val := c.ec.Get(ctx, c.key(jobID))
	if val.KeyNotFound() {
		return domain.Interview{}, ErrInterviewNotFound
	}
	if val.Err != nil {
		return domain.Interview{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var iv domain.Interview
	if err := val.JSONScan(&iv); err != nil {
		return domain.Interview{}, errors.Wrap(err, "反序列化面试失败")
	}
	return iv, nil
}

func (c *interviewCache) Set(ctx context.Context, iv domain.Interview) error {
	data, err := json.Marshal(iv)
	if err != nil {
		return errors.Wrap(err, "序列化面试失败")
	}
	return c.ec.Set(ctx, c.key(iv.JobID), string(data), interviewExpiration)
}

func (c *interviewCache) Delete(ctx context.Context, jobID string) error {
	_, err := c.ec.Delete(ctx, c.key(jobID))
	return err
}

func (c *interviewCache) key(jobID string) string {
	return fmt.Sprintf("detail:%s", jobID)
}
