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
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/hirebook/internal/pkg/database"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

const (
	pingTimeout     = 5 * time.Second
	pingMaxInterval = 10 * time.Second
	pingMaxRetries  = 10
)

// InitDB 面试、员工等模块共用一个 MySQL，建表由各个模块自己负责
func InitDB() *egorm.Component {
	WaitForDBSetup(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	if err := db.Use(database.NewGormTracingPlugin()); err != nil {
		panic(fmt.Errorf("注册 GORM 链路追踪插件失败: %w", err))
	}
	return db
}

// WaitForDBSetup 等待 MySQL 可以连接，e2e 测试也会用到
func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, pingMaxInterval, pingMaxRetries)
	if err != nil {
		panic(err)
	}
	for attempt := 1; ; attempt++ {
		if err = ping(sqlDB); err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic(fmt.Errorf("等待 MySQL 就绪失败，已经尝试 %d 次: %w", attempt, err))
		}
		elog.DefaultLogger.Warn("MySQL 还没有就绪",
			elog.Int("attempt", attempt),
			elog.Duration("next", next),
			elog.FieldErr(err))
		time.Sleep(next)
	}
}

func ping(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return db.PingContext(ctx)
}
