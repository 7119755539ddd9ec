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

package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	errNoDuplicateEntry   uint16 = 1062
	errNoLockWaitTimeout  uint16 = 1205
	errNoDeadlockDetected uint16 = 1213
)

// IsUniqueConflict 违反唯一索引
func IsUniqueConflict(err error) bool {
	return mysqlErrNo(err) == errNoDuplicateEntry
}

// IsLockContention 死锁或者锁等待超时，整个事务重试即可
func IsLockContention(err error) bool {
	no := mysqlErrNo(err)
	return no == errNoDeadlockDetected || no == errNoLockWaitTimeout
}

func mysqlErrNo(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}
