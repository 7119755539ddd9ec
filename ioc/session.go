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
	"time"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/ginx/session/cookie"
	"github.com/ecodeclub/ginx/session/header"
	"github.com/ecodeclub/ginx/session/mixin"
	sessredis "github.com/ecodeclub/ginx/session/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

const (
	sessionCookieName        = "hirebook_ssid"
	defaultSessionExpiration = 24 * time.Hour
)

type sessionConfig struct {
	SessionEncryptedKey string        `yaml:"sessionEncryptedKey"`
	Expiration          time.Duration `yaml:"expiration"`
	Cookie              struct {
		Domain   string `yaml:"domain"`
		Insecure bool   `yaml:"insecure"`
	} `yaml:"cookie"`
}

// InitSession 会话由统一登录签发，这里只负责校验，
// 同时支持 header 和 cookie 两种携带方式
func InitSession(cmd redis.Cmdable) session.Provider {
	var cfg sessionConfig
	if err := econf.UnmarshalKey("session", &cfg); err != nil {
		panic(err)
	}
	if cfg.SessionEncryptedKey == "" {
		panic("session.sessionEncryptedKey 不能为空")
	}
	if cfg.Expiration <= 0 {
		cfg.Expiration = defaultSessionExpiration
	}
	sp := sessredis.NewSessionProvider(cmd, cfg.SessionEncryptedKey, cfg.Expiration)
	sp.TokenCarrier = mixin.NewTokenCarrier(header.NewTokenCarrier(), &cookie.TokenCarrier{
		MaxAge:   int(cfg.Expiration.Seconds()),
		Name:     sessionCookieName,
		Secure:   !cfg.Cookie.Insecure,
		HttpOnly: true,
		Domain:   cfg.Cookie.Domain,
	})
	return sp
}
