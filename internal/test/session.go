package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const sessionKey = "_session"

var errNoSession = errors.New("会话不存在")

// 初始化一下 session
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

// SessionProvider 直接从 gin 的上下文里读取测试用例放进去的会话
type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid, Data: jwtData})
	ctx.Set(sessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(sessionKey)
	if !ok {
		return nil, errNoSession
	}
	return val.(session.Session), nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	ctx.Set(sessionKey, session.NewMemorySession(claims))
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	return nil
}

// SetSession 给请求设置一个已经登录的员工会话
func SetSession(ctx *gin.Context, claims session.Claims) {
	ctx.Set(sessionKey, session.NewMemorySession(claims))
}
