package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/candidate"
	"github.com/ecodeclub/hirebook/internal/employee"
	"github.com/ecodeclub/hirebook/internal/interview"
	"github.com/ecodeclub/hirebook/internal/pkg/middleware"
	"github.com/ecodeclub/hirebook/internal/skill"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	empHdl *employee.Hdl,
	skillHdl *skill.Handler,
	candidateHdl *candidate.Hdl,
	interviewHdl *interview.Hdl,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	allowed := econf.GetStringSlice("web.allowedOrigins")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, domain := range allowed {
				if strings.Contains(origin, domain) {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder(nil).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录由统一的账号系统负责，这里只校验会话
	res.Use(session.CheckLoginMiddleware())
	empHdl.PrivateRoutes(res.Engine)
	skillHdl.PrivateRoutes(res.Engine)
	candidateHdl.PrivateRoutes(res.Engine)
	interviewHdl.PrivateRoutes(res.Engine)
	return res
}
