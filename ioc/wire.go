//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/hirebook/internal/candidate"
	"github.com/ecodeclub/hirebook/internal/employee"
	"github.com/ecodeclub/hirebook/internal/interview"
	"github.com/ecodeclub/hirebook/internal/skill"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		employee.InitModule,
		skill.InitModule,
		candidate.InitModule,
		interview.InitModule,
		wire.FieldsOf(new(*employee.Module), "Hdl"),
		wire.FieldsOf(new(*skill.Module), "Hdl"),
		wire.FieldsOf(new(*candidate.Module), "Hdl"),
		wire.FieldsOf(new(*interview.Module), "Hdl"),
		InitSession,
		initGinxServer)
	return new(App), nil
}
