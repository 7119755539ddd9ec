package errs

var (
	SystemError = ErrorCode{Code: 507001, Msg: "系统错误"}
	InvalidName = ErrorCode{Code: 507002, Msg: "Skill name is required and must be at most 80 characters."}
)

type ErrorCode struct {
	Code int
	Msg  string
}
