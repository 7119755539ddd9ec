package errs

var (
	SystemError       = ErrorCode{Code: 533001, Msg: "系统错误"}
	InterviewNotFound = ErrorCode{Code: 533002, Msg: "Interview not Found."}
	RoundNotFound     = ErrorCode{Code: 533003, Msg: "Interview round not Found."}
	InvalidAction     = ErrorCode{Code: 533004, Msg: "Invalid Action"}
	ActionRejected    = ErrorCode{Code: 533005, Msg: "Action can not be performed"}
	InvalidArgs       = ErrorCode{Code: 533006, Msg: "Invalid arguments"}
	IntegrityConflict = ErrorCode{Code: 533007, Msg: "Interview round already exists"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
