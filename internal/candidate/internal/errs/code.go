package errs

var (
	SystemError       = ErrorCode{Code: 532001, Msg: "系统错误"}
	CandidateNotFound = ErrorCode{Code: 532002, Msg: "Candidate not Found."}
	InvalidCandidate  = ErrorCode{Code: 532003, Msg: "Invalid candidate."}
)

type ErrorCode struct {
	Code int
	Msg  string
}
