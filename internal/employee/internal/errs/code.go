package errs

var (
	SystemError       = ErrorCode{Code: 531001, Msg: "系统错误"}
	EmployeeNotFound  = ErrorCode{Code: 531002, Msg: "Employee not Found."}
	InvalidRole       = ErrorCode{Code: 531003, Msg: "Invalid role, must be one of HR, DEV"}
	EmployeeDuplicate = ErrorCode{Code: 531004, Msg: "Employee with the same username or email already exists."}
	InvalidUsername   = ErrorCode{Code: 531005, Msg: "username is a required field."}
)

type ErrorCode struct {
	Code int
	Msg  string
}
