package errorx

import "fmt"

type Error struct {
	Code    Code
	Message string
}

// Unknown is returned to the client whenever the real cause must not leak
// outside of the log.
var Unknown = Error{Code: 100000, Message: "Request failed"}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}
