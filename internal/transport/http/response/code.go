package response

import "net/http"

// Fixed transport-level messages.
const (
	MsgValidationFailed = "Validation failed"
	MsgInvalidQuery     = "Invalid query parameters"
	MsgInvalidID        = "Invalid ID parameter. ID must be a positive integer"
	MsgInvalidUserID    = "Invalid user ID parameter. User ID must be a positive integer"
	MsgInvalidJSON      = "Invalid JSON in request body"
	MsgBodyTooLarge     = "Request body too large"
	MsgSomethingWrong   = "Something went wrong"
	MsgServerBusy       = "Server is busy, please retry later"
	MsgTimeout          = "Request timed out"
)

// CodeMsgMap holds the fallback message per status code.
var CodeMsgMap = map[int]string{
	http.StatusBadRequest:            "Bad Request",
	http.StatusNotFound:              "Not Found",
	http.StatusConflict:              "Conflict",
	http.StatusRequestEntityTooLarge: MsgBodyTooLarge,
	http.StatusInternalServerError:   "Internal server error",
	http.StatusServiceUnavailable:    MsgServerBusy,
	http.StatusGatewayTimeout:        MsgTimeout,
}

func MessageFor(status int) string {
	if m, ok := CodeMsgMap[status]; ok {
		return m
	}
	return http.StatusText(status)
}
