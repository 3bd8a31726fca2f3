package errors

// ErrorCode identifies an application error category
type ErrorCode int32

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_NOT_FOUND
	ErrorCode_AI_SUMMARY_FAILED
	ErrorCode_AI_SERVICE_UNAVAILABLE
	ErrorCode_EVENT_BUS_FAILED
	ErrorCode_DEPLOY_FAILED
	ErrorCode_HTTP_OK
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                "UNKNOWN",
	ErrorCode_INTERNAL:               "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:       "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:        "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:              "NOT_FOUND",
	ErrorCode_AI_SUMMARY_FAILED:      "AI_SUMMARY_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE: "AI_SERVICE_UNAVAILABLE",
	ErrorCode_EVENT_BUS_FAILED:       "EVENT_BUS_FAILED",
	ErrorCode_DEPLOY_FAILED:          "DEPLOY_FAILED",
	ErrorCode_HTTP_OK:                "HTTP_OK",
}

// String returns the name of the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
