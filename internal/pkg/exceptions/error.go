package exceptions

import (
	"fmt"
	"runtime"
	"sehatnama-service/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	cause         error
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError wraps err with a client-safe message and the call sites
// that produced it. A nil err is allowed for failures without an underlying cause.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Success:       false,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     getLocations(3, 2),
		cause:         err,
	}
}

func getLocations(skip, depth int) []Location {
	locations := make([]Location, 0, depth)
	for i := 0; i < depth; i++ {
		pc, file, line, ok := runtime.Caller(skip + i)
		if !ok {
			if i == 0 {
				locations = append(locations, Location{
					File:         constvars.ResponseUnknown,
					FunctionName: constvars.ResponseUnknown,
				})
			}
			break
		}
		locations = append(locations, Location{
			File:         file,
			Line:         line,
			FunctionName: runtime.FuncForPC(pc).Name(),
		})
	}
	return locations
}
