package helper

import (
	"github.com/pvlov/gin-multipart-test/internal/pkg/logger"
)

// HandleAppError logs err with the function and step it came from. Fatal
// errors are returned to the caller, others are only logged.
func HandleAppError(err error, function, step string, fatal bool) error {
	if err == nil {
		return nil
	}
	if fatal {
		logger.Error.Println("Fatal error in function:", function, "Step:", step, "Details:", err)
		return err
	}
	logger.Warning.Println("Error in function:", function, "Step:", step, "Details:", err)
	return nil
}
