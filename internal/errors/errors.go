package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/tasklit/internal/constants"
	"github.com/julianstephens/tasklit/internal/ledger"
	"github.com/julianstephens/tasklit/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// UserMessage maps ledger errors to the title and message shown to the user.
// Other errors fall back to the generic error title and the error text.
func UserMessage(err error) (title, message string) {
	if err == nil {
		return "", ""
	}

	var verr *ledger.ValidationError
	switch {
	case errors.Is(err, ledger.ErrLocked):
		return constants.LockedTitle, constants.LockedMessage
	case errors.As(err, &verr):
		switch verr.Field {
		case "title":
			return constants.ValidationTitle, "Please enter a task title"
		case "task":
			return constants.ValidationTitle, "Only completed tasks can be shared"
		case "photo":
			return constants.ValidationTitle, "Please take a photo first"
		}
		return constants.ValidationTitle, fmt.Sprintf("Please choose a valid %s", verr.Field)
	case errors.Is(err, ledger.ErrNotFound):
		return constants.NotFoundTitle, err.Error()
	default:
		return constants.ValidationTitle, err.Error()
	}
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
