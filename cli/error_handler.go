package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/headless/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ No headless.yml found. Create one in the project root or pass --config.\n")
		return err

	case errors.ErrCodeSchemaValidation, errors.ErrCodeConfigValidation:
		fmt.Fprintf(os.Stderr, "❌ Configuration is invalid:\n")
		if headlessErr, ok := err.(*errors.HeadlessError); ok {
			if v, exists := headlessErr.Details["validation_errors"]; exists {
				fmt.Fprintf(os.Stderr, "   %v\n", v)
			} else {
				fmt.Fprintf(os.Stderr, "   %s\n", headlessErr.Message)
			}
		}
		return err

	case errors.ErrCodeUnknownPart:
		if headlessErr, ok := err.(*errors.HeadlessError); ok {
			fmt.Fprintf(os.Stderr, "❌ Component '%s' has no part '%s'\n",
				headlessErr.Details["component"], headlessErr.Details["part"])
		}
		return err

	case errors.ErrCodeBridgeClosed:
		fmt.Fprintf(os.Stderr, "❌ The bridge connection was closed. Restart with 'headless bridge'.\n")
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if headlessErr, ok := err.(*errors.HeadlessError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", headlessErr.ToJSON())
			}
		}
		return err
	}
}
