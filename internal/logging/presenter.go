package logging

import (
	"errors"
	"fmt"

	apperrors "basics/cli/internal/errors"
)

// PresentError formats an error for user display. Categorised errors show
// their message without the machine-readable kind prefix.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	var e *apperrors.E
	if errors.As(err, &e) && e.Message != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", context, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %s", context, e.Message)
	}
	return fmt.Sprintf("%s: %s", context, err.Error())
}
