package common

import (
	"errors"
	"strings"

	"github.com/CrestNiraj12/terminalconfess/domain"
	"github.com/CrestNiraj12/terminalconfess/infra/api"
)

// ErrorText turns err into a line fit for a form. Validation failures and
// backend messages are shown as-is; anything else becomes fallback.
func ErrorText(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrInvalidInput):
		msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
		if msg == "" {
			return fallback
		}
		return strings.ToUpper(msg[:1]) + msg[1:]
	case errors.Is(err, domain.ErrEmptyConfession):
		return "Write something first."
	case errors.Is(err, domain.ErrNoSession):
		return "Your session has ended. Please sign in again."
	}
	return api.UserMessage(err, fallback)
}
