package httpapi

import (
	"errors"
	"net/http"

	"github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// ErrBadPayload marks request bodies or parameters that cannot be decoded.
var ErrBadPayload = errors.New("httpapi: bad payload")

// StatusFor maps dashboard errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadPayload),
		errors.Is(err, dashboard.ErrMissingSession),
		errors.Is(err, dashboard.ErrUnsupportedFormat),
		errors.Is(err, dashboard.ErrUnknownModal):
		return http.StatusBadRequest
	case errors.Is(err, dashboard.ErrValidation),
		errors.Is(err, dashboard.ErrInvalidSettingValue),
		errors.Is(err, dashboard.ErrUnknownSetting):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dashboard.ErrSessionNotFound),
		errors.Is(err, dashboard.ErrConversationNotFound),
		errors.Is(err, dashboard.ErrPlanNotFound),
		errors.Is(err, dashboard.ErrFAQNotFound),
		errors.Is(err, dashboard.ErrInvoiceNotFound),
		errors.Is(err, dashboard.ErrNotificationNotFound),
		errors.Is(err, dashboard.ErrUnknownRoute):
		return http.StatusNotFound
	case errors.Is(err, dashboard.ErrModalClosed),
		errors.Is(err, dashboard.ErrWizardCompleted):
		return http.StatusConflict
	case errors.Is(err, ErrCommandNotConfigured):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}
