package dashboard

import "errors"

var (
	ErrMissingSession       = errors.New("dashboard: session id is required")
	ErrSessionNotFound      = errors.New("dashboard: session not found")
	ErrConversationNotFound = errors.New("dashboard: conversation not found")
	ErrPlanNotFound         = errors.New("dashboard: plan not found")
	ErrFAQNotFound          = errors.New("dashboard: faq not found")
	ErrInvoiceNotFound      = errors.New("dashboard: invoice not found")
	ErrNotificationNotFound = errors.New("dashboard: notification not found")
	ErrUnknownRoute         = errors.New("dashboard: unknown route")
	ErrUnknownModal         = errors.New("dashboard: unknown modal")
	ErrUnknownSetting       = errors.New("dashboard: unknown setting")
	ErrInvalidSettingValue  = errors.New("dashboard: invalid setting value")
	ErrModalClosed          = errors.New("dashboard: modal is not open")
	ErrValidation           = errors.New("dashboard: validation failed")
	ErrUnsupportedFormat    = errors.New("dashboard: unsupported export format")
	ErrWizardCompleted      = errors.New("dashboard: onboarding already completed")
)
