package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchemaValidatorRejectsInvalidPayload(t *testing.T) {
	validator := NewJSONSchemaValidator()
	valid := PaymentForm{NameOnCard: "Ada", CardNumber: "4242 4242 4242 4242", Expiry: "12/30", CVV: "123"}
	if err := validator.Validate(FormPayment, valid); err != nil {
		t.Fatalf("expected valid payment, got %v", err)
	}
	missing := valid
	missing.CVV = ""
	if err := validator.Validate(FormPayment, missing); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing cvv, got %v", err)
	}
}

func TestJSONSchemaValidatorSupportForm(t *testing.T) {
	validator := NewJSONSchemaValidator()
	req := SupportRequest{Name: "Ada", Email: "ada@example.com", Subject: "Billing", Priority: PriorityUrgent, Message: "Help"}
	require.NoError(t, validator.Validate(FormSupport, req))

	bad := req
	bad.Email = "not-an-email"
	assert.ErrorIs(t, validator.Validate(FormSupport, bad), ErrValidation)

	bad = req
	bad.Priority = "whenever"
	assert.ErrorIs(t, validator.Validate(FormSupport, bad), ErrValidation)

	bad = req
	bad.Message = ""
	assert.ErrorIs(t, validator.Validate(FormSupport, bad), ErrValidation)
}

func TestJSONSchemaValidatorFeedbackHasNoRequiredFields(t *testing.T) {
	validator := NewJSONSchemaValidator()
	require.NoError(t, validator.Validate(FormFeedback, FeedbackForm{}))
	assert.ErrorIs(t, validator.Validate(FormFeedback, FeedbackForm{Rating: 6}), ErrValidation)
}

func TestJSONSchemaValidatorSettingsPatch(t *testing.T) {
	validator := NewJSONSchemaValidator()
	require.NoError(t, validator.Validate(FormSettings, map[string]any{
		"ai":      map[string]any{"verbosity": "detailed"},
		"display": map[string]any{"theme": "dark"},
	}))
	assert.ErrorIs(t, validator.Validate(FormSettings, map[string]any{
		"ai": map[string]any{"verbosity": "loud"},
	}), ErrValidation)
	assert.ErrorIs(t, validator.Validate(FormSettings, map[string]any{
		"audio": map[string]any{"volume": "11"},
	}), ErrValidation)
	assert.ErrorIs(t, validator.Validate(FormSettings, map[string]any{
		"notifications": map[string]any{"email": "yes"},
	}), ErrValidation)
}

func TestJSONSchemaValidatorCachesCompiledSchemas(t *testing.T) {
	validator := NewJSONSchemaValidator()
	validator.Register("demo", map[string]any{"type": "object"})
	if err := validator.Validate("demo", nil); err != nil {
		t.Fatalf("unexpected error validating payload: %v", err)
	}
	if len(validator.compiled) != 1 {
		t.Fatalf("expected schema cache to contain 1 entry, got %d", len(validator.compiled))
	}
	if err := validator.Validate("demo", map[string]any{}); err != nil {
		t.Fatalf("unexpected error on cached validation: %v", err)
	}
	if len(validator.compiled) != 1 {
		t.Fatalf("expected schema cache to remain 1 entry, got %d", len(validator.compiled))
	}

	validator.Register("demo", map[string]any{"type": "object", "required": []string{"id"}})
	if len(validator.compiled) != 0 {
		t.Fatalf("expected Register to invalidate the cached schema")
	}
	assert.ErrorIs(t, validator.Validate("demo", map[string]any{}), ErrValidation)
}

func TestJSONSchemaValidatorUnknownFormPasses(t *testing.T) {
	assert.NoError(t, NewJSONSchemaValidator().Validate("unknown", map[string]any{"x": 1}))
}
