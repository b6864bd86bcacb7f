package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Form names understood by the validator.
const (
	FormPayment  = "payment"
	FormSupport  = "support"
	FormFeedback = "feedback"
	FormSettings = "settings"
)

// FormValidator validates a submitted form payload against the named schema.
type FormValidator interface {
	Validate(form string, payload any) error
}

// JSONSchemaValidator compiles form schemas lazily and validates payloads.
type JSONSchemaValidator struct {
	mu       sync.RWMutex
	schemas  map[string]map[string]any
	compiled map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator builds a validator preloaded with the dashboard forms.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	v := &JSONSchemaValidator{
		schemas:  make(map[string]map[string]any),
		compiled: make(map[string]*jsonschema.Schema),
	}
	v.Register(FormPayment, paymentSchema)
	v.Register(FormSupport, supportSchema)
	v.Register(FormFeedback, feedbackSchema)
	v.Register(FormSettings, settingsPatchSchema())
	return v
}

// Register installs (or replaces) the schema for form.
func (v *JSONSchemaValidator) Register(form string, schema map[string]any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.schemas[form] = schema
	delete(v.compiled, form)
}

// Validate checks payload against the schema registered for form. Failures
// wrap ErrValidation. Forms without a schema always pass.
func (v *JSONSchemaValidator) Validate(form string, payload any) error {
	schema, err := v.schemaFor(form)
	if err != nil || schema == nil {
		return err
	}
	normalized, err := normalizePayload(payload)
	if err != nil {
		return fmt.Errorf("dashboard: normalize %s payload: %w", form, err)
	}
	if err := schema.Validate(normalized); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrValidation, form, err)
	}
	return nil
}

func (v *JSONSchemaValidator) schemaFor(form string) (*jsonschema.Schema, error) {
	v.mu.RLock()
	compiled, ok := v.compiled[form]
	raw, known := v.schemas[form]
	v.mu.RUnlock()
	if ok {
		return compiled, nil
	}
	if !known {
		return nil, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("dashboard: marshal schema %s: %w", form, err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	name := form + ".json"
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("dashboard: load schema %s: %w", form, err)
	}
	compiled, err = compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("dashboard: compile schema %s: %w", form, err)
	}
	v.mu.Lock()
	v.compiled[form] = compiled
	v.mu.Unlock()
	return compiled, nil
}

func normalizePayload(payload any) (any, error) {
	if payload == nil {
		return map[string]any{}, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type noopFormValidator struct{}

func (noopFormValidator) Validate(string, any) error { return nil }

var requiredText = map[string]any{"type": "string", "minLength": 1}

var paymentSchema = map[string]any{
	"type":     "object",
	"required": []string{"name_on_card", "card_number", "expiry", "cvv"},
	"properties": map[string]any{
		"name_on_card": requiredText,
		"card_number":  requiredText,
		"expiry":       requiredText,
		"cvv":          requiredText,
	},
}

var supportSchema = map[string]any{
	"type":     "object",
	"required": []string{"name", "email", "subject", "message"},
	"properties": map[string]any{
		"name":     requiredText,
		"email":    map[string]any{"type": "string", "minLength": 1, "format": "email"},
		"subject":  requiredText,
		"message":  requiredText,
		"priority": map[string]any{"type": "string", "enum": SupportPriorities()},
	},
}

var feedbackSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"rating":   map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
		"feedback": map[string]any{"type": "string"},
	},
}

// settingsPatchSchema derives a partial-update schema from the settings
// layout: every category and key is optional, unknown ones are rejected.
func settingsPatchSchema() map[string]any {
	categories := make(map[string]any, len(settingsSchema))
	for _, cat := range settingsSchema {
		props := make(map[string]any, len(cat.Settings))
		for _, def := range cat.Settings {
			if def.Kind == SettingToggle {
				props[def.Key] = map[string]any{"type": "boolean"}
				continue
			}
			values := make([]string, 0, len(def.Options))
			for _, opt := range def.Options {
				values = append(values, opt.Value)
			}
			props[def.Key] = map[string]any{"type": "string", "enum": values}
		}
		categories[cat.Key] = map[string]any{
			"type":                 "object",
			"properties":           props,
			"additionalProperties": false,
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           categories,
		"additionalProperties": false,
	}
}
