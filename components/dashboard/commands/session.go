package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	dashboard "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// ResetSessionInput restores every default for a session.
type ResetSessionInput struct {
	SessionID string `json:"session_id"`
}

type sessionResetter interface {
	ResetSession(ctx context.Context, id string) error
}

// ResetSessionCommand backs the "Reset" button on the settings page.
type ResetSessionCommand struct {
	service   sessionResetter
	telemetry Telemetry
}

// NewResetSessionCommand creates the command.
func NewResetSessionCommand(service sessionResetter, telemetry Telemetry) *ResetSessionCommand {
	return &ResetSessionCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ResetSessionInput] = (*ResetSessionCommand)(nil)

func (c *ResetSessionCommand) Execute(ctx context.Context, msg ResetSessionInput) error {
	if c.service == nil {
		return errors.New("reset session command requires service")
	}
	if err := c.service.ResetSession(ctx, msg.SessionID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("session_reset"), map[string]any{
		"session_id": msg.SessionID,
	})
	return nil
}

// ToggleSidebarInput flips the mobile sidebar.
type ToggleSidebarInput struct {
	SessionID string `json:"session_id"`
	// Open receives the sidebar state after the toggle when set.
	Open *bool `json:"-"`
}

type sidebarToggler interface {
	ToggleSidebar(ctx context.Context, id string) (bool, error)
}

// ToggleSidebarCommand opens or closes the navigation sidebar.
type ToggleSidebarCommand struct {
	service   sidebarToggler
	telemetry Telemetry
}

// NewToggleSidebarCommand creates the command.
func NewToggleSidebarCommand(service sidebarToggler, telemetry Telemetry) *ToggleSidebarCommand {
	return &ToggleSidebarCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ToggleSidebarInput] = (*ToggleSidebarCommand)(nil)

func (c *ToggleSidebarCommand) Execute(ctx context.Context, msg ToggleSidebarInput) error {
	if c.service == nil {
		return errors.New("toggle sidebar command requires service")
	}
	open, err := c.service.ToggleSidebar(ctx, msg.SessionID)
	if err != nil {
		return err
	}
	if msg.Open != nil {
		*msg.Open = open
	}
	c.telemetry.Record(ctx, commandEvent("sidebar"), map[string]any{
		"session_id": msg.SessionID,
		"open":       open,
	})
	return nil
}

// OnboardingInput drives the onboarding wizard.
type OnboardingInput struct {
	SessionID string                     `json:"session_id"`
	Action    dashboard.OnboardingAction `json:"action"`
	// View receives the wizard state after the action, nil once finished.
	View **dashboard.OnboardingView `json:"-"`
}

type onboardingStepper interface {
	Onboarding(ctx context.Context, id string, action dashboard.OnboardingAction) (*dashboard.OnboardingView, error)
}

// OnboardingCommand applies next/previous/skip/start to the wizard.
type OnboardingCommand struct {
	service   onboardingStepper
	telemetry Telemetry
}

// NewOnboardingCommand creates the command.
func NewOnboardingCommand(service onboardingStepper, telemetry Telemetry) *OnboardingCommand {
	return &OnboardingCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[OnboardingInput] = (*OnboardingCommand)(nil)

func (c *OnboardingCommand) Execute(ctx context.Context, msg OnboardingInput) error {
	if c.service == nil {
		return errors.New("onboarding command requires service")
	}
	if msg.Action == "" {
		return errors.New("onboarding action is required")
	}
	view, err := c.service.Onboarding(ctx, msg.SessionID, msg.Action)
	if err != nil {
		return err
	}
	if msg.View != nil {
		*msg.View = view
	}
	c.telemetry.Record(ctx, commandEvent("onboarding"), map[string]any{
		"session_id": msg.SessionID,
		"action":     string(msg.Action),
		"finished":   view == nil,
	})
	return nil
}

// ModalInput opens or closes one of the named dialogs.
type ModalInput struct {
	SessionID string `json:"session_id"`
	Modal     string `json:"modal"`
	// Subject is the conversation id for the feedback dialog.
	Subject int `json:"subject,omitempty"`
}

type modalOpener interface {
	OpenModal(ctx context.Context, id, modal string, subject int) error
}

type modalCloser interface {
	CloseModal(ctx context.Context, id, modal string) error
}

// OpenModalCommand opens a dialog with its blank draft.
type OpenModalCommand struct {
	service   modalOpener
	telemetry Telemetry
}

// NewOpenModalCommand creates the command.
func NewOpenModalCommand(service modalOpener, telemetry Telemetry) *OpenModalCommand {
	return &OpenModalCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ModalInput] = (*OpenModalCommand)(nil)

func (c *OpenModalCommand) Execute(ctx context.Context, msg ModalInput) error {
	if c.service == nil {
		return errors.New("open modal command requires service")
	}
	if err := c.service.OpenModal(ctx, msg.SessionID, msg.Modal, msg.Subject); err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("modal_open"), map[string]any{
		"session_id": msg.SessionID,
		"modal":      msg.Modal,
	})
	return nil
}

// CloseModalCommand discards a dialog draft.
type CloseModalCommand struct {
	service   modalCloser
	telemetry Telemetry
}

// NewCloseModalCommand creates the command.
func NewCloseModalCommand(service modalCloser, telemetry Telemetry) *CloseModalCommand {
	return &CloseModalCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[ModalInput] = (*CloseModalCommand)(nil)

func (c *CloseModalCommand) Execute(ctx context.Context, msg ModalInput) error {
	if c.service == nil {
		return errors.New("close modal command requires service")
	}
	if err := c.service.CloseModal(ctx, msg.SessionID, msg.Modal); err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("modal_close"), map[string]any{
		"session_id": msg.SessionID,
		"modal":      msg.Modal,
	})
	return nil
}
