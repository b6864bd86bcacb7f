package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// NotificationInput targets one notification. The all-read action ignores
// NotificationID.
type NotificationInput struct {
	SessionID      string `json:"session_id"`
	NotificationID int    `json:"notification_id"`
}

type notificationReader interface {
	MarkNotificationRead(ctx context.Context, id string, notificationID int) error
}

type notificationBulkReader interface {
	MarkAllNotificationsRead(ctx context.Context, id string) ([]int, error)
}

type notificationDeleter interface {
	DeleteNotification(ctx context.Context, id string, notificationID int) (bool, error)
}

// MarkReadCommand flips a single notification to read.
type MarkReadCommand struct {
	service   notificationReader
	telemetry Telemetry
}

// NewMarkReadCommand creates the command.
func NewMarkReadCommand(service notificationReader, telemetry Telemetry) *MarkReadCommand {
	return &MarkReadCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[NotificationInput] = (*MarkReadCommand)(nil)

func (c *MarkReadCommand) Execute(ctx context.Context, msg NotificationInput) error {
	if c.service == nil {
		return errors.New("mark read command requires service")
	}
	if err := c.service.MarkNotificationRead(ctx, msg.SessionID, msg.NotificationID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("notification_read"), map[string]any{
		"session_id":      msg.SessionID,
		"notification_id": msg.NotificationID,
	})
	return nil
}

// MarkAllReadCommand clears the unread badge.
type MarkAllReadCommand struct {
	service   notificationBulkReader
	telemetry Telemetry
}

// NewMarkAllReadCommand creates the command.
func NewMarkAllReadCommand(service notificationBulkReader, telemetry Telemetry) *MarkAllReadCommand {
	return &MarkAllReadCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[NotificationInput] = (*MarkAllReadCommand)(nil)

func (c *MarkAllReadCommand) Execute(ctx context.Context, msg NotificationInput) error {
	if c.service == nil {
		return errors.New("mark all read command requires service")
	}
	flipped, err := c.service.MarkAllNotificationsRead(ctx, msg.SessionID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("notification_read_all"), map[string]any{
		"session_id": msg.SessionID,
		"flipped":    len(flipped),
	})
	return nil
}

// DeleteNotificationCommand removes a notification from the inbox.
type DeleteNotificationCommand struct {
	service   notificationDeleter
	telemetry Telemetry
}

// NewDeleteNotificationCommand creates the command.
func NewDeleteNotificationCommand(service notificationDeleter, telemetry Telemetry) *DeleteNotificationCommand {
	return &DeleteNotificationCommand{service: service, telemetry: normalizeTelemetry(telemetry)}
}

var _ gocommand.Commander[NotificationInput] = (*DeleteNotificationCommand)(nil)

// Execute treats unknown ids as already deleted.
func (c *DeleteNotificationCommand) Execute(ctx context.Context, msg NotificationInput) error {
	if c.service == nil {
		return errors.New("delete notification command requires service")
	}
	removed, err := c.service.DeleteNotification(ctx, msg.SessionID, msg.NotificationID)
	if err != nil {
		return err
	}
	c.telemetry.Record(ctx, commandEvent("notification_delete"), map[string]any{
		"session_id":      msg.SessionID,
		"notification_id": msg.NotificationID,
		"removed":         removed,
	})
	return nil
}
