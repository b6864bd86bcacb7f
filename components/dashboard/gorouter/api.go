package gorouter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-persona-dashboard/components/dashboard"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/commands"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/httpapi"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/queries"
)

// sessionHandler is a JSON endpoint that runs inside a resolved session.
type sessionHandler func(ctx router.Context, sessionID string) error

func (h *handlers) withSession(next sessionHandler) router.HandlerFunc {
	return router.WrapHandler(func(ctx router.Context) error {
		sess, err := h.sessions.bind(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		return next(ctx, sess.ID)
	})
}

func registerAPI(r registrar, h *handlers) {
	base := h.routes.API
	api := h.api

	if h.readers != nil {
		registerReadAPI(r, h)
	}

	r.Post(base+"/conversations/:id/select", h.withSession(func(ctx router.Context, sessionID string) error {
		id, err := paramID(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		if err := api.SelectConversation(ctx.Context(), commands.SelectConversationInput{SessionID: sessionID, ConversationID: id}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"status": "selected", "conversation_id": id})
	}))

	r.Post(base+"/conversations/:id/feedback", h.withSession(func(ctx router.Context, sessionID string) error {
		id, err := paramID(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		var form dashboard.FeedbackForm
		if err := decodeBody(ctx, &form); err != nil {
			return respondError(ctx, err)
		}
		form.ConversationID = id
		if err := api.SubmitFeedback(ctx.Context(), commands.SubmitFeedbackInput{SessionID: sessionID, Form: form}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "submitted"})
	}))

	r.Post(base+"/conversations/:id/react", h.withSession(func(ctx router.Context, sessionID string) error {
		id, err := paramID(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		var payload struct {
			Helpful bool `json:"helpful"`
		}
		if err := decodeBody(ctx, &payload); err != nil {
			return respondError(ctx, err)
		}
		input := commands.ReactInput{SessionID: sessionID, ConversationID: id, Helpful: payload.Helpful}
		if err := api.React(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"status": "recorded", "conversation_id": id})
	}))

	r.Post(base+"/faqs/:id/toggle", h.withSession(func(ctx router.Context, sessionID string) error {
		id, err := paramID(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		if err := api.ToggleFAQ(ctx.Context(), commands.ToggleFAQInput{SessionID: sessionID, FAQID: id}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"status": "toggled", "faq_id": id})
	}))

	r.Post(base+"/billing/subscription", h.withSession(func(ctx router.Context, sessionID string) error {
		var payload commands.SubscriptionInput
		if err := decodeBody(ctx, &payload); err != nil {
			return respondError(ctx, err)
		}
		payload.SessionID = sessionID
		if err := api.Subscription(ctx.Context(), payload); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusAccepted, map[string]string{"status": "queued", "action": payload.Action})
	}))

	r.Post(base+"/billing/invoices/:id/download", h.withSession(func(ctx router.Context, sessionID string) error {
		id, err := paramID(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		if err := api.DownloadInvoice(ctx.Context(), commands.InvoiceInput{SessionID: sessionID, InvoiceID: id}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusAccepted, map[string]any{"status": "queued", "invoice_id": id})
	}))

	r.Post(base+"/session/reset", h.withSession(func(ctx router.Context, sessionID string) error {
		if err := api.ResetSession(ctx.Context(), commands.ResetSessionInput{SessionID: sessionID}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "reset"})
	}))

	r.Post(base+"/notifications/read-all", h.withSession(func(ctx router.Context, sessionID string) error {
		if err := api.MarkAllRead(ctx.Context(), commands.NotificationInput{SessionID: sessionID}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "read"})
	}))

	r.Post(base+"/notifications/:id/read", h.withSession(func(ctx router.Context, sessionID string) error {
		id, err := paramID(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		if err := api.MarkRead(ctx.Context(), commands.NotificationInput{SessionID: sessionID, NotificationID: id}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"status": "read", "notification_id": id})
	}))

	r.Delete(base+"/notifications/:id", h.withSession(func(ctx router.Context, sessionID string) error {
		id, err := paramID(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		if err := api.DeleteNotification(ctx.Context(), commands.NotificationInput{SessionID: sessionID, NotificationID: id}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"status": "deleted", "notification_id": id})
	}))

	r.Patch(base+"/settings", h.withSession(func(ctx router.Context, sessionID string) error {
		var patch map[string]map[string]any
		if err := decodeBody(ctx, &patch); err != nil {
			return respondError(ctx, err)
		}
		if err := api.PatchSettings(ctx.Context(), commands.PatchSettingsInput{SessionID: sessionID, Settings: patch}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "updated"})
	}))

	r.Post(base+"/settings/save", h.withSession(func(ctx router.Context, sessionID string) error {
		if err := api.SaveSettings(ctx.Context(), commands.SaveSettingsInput{SessionID: sessionID}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "saved"})
	}))

	r.Post(base+"/support", h.withSession(func(ctx router.Context, sessionID string) error {
		req := dashboard.NewSupportRequest()
		if err := decodeBody(ctx, &req); err != nil {
			return respondError(ctx, err)
		}
		var ticket string
		if err := api.SubmitSupport(ctx.Context(), commands.SubmitSupportInput{SessionID: sessionID, Request: req, Ticket: &ticket}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, map[string]string{"status": "submitted", "ticket": ticket})
	}))

	r.Post(base+"/billing/plan", h.withSession(func(ctx router.Context, sessionID string) error {
		var payload commands.SelectPlanInput
		if err := decodeBody(ctx, &payload); err != nil {
			return respondError(ctx, err)
		}
		payload.SessionID = sessionID
		if err := api.SelectPlan(ctx.Context(), payload); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "selected", "plan_id": payload.PlanID})
	}))

	r.Post(base+"/billing/payment", h.withSession(func(ctx router.Context, sessionID string) error {
		var form dashboard.PaymentForm
		if err := decodeBody(ctx, &form); err != nil {
			return respondError(ctx, err)
		}
		if err := api.SubmitPayment(ctx.Context(), commands.SubmitPaymentInput{SessionID: sessionID, Form: form}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "updated"})
	}))

	for _, action := range []dashboard.OnboardingAction{
		dashboard.OnboardingNext,
		dashboard.OnboardingPrevious,
		dashboard.OnboardingSkip,
		dashboard.OnboardingStart,
	} {
		r.Post(base+"/onboarding/"+string(action), h.withSession(func(ctx router.Context, sessionID string) error {
			var view *dashboard.OnboardingView
			if err := api.Onboarding(ctx.Context(), commands.OnboardingInput{SessionID: sessionID, Action: action, View: &view}); err != nil {
				return respondError(ctx, err)
			}
			return ctx.JSON(http.StatusOK, map[string]any{"onboarding": view, "completed": view == nil})
		}))
	}
}

func registerReadAPI(r registrar, h *handlers) {
	base := h.routes.API
	readers := h.readers

	r.Get(base+"/personas", h.withSession(func(ctx router.Context, sessionID string) error {
		groups, err := readers.Personas.Query(ctx.Context(), queries.PersonasInput{
			SessionID:      sessionID,
			Search:         ctx.Query("q"),
			Provider:       ctx.Query("provider"),
			Specialization: ctx.Query("specialization"),
		})
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"groups": groups})
	}))

	r.Get(base+"/conversations", h.withSession(func(ctx router.Context, sessionID string) error {
		list, err := readers.Conversations.Query(ctx.Context(), queries.ConversationsInput{SessionID: sessionID, Search: ctx.Query("q")})
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"conversations": list})
	}))

	r.Get(base+"/notifications", h.withSession(func(ctx router.Context, sessionID string) error {
		items, err := readers.Notifications.Query(ctx.Context(), queries.NotificationsInput{SessionID: sessionID, Category: ctx.Query("category")})
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"notifications": items})
	}))

	r.Get(base+"/settings", h.withSession(func(ctx router.Context, sessionID string) error {
		settings, err := readers.Settings.Query(ctx.Context(), queries.SettingsInput{SessionID: sessionID})
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"settings": settings})
	}))

	r.Get(base+"/faqs", h.withSession(func(ctx router.Context, sessionID string) error {
		faqs, err := readers.FAQs.Query(ctx.Context(), queries.FAQsInput{
			SessionID: sessionID,
			Search:    ctx.Query("q"),
			Category:  ctx.Query("category"),
		})
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"faqs": faqs})
	}))

	r.Get(base+"/pages/:route", h.withSession(func(ctx router.Context, sessionID string) error {
		view, err := readers.Page.Query(ctx.Context(), queries.PageInput{SessionID: sessionID, Route: dashboard.Route(ctx.Param("route"))})
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, view)
	}))
}

// eventPollWindow bounds how long an SSE request waits for the first event.
// Browsers reconnect through EventSource after each response.
const eventPollWindow = 25 * time.Second

func registerEvents(r registrar, h *handlers) {
	hook := h.broadcast

	r.Get(h.routes.Events, h.withSession(func(ctx router.Context, sessionID string) error {
		events, cancel := hook.Subscribe(sessionID)
		defer cancel()

		payload := []byte("retry: 1000\n\n")
		timer := time.NewTimer(eventPollWindow)
		defer timer.Stop()
		select {
		case event := <-events:
			frame, err := dashboard.EncodeSSE(event)
			if err != nil {
				return respondError(ctx, err)
			}
			payload = append(payload, frame...)
			payload = append(payload, drain(events)...)
		case <-timer.C:
		case <-ctx.Context().Done():
			return nil
		}
		ctx.SetHeader("Content-Type", "text/event-stream")
		ctx.SetHeader("Cache-Control", "no-cache")
		return ctx.Send(payload)
	}))

	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(h.routes.WebSocket, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe(ws.Query("session"))
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func drain(events <-chan dashboard.SessionEvent) []byte {
	var out []byte
	for {
		select {
		case event := <-events:
			frame, err := dashboard.EncodeSSE(event)
			if err != nil {
				continue
			}
			out = append(out, frame...)
		default:
			return out
		}
	}
}

func paramID(ctx router.Context) (int, error) {
	raw := ctx.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", httpapi.ErrBadPayload, raw)
	}
	return id, nil
}

func decodeBody(ctx router.Context, v any) error {
	if err := json.Unmarshal(ctx.Body(), v); err != nil {
		return fmt.Errorf("%w: %v", httpapi.ErrBadPayload, err)
	}
	return nil
}
