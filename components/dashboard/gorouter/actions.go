package gorouter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-persona-dashboard/components/dashboard"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/commands"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/httpapi"
)

// formAction runs one POSTed form. The browser is redirected to the page
// named by the hidden "return" field, which shows the outcome as a flash.
type formAction func(ctx context.Context, sessionID string, form url.Values) (string, error)

func registerActions(r registrar, h *handlers) {
	base := h.routes.Actions
	post := func(path string, fallback dashboard.Route, run formAction) {
		r.Post(base+path, router.WrapHandler(h.form(fallback, run)))
	}
	api := h.api

	post("/sidebar", dashboard.RouteDashboard, func(ctx context.Context, id string, _ url.Values) (string, error) {
		return "", api.ToggleSidebar(ctx, commands.ToggleSidebarInput{SessionID: id})
	})
	post("/onboarding", dashboard.RouteDashboard, func(ctx context.Context, id string, form url.Values) (string, error) {
		action := dashboard.OnboardingAction(form.Get("action"))
		return "", api.Onboarding(ctx, commands.OnboardingInput{SessionID: id, Action: action})
	})
	post("/onboarding/start", dashboard.RouteDashboard, func(ctx context.Context, id string, _ url.Values) (string, error) {
		return "", api.Onboarding(ctx, commands.OnboardingInput{SessionID: id, Action: dashboard.OnboardingStart})
	})

	post("/modal/open", dashboard.RouteDashboard, func(ctx context.Context, id string, form url.Values) (string, error) {
		subject, err := optionalInt(form, "subject")
		if err != nil {
			return "", err
		}
		return "", api.OpenModal(ctx, commands.ModalInput{SessionID: id, Modal: form.Get("modal"), Subject: subject})
	})
	post("/modal/close", dashboard.RouteDashboard, func(ctx context.Context, id string, form url.Values) (string, error) {
		return "", api.CloseModal(ctx, commands.ModalInput{SessionID: id, Modal: form.Get("modal")})
	})

	post("/conversations/select", dashboard.RouteConversations, func(ctx context.Context, id string, form url.Values) (string, error) {
		conversationID, err := requiredInt(form, "id")
		if err != nil {
			return "", err
		}
		return "", api.SelectConversation(ctx, commands.SelectConversationInput{SessionID: id, ConversationID: conversationID})
	})
	post("/conversations/react", dashboard.RouteConversations, func(ctx context.Context, id string, form url.Values) (string, error) {
		conversationID, err := requiredInt(form, "id")
		if err != nil {
			return "", err
		}
		helpful, err := strconv.ParseBool(form.Get("helpful"))
		if err != nil {
			return "", fmt.Errorf("%w: helpful must be true or false", httpapi.ErrBadPayload)
		}
		input := commands.ReactInput{SessionID: id, ConversationID: conversationID, Helpful: helpful}
		return "Thanks for the feedback", api.React(ctx, input)
	})
	post("/conversations/feedback", dashboard.RouteConversations, func(ctx context.Context, id string, form url.Values) (string, error) {
		conversationID, err := requiredInt(form, "conversation_id")
		if err != nil {
			return "", err
		}
		// A missing rating is reported by validation, not as a bad payload.
		rating, _ := strconv.Atoi(form.Get("rating"))
		input := commands.SubmitFeedbackInput{SessionID: id, Form: dashboard.FeedbackForm{
			ConversationID: conversationID,
			Rating:         rating,
			Feedback:       form.Get("feedback"),
		}}
		return "Feedback submitted", api.SubmitFeedback(ctx, input)
	})

	post("/settings/update", dashboard.RouteSettings, func(ctx context.Context, id string, form url.Values) (string, error) {
		return "", api.UpdateSetting(ctx, commands.UpdateSettingInput{
			SessionID: id,
			Category:  form.Get("category"),
			Key:       form.Get("key"),
			Value:     form.Get("value"),
		})
	})
	post("/settings/save", dashboard.RouteSettings, func(ctx context.Context, id string, _ url.Values) (string, error) {
		return "Settings saved", api.SaveSettings(ctx, commands.SaveSettingsInput{SessionID: id})
	})
	post("/session/reset", dashboard.RouteSettings, func(ctx context.Context, id string, _ url.Values) (string, error) {
		return "Settings restored to defaults", api.ResetSession(ctx, commands.ResetSessionInput{SessionID: id})
	})

	post("/billing/plan", dashboard.RouteBilling, func(ctx context.Context, id string, form url.Values) (string, error) {
		return "", api.SelectPlan(ctx, commands.SelectPlanInput{SessionID: id, PlanID: form.Get("plan")})
	})
	post("/billing/subscription", dashboard.RouteBilling, func(ctx context.Context, id string, form url.Values) (string, error) {
		action := form.Get("action")
		return "Subscription request received", api.Subscription(ctx, commands.SubscriptionInput{SessionID: id, Action: action})
	})
	post("/billing/invoice", dashboard.RouteBilling, func(ctx context.Context, id string, form url.Values) (string, error) {
		invoiceID, err := requiredInt(form, "id")
		if err != nil {
			return "", err
		}
		return "Invoice download started", api.DownloadInvoice(ctx, commands.InvoiceInput{SessionID: id, InvoiceID: invoiceID})
	})
	post("/billing/payment", dashboard.RouteBilling, func(ctx context.Context, id string, form url.Values) (string, error) {
		input := commands.SubmitPaymentInput{SessionID: id, Form: dashboard.PaymentForm{
			NameOnCard: form.Get("name_on_card"),
			CardNumber: form.Get("card_number"),
			Expiry:     form.Get("expiry"),
			CVV:        form.Get("cvv"),
		}}
		return "Payment method updated", api.SubmitPayment(ctx, input)
	})

	post("/help/toggle", dashboard.RouteHelp, func(ctx context.Context, id string, form url.Values) (string, error) {
		faqID, err := requiredInt(form, "id")
		if err != nil {
			return "", err
		}
		return "", api.ToggleFAQ(ctx, commands.ToggleFAQInput{SessionID: id, FAQID: faqID})
	})
	post("/help/support", dashboard.RouteHelp, func(ctx context.Context, id string, form url.Values) (string, error) {
		var ticket string
		err := api.SubmitSupport(ctx, commands.SubmitSupportInput{
			SessionID: id,
			Request: dashboard.SupportRequest{
				Name:     form.Get("name"),
				Email:    form.Get("email"),
				Subject:  form.Get("subject"),
				Priority: form.Get("priority"),
				Message:  form.Get("message"),
			},
			Ticket: &ticket,
		})
		if err != nil {
			return "", err
		}
		return "Support request submitted. Ticket " + ticket, nil
	})

	post("/notifications/read", dashboard.RouteNotifications, func(ctx context.Context, id string, form url.Values) (string, error) {
		notificationID, err := requiredInt(form, "id")
		if err != nil {
			return "", err
		}
		return "", api.MarkRead(ctx, commands.NotificationInput{SessionID: id, NotificationID: notificationID})
	})
	post("/notifications/read-all", dashboard.RouteNotifications, func(ctx context.Context, id string, _ url.Values) (string, error) {
		return "", api.MarkAllRead(ctx, commands.NotificationInput{SessionID: id})
	})
	post("/notifications/delete", dashboard.RouteNotifications, func(ctx context.Context, id string, form url.Values) (string, error) {
		notificationID, err := requiredInt(form, "id")
		if err != nil {
			return "", err
		}
		return "", api.DeleteNotification(ctx, commands.NotificationInput{SessionID: id, NotificationID: notificationID})
	})
}

func (h *handlers) form(fallback dashboard.Route, run formAction) func(router.Context) error {
	return func(ctx router.Context) error {
		sess, err := h.sessions.bind(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		form, err := url.ParseQuery(string(ctx.Body()))
		if err != nil {
			sess.SetFlash(flashError(fmt.Errorf("%w: %v", httpapi.ErrBadPayload, err)))
			return h.redirect(ctx, fallback)
		}
		route := returnRoute(form, fallback)
		message, err := run(ctx.Context(), sess.ID, form)
		// A session reset swaps the stored session.
		if current, _, openErr := h.sessions.opener.OpenSession(ctx.Context(), sess.ID); openErr == nil && current.ID == sess.ID {
			sess = current
		}
		switch {
		case err != nil:
			sess.SetFlash(flashError(err))
		case message != "":
			sess.SetFlash(map[string]any{"message": message})
		default:
			sess.SetFlash(nil)
		}
		return h.redirect(ctx, route)
	}
}

// redirect answers a form post with 303 See Other so reloading the page
// does not resubmit the form.
func (h *handlers) redirect(ctx router.Context, route dashboard.Route) error {
	spec, _ := dashboard.RouteFor(route)
	return ctx.Redirect(h.basePath+spec.Path, http.StatusSeeOther)
}

func returnRoute(form url.Values, fallback dashboard.Route) dashboard.Route {
	route := dashboard.Route(form.Get("return"))
	if _, ok := dashboard.RouteFor(route); ok {
		return route
	}
	return fallback
}

func flashError(err error) map[string]any {
	msg := strings.TrimPrefix(err.Error(), "dashboard: ")
	return map[string]any{"error": msg}
}

func requiredInt(form url.Values, key string) (int, error) {
	raw := strings.TrimSpace(form.Get(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", httpapi.ErrBadPayload, key, raw)
	}
	return n, nil
}

func optionalInt(form url.Values, key string) (int, error) {
	if strings.TrimSpace(form.Get(key)) == "" {
		return 0, nil
	}
	return requiredInt(form, key)
}
