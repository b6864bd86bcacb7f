package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goliatone/go-persona-dashboard/components/dashboard"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/commands"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/queries"
)

// SessionHeader carries the session id for API clients that do not keep cookies.
const SessionHeader = "X-Session-ID"

// DefaultSessionCookie is the cookie that stores the session id.
const DefaultSessionCookie = "persona_session"

// Handlers exposes the JSON API as net/http handlers backed by shared
// commands and queries.
type Handlers struct {
	API     Executor
	Readers *Readers
	Events  *dashboard.BroadcastHook
	// CookieName overrides DefaultSessionCookie.
	CookieName string
}

// SessionID resolves the session from SessionHeader or the session cookie.
func (h *Handlers) SessionID(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(SessionHeader)); id != "" {
		return id
	}
	name := h.CookieName
	if name == "" {
		name = DefaultSessionCookie
	}
	if c, err := r.Cookie(name); err == nil {
		return c.Value
	}
	return ""
}

// Routes mounts every handler on a ServeMux. Paths are relative, so callers
// typically wrap the result in http.StripPrefix("/api", ...). Requests carry
// the session id as activity metadata for telemetry.
func (h *Handlers) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /personas", h.HandlePersonas)
	mux.HandleFunc("GET /conversations", h.HandleConversations)
	mux.HandleFunc("POST /conversations/{id}/select", h.HandleSelectConversation)
	mux.HandleFunc("POST /conversations/{id}/react", h.HandleReact)
	mux.HandleFunc("POST /conversations/{id}/feedback", h.HandleFeedback)
	mux.HandleFunc("GET /notifications", h.HandleNotifications)
	mux.HandleFunc("POST /notifications/read-all", h.HandleMarkAllRead)
	mux.HandleFunc("POST /notifications/{id}/read", h.HandleMarkRead)
	mux.HandleFunc("DELETE /notifications/{id}", h.HandleDeleteNotification)
	mux.HandleFunc("GET /settings", h.HandleSettings)
	mux.HandleFunc("PATCH /settings", h.HandlePatchSettings)
	mux.HandleFunc("POST /settings/save", h.HandleSaveSettings)
	mux.HandleFunc("GET /export", h.HandleExport)
	mux.HandleFunc("GET /faqs", h.HandleFAQs)
	mux.HandleFunc("POST /faqs/{id}/toggle", h.HandleToggleFAQ)
	mux.HandleFunc("POST /support", h.HandleSupport)
	mux.HandleFunc("POST /billing/plan", h.HandleSelectPlan)
	mux.HandleFunc("POST /billing/payment", h.HandlePayment)
	mux.HandleFunc("POST /billing/subscription", h.HandleSubscription)
	mux.HandleFunc("POST /billing/invoices/{id}/download", h.HandleInvoice)
	mux.HandleFunc("POST /onboarding/{action}", h.HandleOnboarding)
	mux.HandleFunc("POST /session/reset", h.HandleReset)
	if h.Events != nil {
		mux.HandleFunc("GET /events", h.HandleEvents)
		mux.HandleFunc("GET /ws", h.HandleWebSocket)
	}
	return h.withActivity(mux)
}

func (h *Handlers) withActivity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := h.SessionID(r); id != "" {
			r = r.WithContext(dashboard.ContextWithActivity(r.Context(), dashboard.ActivityContext{SessionID: id}))
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handlers) HandlePersonas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	groups, err := h.Readers.Personas.Query(r.Context(), queries.PersonasInput{
		SessionID:      h.SessionID(r),
		Search:         q.Get("q"),
		Provider:       q.Get("provider"),
		Specialization: q.Get("specialization"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"groups": groups})
}

func (h *Handlers) HandleConversations(w http.ResponseWriter, r *http.Request) {
	list, err := h.Readers.Conversations.Query(r.Context(), queries.ConversationsInput{
		SessionID: h.SessionID(r),
		Search:    r.URL.Query().Get("q"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"conversations": list})
}

func (h *Handlers) HandleSelectConversation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	input := commands.SelectConversationInput{SessionID: h.SessionID(r), ConversationID: id}
	if err := h.API.SelectConversation(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "selected", "conversation_id": id})
}

func (h *Handlers) HandleReact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var payload struct {
		Helpful bool `json:"helpful"`
	}
	if err := decode(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	input := commands.ReactInput{SessionID: h.SessionID(r), ConversationID: id, Helpful: payload.Helpful}
	if err := h.API.React(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "recorded"})
}

func (h *Handlers) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var form dashboard.FeedbackForm
	if err := decode(r, &form); err != nil {
		writeError(w, err)
		return
	}
	form.ConversationID = id
	if err := h.API.SubmitFeedback(r.Context(), commands.SubmitFeedbackInput{SessionID: h.SessionID(r), Form: form}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "submitted"})
}

func (h *Handlers) HandleNotifications(w http.ResponseWriter, r *http.Request) {
	items, err := h.Readers.Notifications.Query(r.Context(), queries.NotificationsInput{
		SessionID: h.SessionID(r),
		Category:  r.URL.Query().Get("category"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": items})
}

func (h *Handlers) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.API.MarkRead(r.Context(), commands.NotificationInput{SessionID: h.SessionID(r), NotificationID: id}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "read", "notification_id": id})
}

func (h *Handlers) HandleDeleteNotification(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.API.DeleteNotification(r.Context(), commands.NotificationInput{SessionID: h.SessionID(r), NotificationID: id}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.API.MarkAllRead(r.Context(), commands.NotificationInput{SessionID: h.SessionID(r)}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

func (h *Handlers) HandleSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Readers.Settings.Query(r.Context(), queries.SettingsInput{SessionID: h.SessionID(r)})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"settings": settings})
}

// HandlePatchSettings accepts {"display": {"theme": "dark"}} and returns the
// settings after the patch.
func (h *Handlers) HandlePatchSettings(w http.ResponseWriter, r *http.Request) {
	var patch map[string]map[string]any
	if err := decode(r, &patch); err != nil {
		writeError(w, err)
		return
	}
	sessionID := h.SessionID(r)
	if err := h.API.PatchSettings(r.Context(), commands.PatchSettingsInput{SessionID: sessionID, Settings: patch}); err != nil {
		writeError(w, err)
		return
	}
	h.HandleSettings(w, r)
}

func (h *Handlers) HandleSaveSettings(w http.ResponseWriter, r *http.Request) {
	if err := h.API.SaveSettings(r.Context(), commands.SaveSettingsInput{SessionID: h.SessionID(r)}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *Handlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	result, err := h.Readers.Export.Query(r.Context(), queries.ExportInput{
		SessionID: h.SessionID(r),
		Format:    r.URL.Query().Get("format"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Body)
}

func (h *Handlers) HandleFAQs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	faqs, err := h.Readers.FAQs.Query(r.Context(), queries.FAQsInput{
		SessionID: h.SessionID(r),
		Search:    q.Get("q"),
		Category:  q.Get("category"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"faqs": faqs})
}

func (h *Handlers) HandleToggleFAQ(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.API.ToggleFAQ(r.Context(), commands.ToggleFAQInput{SessionID: h.SessionID(r), FAQID: id}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "toggled", "faq_id": id})
}

func (h *Handlers) HandleSupport(w http.ResponseWriter, r *http.Request) {
	req := dashboard.NewSupportRequest()
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	var ticket string
	input := commands.SubmitSupportInput{SessionID: h.SessionID(r), Request: req, Ticket: &ticket}
	if err := h.API.SubmitSupport(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "submitted", "ticket": ticket})
}

func (h *Handlers) HandleSelectPlan(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		PlanID string `json:"plan_id"`
	}
	if err := decode(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.API.SelectPlan(r.Context(), commands.SelectPlanInput{SessionID: h.SessionID(r), PlanID: payload.PlanID}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "selected", "plan_id": payload.PlanID})
}

func (h *Handlers) HandlePayment(w http.ResponseWriter, r *http.Request) {
	var form dashboard.PaymentForm
	if err := decode(r, &form); err != nil {
		writeError(w, err)
		return
	}
	if err := h.API.SubmitPayment(r.Context(), commands.SubmitPaymentInput{SessionID: h.SessionID(r), Form: form}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handlers) HandleSubscription(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Action string `json:"action"`
	}
	if err := decode(r, &payload); err != nil {
		writeError(w, err)
		return
	}
	if err := h.API.Subscription(r.Context(), commands.SubscriptionInput{SessionID: h.SessionID(r), Action: payload.Action}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued", "action": payload.Action})
}

func (h *Handlers) HandleInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.API.DownloadInvoice(r.Context(), commands.InvoiceInput{SessionID: h.SessionID(r), InvoiceID: id}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"status": "queued", "invoice_id": id})
}

func (h *Handlers) HandleOnboarding(w http.ResponseWriter, r *http.Request) {
	action := dashboard.OnboardingAction(r.PathValue("action"))
	switch action {
	case dashboard.OnboardingNext, dashboard.OnboardingPrevious, dashboard.OnboardingSkip, dashboard.OnboardingStart:
	default:
		writeError(w, fmt.Errorf("%w: unknown onboarding action %q", ErrBadPayload, action))
		return
	}
	var view *dashboard.OnboardingView
	input := commands.OnboardingInput{SessionID: h.SessionID(r), Action: action, View: &view}
	if err := h.API.Onboarding(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"onboarding": view, "completed": view == nil})
}

func (h *Handlers) HandleReset(w http.ResponseWriter, r *http.Request) {
	if err := h.API.ResetSession(r.Context(), commands.ResetSessionInput{SessionID: h.SessionID(r)}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// HandleEvents streams session events as server-sent events.
func (h *Handlers) HandleEvents(w http.ResponseWriter, r *http.Request) {
	h.Events.ServeSSE(w, withSessionQuery(r, h.SessionID(r)))
}

// HandleWebSocket streams session events over a websocket.
func (h *Handlers) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	h.Events.ServeWebSocket(w, withSessionQuery(r, h.SessionID(r)))
}

func withSessionQuery(r *http.Request, sessionID string) *http.Request {
	q := r.URL.Query()
	if q.Get("session") != "" || sessionID == "" {
		return r
	}
	q.Set("session", sessionID)
	clone := r.Clone(r.Context())
	clone.URL.RawQuery = q.Encode()
	return clone
}

func pathID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", ErrBadPayload, raw)
	}
	return id, nil
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, StatusFor(err), map[string]string{"error": err.Error()})
}
