package gorouter

import (
	"bytes"
	"context"
	"errors"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-persona-dashboard/components/dashboard"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/commands"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/httpapi"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/queries"
)

// SessionOpener resolves or creates the viewer session.
type SessionOpener interface {
	OpenSession(ctx context.Context, id string) (*dashboard.Session, bool, error)
}

// Config wires go-router with the dashboard controller, commands and hooks.
type Config[T any] struct {
	Router     router.Router[T]
	Controller *dashboard.Controller
	Sessions   SessionOpener
	API        httpapi.Executor
	Readers    *httpapi.Readers
	Broadcast  *dashboard.BroadcastHook
	BasePath   string
	CookieName string
	Routes     RouteConfig
}

// RouteConfig customizes the relative paths of the non-page endpoints.
type RouteConfig struct {
	Actions   string
	API       string
	Export    string
	Events    string
	WebSocket string
}

// registrar is the subset of router.Router used for registration.
type registrar interface {
	Get(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Post(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Patch(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	Delete(path string, handler router.HandlerFunc, mw ...router.MiddlewareFunc) router.RouteInfo
	WebSocket(path string, cfg router.WebSocketConfig, handler func(router.WebSocketContext) error) router.RouteInfo
}

// Register mounts pages, form actions, the JSON API and the event streams.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	if cfg.Sessions == nil {
		return errors.New("gorouter: sessions are required")
	}
	var r registrar = cfg.Router
	if cfg.BasePath != "" {
		r = cfg.Router.Group(cfg.BasePath)
	}
	mount(r, cfg.handlers())
	return nil
}

type handlers struct {
	controller *dashboard.Controller
	api        httpapi.Executor
	readers    *httpapi.Readers
	broadcast  *dashboard.BroadcastHook
	sessions   sessionResolver
	basePath   string
	routes     RouteConfig
}

func (cfg Config[T]) handlers() *handlers {
	return &handlers{
		controller: cfg.Controller,
		api:        cfg.API,
		readers:    cfg.Readers,
		broadcast:  cfg.Broadcast,
		sessions:   newSessionResolver(cfg.Sessions, cfg.CookieName, cfg.BasePath),
		basePath:   strings.TrimSuffix(cfg.BasePath, "/"),
		routes:     defaultRouteConfig(cfg.Routes),
	}
}

func mount(r registrar, h *handlers) {
	for _, spec := range dashboard.Routes() {
		r.Get(spec.Path, router.WrapHandler(h.page(spec.Route)))
	}
	if h.api != nil {
		registerActions(r, h)
		registerAPI(r, h)
	}
	if h.readers != nil {
		r.Get(h.routes.Export, router.WrapHandler(h.export))
	}
	if h.broadcast != nil {
		registerEvents(r, h)
	}
}

// page renders a dashboard page. GET filters (search boxes, dropdowns and
// category links) are applied before rendering. A GET that follows a form
// redirect shows the stored flash; any other GET is a nav link click.
func (h *handlers) page(route dashboard.Route) func(router.Context) error {
	return func(ctx router.Context) error {
		sess, err := h.sessions.bind(ctx)
		if err != nil {
			return respondError(ctx, err)
		}
		if err := h.applyFilters(ctx, sess.ID, route); err != nil {
			return h.renderPage(ctx, sess.ID, route, map[string]any{"error": err.Error()})
		}
		if flash, ok := sess.TakeFlash(); ok {
			return h.renderPage(ctx, sess.ID, route, flash)
		}
		var buf bytes.Buffer
		if err := h.controller.RenderNavigation(ctx.Context(), sess.ID, route, &buf); err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}
}

func (h *handlers) applyFilters(ctx router.Context, sessionID string, route dashboard.Route) error {
	if h.api == nil {
		return nil
	}
	c := ctx.Context()
	applied := ctx.Query("filter") != ""
	switch route {
	case dashboard.RoutePersonas:
		if applied {
			return h.api.FilterPersonas(c, commands.FilterPersonasInput{
				SessionID:      sessionID,
				Search:         ctx.Query("q"),
				Provider:       ctx.Query("provider"),
				Specialization: ctx.Query("specialization"),
			})
		}
	case dashboard.RouteConversations:
		if applied {
			return h.api.SearchConversations(c, commands.SearchConversationsInput{SessionID: sessionID, Search: ctx.Query("q")})
		}
	case dashboard.RouteHelp:
		if applied {
			return h.api.SearchFAQs(c, commands.SearchFAQsInput{
				SessionID: sessionID,
				Search:    ctx.Query("q"),
				Category:  ctx.Query("category"),
			})
		}
	case dashboard.RouteNotifications:
		if category := ctx.Query("category"); category != "" && h.readers != nil {
			_, err := h.readers.Notifications.Query(c, queries.NotificationsInput{SessionID: sessionID, Category: category})
			return err
		}
	}
	return nil
}

func (h *handlers) renderPage(ctx router.Context, sessionID string, route dashboard.Route, flash map[string]any) error {
	var buf bytes.Buffer
	if err := h.controller.RenderPage(ctx.Context(), sessionID, route, &buf, flash); err != nil {
		return respondError(ctx, err)
	}
	ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.Send(buf.Bytes())
}

func (h *handlers) export(ctx router.Context) error {
	sess, err := h.sessions.bind(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	result, err := h.readers.Export.Query(ctx.Context(), queries.ExportInput{
		SessionID: sess.ID,
		Format:    ctx.Query("format"),
	})
	if err != nil {
		return respondError(ctx, err)
	}
	ctx.SetHeader("Content-Type", result.ContentType)
	ctx.SetHeader("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	return ctx.Send(result.Body)
}

func respondError(ctx router.Context, err error) error {
	return ctx.JSON(httpapi.StatusFor(err), map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Actions == "" {
		routes.Actions = "/actions"
	}
	if routes.API == "" {
		routes.API = "/api"
	}
	if routes.Export == "" {
		routes.Export = "/export"
	}
	if routes.Events == "" {
		routes.Events = routes.API + "/events"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = routes.API + "/ws"
	}
	return routes
}
