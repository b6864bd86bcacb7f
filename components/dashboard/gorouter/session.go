package gorouter

import (
	"net/http"
	"strings"

	router "github.com/goliatone/go-router"

	"github.com/goliatone/go-persona-dashboard/components/dashboard"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/httpapi"
)

type sessionResolver struct {
	opener SessionOpener
	cookie string
	path   string
}

func newSessionResolver(opener SessionOpener, cookie, basePath string) sessionResolver {
	if cookie == "" {
		cookie = httpapi.DefaultSessionCookie
	}
	path := basePath
	if path == "" {
		path = "/"
	}
	return sessionResolver{opener: opener, cookie: cookie, path: path}
}

// bind resolves the caller's session, creating one and setting the cookie
// when the request carries none or an expired one. The request context is
// tagged with the session id for telemetry.
func (s sessionResolver) bind(ctx router.Context) (*dashboard.Session, error) {
	id := requestSessionID(ctx, s.cookie)
	sess, created, err := s.opener.OpenSession(ctx.Context(), id)
	if err != nil {
		return nil, err
	}
	if created {
		cookie := &http.Cookie{
			Name:     s.cookie,
			Value:    sess.ID,
			Path:     s.path,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		}
		ctx.SetHeader("Set-Cookie", cookie.String())
		ctx.SetHeader(httpapi.SessionHeader, sess.ID)
	}
	ctx.SetContext(dashboard.ContextWithActivity(ctx.Context(), dashboard.ActivityContext{SessionID: sess.ID}))
	return sess, nil
}

func requestSessionID(ctx router.Context, name string) string {
	if id := strings.TrimSpace(ctx.Header(httpapi.SessionHeader)); id != "" {
		return id
	}
	raw := ctx.Header("Cookie")
	if raw == "" {
		return ""
	}
	cookies, err := http.ParseCookie(raw)
	if err != nil {
		return ""
	}
	for _, c := range cookies {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
