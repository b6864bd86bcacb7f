package dashboard

import (
	"bytes"
	"context"
	"strings"
	"testing"

	core "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

func TestFacadeRendersDashboardPage(t *testing.T) {
	service := NewService(Options{})
	sess, _, err := service.OpenSession(context.Background(), "")
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	controller, err := NewController(ControllerOptions{Service: service})
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	var buf bytes.Buffer
	if err := controller.RenderPage(context.Background(), sess.ID, core.RouteDashboard, &buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), core.AppTitle) {
		t.Fatalf("expected app title in output")
	}
}
