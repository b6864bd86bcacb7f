package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type pageBuilder interface {
	Page(ctx context.Context, sessionID string, route Route) (PageView, error)
}

type navigator interface {
	Navigate(ctx context.Context, sessionID string, route Route) (PageView, error)
}

// ControllerOptions wires the controller collaborators.
type ControllerOptions struct {
	Service  pageBuilder
	Renderer Renderer
	// AssetsPath is where the page script/style bundle is mounted.
	AssetsPath string
	// BasePath prefixes every link and form action.
	BasePath string
}

// Controller renders dashboard pages through a template renderer.
type Controller struct {
	service    pageBuilder
	renderer   Renderer
	assetsPath string
	basePath   string
}

// NewController builds a controller.
func NewController(opts ControllerOptions) *Controller {
	return &Controller{
		service:    opts.Service,
		renderer:   opts.Renderer,
		assetsPath: opts.AssetsPath,
		basePath:   opts.BasePath,
	}
}

// RenderPage renders route for the session into out. flash carries one-off
// values such as form errors or a support ticket reference.
func (c *Controller) RenderPage(ctx context.Context, sessionID string, route Route, out io.Writer, flash map[string]any) error {
	if c.service == nil || c.renderer == nil {
		return errors.New("dashboard: controller requires service and renderer")
	}
	return c.render(ctx, c.service.Page, sessionID, route, out, flash)
}

// RenderNavigation renders route as the target of a nav link, which closes
// the mobile sidebar when the service supports it.
func (c *Controller) RenderNavigation(ctx context.Context, sessionID string, route Route, out io.Writer) error {
	if c.service == nil || c.renderer == nil {
		return errors.New("dashboard: controller requires service and renderer")
	}
	build := c.service.Page
	if nav, ok := c.service.(navigator); ok {
		build = nav.Navigate
	}
	return c.render(ctx, build, sessionID, route, out, nil)
}

func (c *Controller) render(ctx context.Context, build func(context.Context, string, Route) (PageView, error), sessionID string, route Route, out io.Writer, flash map[string]any) error {
	view, err := build(ctx, sessionID, route)
	if err != nil {
		return err
	}
	data, err := c.templateData(view, flash)
	if err != nil {
		return err
	}
	spec, _ := RouteFor(route)
	if _, err := c.renderer.Render(spec.Template, data, out); err != nil {
		return fmt.Errorf("dashboard: render %s: %w", route, err)
	}
	return nil
}

// PagePayload returns the view model as plain JSON-shaped data.
func (c *Controller) PagePayload(ctx context.Context, sessionID string, route Route) (map[string]any, error) {
	if c.service == nil {
		return nil, errors.New("dashboard: controller requires service")
	}
	view, err := c.service.Page(ctx, sessionID, route)
	if err != nil {
		return nil, err
	}
	return c.templateData(view, nil)
}

func (c *Controller) templateData(view PageView, flash map[string]any) (map[string]any, error) {
	data, err := toTemplateMap(view)
	if err != nil {
		return nil, err
	}
	if view.Theme != nil {
		data["theme"] = map[string]any{
			"name":     view.Theme.Name,
			"variant":  view.Theme.Variant,
			"css":      view.Theme.CSSVariablesInline(),
			"dark_css": view.Theme.DarkVariables(),
			"chart":    view.Theme.ChartTheme,
		}
	}
	data["base_path"] = c.basePath
	data["assets_path"] = c.assetsPath
	if len(flash) > 0 {
		data["flash"] = flash
	}
	return data, nil
}

// toTemplateMap flattens structs into maps keyed by their json names so
// templates see the same field names as the JSON API. Whole numbers stay
// integers in the payload. go-template decodes the payload again before
// rendering, so templates still pass ids through the integer filter.
func toTemplateMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("dashboard: encode template data: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("dashboard: decode template data: %w", err)
	}
	for k, val := range out {
		out[k] = restoreNumbers(val)
	}
	return out, nil
}

func restoreNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, val := range t {
			t[k] = restoreNumbers(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = restoreNumbers(val)
		}
		return t
	}
	return v
}
