package dashboard

import (
	core "github.com/goliatone/go-persona-dashboard/components/dashboard"
)

// Service exposes the underlying components/dashboard.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// Controller renders dashboard pages.
type Controller = core.Controller

// ControllerOptions re-export for convenience.
type ControllerOptions = core.ControllerOptions

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// NewController proxies to the internal constructor, defaulting to the
// embedded page templates when no renderer is set.
func NewController(opts ControllerOptions) (*Controller, error) {
	if opts.Renderer == nil {
		renderer, err := core.NewTemplateRenderer()
		if err != nil {
			return nil, err
		}
		opts.Renderer = renderer
	}
	return core.NewController(opts), nil
}
