package dashboard

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	template "github.com/goliatone/go-template"
)

// Renderer describes the template renderer contract needed by the controller.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

//go:embed templates/*.html templates/**/*.html
var embeddedTemplates embed.FS

// NewTemplateRenderer creates a go-template renderer over the embedded page
// templates. Every routed page must have a template. Nothing is read from the
// working directory.
func NewTemplateRenderer() (Renderer, error) {
	fsys, err := pageTemplates()
	if err != nil {
		return nil, err
	}
	if err := checkPageTemplates(fsys); err != nil {
		return nil, err
	}
	return template.NewRenderer(
		template.WithFS(fsys),
		template.WithExtension(".html"),
	)
}

func pageTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("dashboard: embedded templates: %w", err)
	}
	return sub, nil
}

func checkPageTemplates(fsys fs.FS) error {
	for _, spec := range routeTable {
		if _, err := fs.Stat(fsys, spec.Template); err != nil {
			return fmt.Errorf("dashboard: template for %s: %w", spec.Route, err)
		}
	}
	return nil
}
