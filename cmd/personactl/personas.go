package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-persona-dashboard/components/dashboard"
)

type personasCmd struct {
	Search         string `short:"q" help:"Match against persona name or specialization."`
	Provider       string `default:"all" help:"Provider filter (OpenAI, Anthropic, Google, Ollama or all)."`
	Specialization string `default:"all" help:"Specialization filter."`
	Format         string `default:"table" enum:"table,json,yaml" help:"Output format."`

	out io.Writer `kong:"-"`
}

func (cmd *personasCmd) Run(_ *Globals) error {
	out := cmd.out
	if out == nil {
		out = os.Stdout
	}
	q := dashboard.PersonaQuery{
		Search:         strings.TrimSpace(cmd.Search),
		Provider:       dashboard.ParseFilter(cmd.Provider),
		Specialization: dashboard.ParseFilter(cmd.Specialization),
	}
	groups := dashboard.GroupByProvider(dashboard.FilterPersonas(dashboard.DefaultPersonas(), q), dashboard.ProviderOrder())

	switch cmd.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(groups)
	case "yaml":
		return yaml.NewEncoder(out).Encode(groups)
	}
	return writePersonaTable(out, groups)
}

func writePersonaTable(out io.Writer, groups []dashboard.PersonaGroup) error {
	if len(groups) == 0 {
		_, err := fmt.Fprintln(out, "No personas match the current filters.")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, group := range groups {
		fmt.Fprintf(tw, "%s (%d)\n", group.Provider, len(group.Personas))
		for _, p := range group.Personas {
			status := "inactive"
			if p.Active {
				status = "active"
			}
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%.1f\t%s\n", p.ID, p.Name, strcase.ToKebab(p.Specialization), p.Rating, status)
		}
	}
	return tw.Flush()
}
