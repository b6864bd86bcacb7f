package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-persona-dashboard/components/dashboard"
)

type exportCmd struct {
	Format string `default:"json" enum:"json,yaml,yml" help:"Export format."`
	Output string `short:"o" type:"path" help:"Write to a file instead of stdout."`

	out io.Writer `kong:"-"`
}

func (cmd *exportCmd) Run(_ *Globals) error {
	ctx := context.Background()
	service := dashboard.NewService(dashboard.Options{})
	sess, _, err := service.OpenSession(ctx, "")
	if err != nil {
		return err
	}

	out := cmd.out
	if cmd.Output != "" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return fmt.Errorf("personactl: create %s: %w", cmd.Output, err)
		}
		defer f.Close()
		out = f
	}
	if out == nil {
		out = os.Stdout
	}
	return service.ExportData(ctx, sess.ID, cmd.Format, out)
}
