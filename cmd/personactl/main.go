package main

import (
	"github.com/alecthomas/kong"

	"github.com/goliatone/go-persona-dashboard/pkg/config"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	Config  string   `type:"path" env:"PERSONA_CONFIG" help:"Optional YAML config file."`
	EnvFile []string `name:"env-file" help:"Dotenv files to load (defaults to .env)."`
}

// load resolves the layered configuration for a subcommand.
func (g *Globals) load() (config.Config, error) {
	return config.Load(g.Config, g.EnvFile...)
}

type cli struct {
	Globals

	Serve    serveCmd    `cmd:"" help:"Serve the persona dashboard over HTTP."`
	Personas personasCmd `cmd:"" help:"List personas grouped by provider."`
	Export   exportCmd   `cmd:"" help:"Export default settings and conversation history."`
}

func main() {
	var root cli
	ctx := kong.Parse(&root,
		kong.Name("personactl"),
		kong.Description("Run and inspect the AI persona dashboard."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&root.Globals)
	ctx.FatalIfErrorf(err)
}
