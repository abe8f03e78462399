package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/checklist/internal/cli"
	"github.com/idilsaglam/checklist/internal/config"
	"github.com/idilsaglam/checklist/internal/logger"
	"github.com/idilsaglam/checklist/internal/ui"
)

func main() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		ui.Fail(os.Stderr, "config: "+err.Error())
		os.Exit(1)
	}

	// Root flags (apply to every subcommand); they win over the environment.
	groupPending := flag.Bool("group", false, "group play output by pending/done")
	flag.StringVar(&cfg.Theme, "theme", cfg.Theme, "classic, neon or mono")
	flag.StringVar(&cfg.Color, "color", cfg.Color, "auto, always or never")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}

	ui.SetColorMode(cfg.Color)
	if err := ui.SetTheme(cfg.Theme); err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(2)
	}

	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		ui.Fail(os.Stderr, "logger: "+err.Error())
		os.Exit(1)
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		Group:       *groupPending,
		Placeholder: cfg.Placeholder,
		Logger:      log,
	})
	closer.Close()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
