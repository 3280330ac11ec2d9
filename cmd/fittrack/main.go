package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/riteshkr04/fittrack/internal/cli"
	"github.com/riteshkr04/fittrack/internal/cli/activities"
	"github.com/riteshkr04/fittrack/internal/cli/meals"
	"github.com/riteshkr04/fittrack/internal/cli/system"
	"github.com/riteshkr04/fittrack/internal/constants"
	"github.com/riteshkr04/fittrack/internal/dashboard"
	apperrors "github.com/riteshkr04/fittrack/internal/errors"
	"github.com/riteshkr04/fittrack/internal/logger"
	"github.com/riteshkr04/fittrack/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .db extension selects SQLite, anything else the JSON file store." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Init   system.InitCmd   `cmd:"" help:"Initialize fittrack storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Activity struct {
		Add  activities.AddCmd  `cmd:"" help:"Log a new activity."`
		List activities.ListCmd `cmd:"" help:"List activities, optionally filtered by time of day."`
	} `cmd:"" help:"Manage activities."`
	Meal struct {
		Add    meals.AddCmd    `cmd:"" help:"Add a meal to a slot."`
		Remove meals.RemoveCmd `cmd:"" help:"Remove a meal from a slot."`
		List   meals.ListCmd   `cmd:"" help:"List meals per slot with the calorie total."`
	} `cmd:"" help:"Manage meals."`
	Export cli.ExportCmd   `cmd:"" help:"Write a JSON summary of the dashboard."`
	Reset  system.ResetCmd `cmd:"" help:"Reset all dashboard data to built-in defaults."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal fitness dashboard for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	configPath := storage.ExpandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	store := storage.ForPath(configPath)
	defer store.Close()

	dash, err := dashboard.New(store)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store: store,
		Dash:  dash,
		Debug: CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
