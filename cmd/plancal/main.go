package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jorge-barreto/plancal/internal/calendar"
	"github.com/jorge-barreto/plancal/internal/config"
	"github.com/jorge-barreto/plancal/internal/docs"
	"github.com/jorge-barreto/plancal/internal/logging"
	"github.com/jorge-barreto/plancal/internal/runner"
	"github.com/jorge-barreto/plancal/internal/scaffold"
	"github.com/jorge-barreto/plancal/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	// .env must be loaded before flags are parsed so --token can see it.
	if err := config.LoadEnv(".env"); err != nil {
		ux.Fail(fmt.Errorf("loading .env: %w", err))
		os.Exit(1)
	}

	app := &cli.Command{
		Name:        "plancal",
		Usage:       "Convert a Bible reading plan into an iCalendar file",
		Description: "Run 'plancal docs' for documentation on the plan format, config, and export.",
		Commands: []*cli.Command{
			exportCmd(),
			initCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ux.Fail(err)
		os.Exit(1)
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Parse a plan and write an .ics calendar",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "Plan file to read", Required: true},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Calendar file to write (.ics)"},
			&cli.BoolFlag{Name: "memory-verse", Aliases: []string{"m"}, Usage: "Export memory verses only"},
			&cli.IntFlag{Name: "year", Usage: "Year the plan dates fall in (overrides config)"},
			&cli.StringFlag{Name: "dialect", Usage: "Plan dialect: weekly or flat (overrides config)"},
			&cli.StringFlag{Name: "config", Usage: "Config file (default: ./" + config.DefaultFile + " if present)"},
			&cli.StringFlag{
				Name:    "token",
				Usage:   "ESV API access token",
				Sources: cli.EnvVars(config.TokenEnv),
			},
			&cli.BoolFlag{Name: "enrich", Usage: "Fetch memory verse text from the ESV API"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the parsed plan without writing a calendar"},
			&cli.BoolFlag{Name: "debug", Usage: "Verbose logging"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dryRun := cmd.Bool("dry-run")
			if cmd.String("output") == "" && !dryRun {
				return fmt.Errorf("--output is required unless --dry-run is set")
			}

			cfg, err := config.Resolve(cmd.String("config"), config.Overrides{
				Year:    int(cmd.Int("year")),
				Dialect: cmd.String("dialect"),
			})
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			log, err := logging.New(cmd.Bool("debug"))
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer log.Sync()

			mode := calendar.ModeAll
			if cmd.Bool("memory-verse") {
				mode = calendar.ModeMemoryVerse
			}

			r := &runner.Runner{
				Config: cfg,
				Input:  cmd.String("input"),
				Output: cmd.String("output"),
				Mode:   mode,
				Token:  cmd.String("token"),
				Enrich: cmd.Bool("enrich"),
				DryRun: dryRun,
				Log:    log,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, err = r.Run(ctx)
			return err
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create an example " + config.DefaultFile + " and " + scaffold.PlanFile,
		ArgsUsage: "[dir]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = wd
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-12s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'plancal docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}
