// Command charminar runs the maze-chase game.
//
// It supports these commands:
//  1. "play" (default) – opens a desktop window and plays a session with the keyboard
//  2. "simulate" – plays headless runs with the autopilot and prints JSON results
//  3. "validate" – checks every tuning profile in the config directory
//  4. "configs" – lists the available tuning profiles
//
// Flags control the config directory, the tuning profile, debug logging and
// the window width.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/wricardo/charminar-game/desktop"
	"github.com/wricardo/charminar-game/game/config"
	"github.com/wricardo/charminar-game/game/engine"
	"github.com/wricardo/charminar-game/game/service"
	"github.com/wricardo/charminar-game/game/session"
	"github.com/wricardo/charminar-game/validate"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Charminar"
)

// getConfigDirDefault returns the default configuration directory.
// The CONFIG_DIR environment variable overrides it through the flag source.
func getConfigDirDefault() string {
	return "configs"
}

// main loads the environment and runs the command tree.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	} else {
		log.Println("Loaded environment variables from .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

// newApp builds the command tree. Play is the root action.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    "charminar",
		Usage:   "A maze-chase game with a desktop window and a headless simulator",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Value:   getConfigDirDefault(),
				Usage:   "Directory containing tuning profiles",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "Tuning profile to play (default profile when empty)",
				Sources: cli.EnvVars("CHARMINAR_PROFILE"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: setupLogging,
		Action: playAction,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "Play in a desktop window",
				Action: playAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "width",
						Value: 570,
						Usage: "Initial window width in pixels",
					},
				},
			},
			{
				Name:   "simulate",
				Usage:  "Play headless runs with the autopilot and print JSON results",
				Action: simulateAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "ticks",
						Value: service.DefaultMaxTicks,
						Usage: "Maximum ticks per run",
					},
					&cli.Int64Flag{
						Name:  "seed",
						Usage: "Seed for the first run; run i uses seed+i (0 uses the profile seed or the clock)",
					},
					&cli.IntFlag{
						Name:  "runs",
						Value: 1,
						Usage: "Number of runs",
					},
					&cli.IntFlag{
						Name:  "parallel",
						Usage: "Runs in flight at once (0 uses GOMAXPROCS)",
					},
				},
			},
			{
				Name:   "validate",
				Usage:  "Validate every tuning profile in the config directory",
				Action: validateAction,
			},
			{
				Name:   "configs",
				Usage:  "List available tuning profiles",
				Action: configsAction,
			},
		},
	}
}

// setupLogging applies the debug flag before any command runs
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
	return ctx, nil
}

// initializeServices wires the config and session managers into the game service.
func initializeServices(configDir string) (service.GameService, error) {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	sessionManager := session.NewManager()
	return service.NewGameService(sessionManager, configManager), nil
}

func playAction(ctx context.Context, cmd *cli.Command) error {
	gameService, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	sess, err := gameService.CreateSession(ctx, cmd.String("profile"))
	if err != nil {
		return err
	}
	defer gameService.DeleteSession(context.Background(), sess.ID)

	sess.OnEvent(logEvent)
	log.Printf("Starting %s v%s (session %s, profile %s)", AppName, Version, sess.ID, sess.Config.Name)

	return desktop.Run(sess, desktop.Options{
		Width: int(cmd.Int("width")),
		Title: fmt.Sprintf("%s - %s", AppName, sess.Config.Name),
	})
}

func simulateAction(ctx context.Context, cmd *cli.Command) error {
	gameService, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	opts := service.SimulationOptions{
		MaxTicks:    int(cmd.Int("ticks")),
		Seed:        cmd.Int64("seed"),
		Parallelism: int(cmd.Int("parallel")),
	}
	return simulate(ctx, gameService, cmd.Root().Writer, cmd.String("profile"), int(cmd.Int("runs")), opts)
}

// simulate plays runs headless games and writes the results as indented
// JSON: a single object for one run, an array otherwise.
func simulate(ctx context.Context, gameService service.GameService, w io.Writer, profile string, runs int, opts service.SimulationOptions) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if runs <= 1 {
		result, err := gameService.Simulate(ctx, profile, opts)
		if err != nil {
			return fmt.Errorf("simulation failed: %w", err)
		}
		log.Printf("Run %s finished after %d ticks: score %d, reason %s", result.RunID, result.Ticks, result.Score, result.Reason)
		return enc.Encode(result)
	}

	results, err := gameService.SimulateBatch(ctx, profile, runs, opts)
	if err != nil {
		return fmt.Errorf("simulation batch failed: %w", err)
	}
	return enc.Encode(results)
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	results, err := validate.ValidateDir(cmd.String("config-dir"))
	if err != nil {
		return err
	}
	if !printValidation(cmd.Root().Writer, results) {
		return errors.New("some configurations have errors")
	}
	return nil
}

// printValidation writes a report per file and returns whether all passed
func printValidation(w io.Writer, results []validate.ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Info {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Fprintln(w, "  ❌ "+err)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if len(results) == 0 {
		fmt.Fprintln(w, "⚠️  No configurations found")
	} else if allValid {
		fmt.Fprintln(w, "✅ All configurations are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some configurations have errors")
	}
	return allValid
}

func configsAction(ctx context.Context, cmd *cli.Command) error {
	gameService, err := initializeServices(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	configs, err := gameService.ListConfigs(ctx)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	for _, info := range configs {
		fmt.Fprintf(w, "%-12s %-16s lives=%d aggressiveness=%d  %s\n",
			info.ConfigID, info.Name, info.StartingLives, info.Aggressiveness, info.Description)
	}
	return nil
}

// logEvent reports the events worth a log line. Pickups are too frequent.
func logEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventLifeLost, engine.EventGameOver, engine.EventVictory, engine.EventRestart:
		log.Printf("[tick %d] %s: %s", ev.Tick, ev.Type, ev.Message)
	}
}
