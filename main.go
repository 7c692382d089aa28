package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/semafind/distcalc/config"
	"github.com/semafind/distcalc/distance"
	"github.com/semafind/distcalc/httpapi"
	"github.com/semafind/distcalc/selftest"
	"github.com/semafind/distcalc/session"
)

// ---------------------------

func setupLogging(cfg config.ConfigMap) {
	// Standard output belongs to the dialogue, logs go to standard error
	if cfg.PrettyLogOutput {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	// ---------------------------
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Interface("config", cfg).Msg("Environment config")
	}
}

// ---------------------------

func runChecks(cfg config.ConfigMap, out io.Writer) error {
	if cfg.SelfTest {
		if err := selftest.RunFailFast(distance.ComputeDistance, selftest.DefaultCases()); err != nil {
			return err
		}
		fmt.Fprintln(out, "all tests passed...")
	}
	if cfg.PropertyChecks > 0 {
		var progress io.Writer
		if cfg.PrettyLogOutput {
			progress = os.Stderr
		}
		if err := selftest.CheckProperties(distance.ComputeDistance, cfg.PropertyChecks, time.Now().UnixNano(), progress); err != nil {
			return err
		}
		log.Info().Int("pairs", cfg.PropertyChecks).Msg("distance properties hold")
	}
	return nil
}

func serve(ctx context.Context, cfg config.ConfigMap) error {
	httpServer := httpapi.RunHTTPServer(cfg.HttpApi, distance.ComputeDistance)
	<-ctx.Done()
	log.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server forced to shut: %w", err)
	}
	return nil
}

func run(ctx context.Context, cfg config.ConfigMap, in io.Reader, out io.Writer) error {
	if err := runChecks(cfg, out); err != nil {
		return err
	}
	if cfg.Serve {
		return serve(ctx, cfg)
	}
	return session.NewSession(cfg.Session, distance.ComputeDistance, in, out).Run(ctx)
}

func main() {
	cfg, err := config.LoadConfig()
	setupLogging(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Debug().Str("version", "0.1.0").Msg("Starting distcalc")
	// ---------------------------
	ctx := context.Background()
	if cfg.Serve {
		// The interactive session keeps the default interrupt behaviour
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}
	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("distcalc failed")
	}
}
