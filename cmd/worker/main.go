// The worker runs the feedback weight learner on an interval, out of band
// from request handling.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ronniejay22/Knot-APP-sub000/internal/bootstrap"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/config"
	"github.com/ronniejay22/Knot-APP-sub000/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}

	interval := cfg.LearnerInterval
	if interval <= 0 {
		interval = time.Hour
	}
	log.Printf("worker started interval=%s", interval)

	runOnce(ctx, app)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("worker shutting down")
			return
		case <-ticker.C:
			runOnce(ctx, app)
		}
	}
}

func runOnce(ctx context.Context, app *bootstrap.App) {
	updated, err := app.Learner.RunAll(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		telemetry.Error("worker.learner_run_failed", map[string]any{"error": err.Error()})
		return
	}
	log.Printf("learner run complete users_updated=%d", updated)
}
