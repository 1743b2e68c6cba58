package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Carmen-Shannon/oxy-cam/engine"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/config"
	"github.com/Carmen-Shannon/oxy-cam/engine/input"
	"github.com/Carmen-Shannon/oxy-cam/engine/timer"
	"github.com/Carmen-Shannon/oxy-cam/engine/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// ── Flags ───────────────────────────────────────────────────────────
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		kind       = flag.String("camera", "", "camera kind: first_person | orbit (overrides config)")
		profile    = flag.Bool("profile", false, "log frame statistics once per second")
	)
	flag.Parse()

	// ── Logging ─────────────────────────────────────────────────────────
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// ── Config ──────────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info().Str("path", *configPath).Msg("no config file; using defaults")
		cfg = config.Default()
	case err != nil:
		log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
	}
	if *kind != "" {
		cfg.Camera.Kind = *kind
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("invalid -camera")
		}
	}
	zerolog.SetGlobalLevel(cfg.Level())

	// ── Event loop ──────────────────────────────────────────────────────
	// Window callbacks and keyboard repeat ticks share one queue so camera input is serialized.
	queue := input.NewQueue(256)
	defer queue.Close()

	// ── Window ──────────────────────────────────────────────────────────
	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithQueue(queue),
		window.WithLogger(log.With().Str("component", "window").Logger()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("window")
	}
	defer win.Close()

	// ── Camera ──────────────────────────────────────────────────────────
	cam, err := cfg.NewCamera(
		camera.WithDocument(win),
		camera.WithScheduler(timer.NewTickerScheduler(queue.Post)),
		camera.WithLogger(log.With().Str("component", "camera").Logger()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("camera")
	}
	lens := cfg.NewLens(win.Width(), win.Height())

	// ── Session ─────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := engine.NewSession(
		engine.WithHost(win),
		engine.WithCamera(cam),
		engine.WithLens(lens),
		engine.WithTickRate(cfg.TickRate),
		engine.WithProfiling(*profile),
		engine.WithLogger(log.Logger),
		engine.WithFrameCallback(func(view mgl32.Mat4, dt float32) {
			p := cam.Position()
			log.Debug().
				Float32("x", p.X()).Float32("y", p.Y()).Float32("z", p.Z()).
				Float32("pitch", cam.Pitch()).Float32("yaw", cam.Yaw()).
				Float32("dt", dt).
				Msg("frame")
		}),
	)

	log.Info().Str("camera", cfg.Camera.Kind).Msg("viewer running; click to look, Esc to quit")
	if err := session.Run(ctx); err != nil {
		log.Error().Err(err).Msg("session")
	}
}
