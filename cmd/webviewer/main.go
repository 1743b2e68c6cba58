//go:build js && wasm

package main

import (
	"context"
	"os"

	"github.com/Carmen-Shannon/oxy-cam/engine"
	"github.com/Carmen-Shannon/oxy-cam/engine/browser"
	"github.com/Carmen-Shannon/oxy-cam/engine/camera"
	"github.com/Carmen-Shannon/oxy-cam/engine/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

const (
	canvasID   = "oxy-canvas"
	uniformVar = "oxyCamera"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}).With().Timestamp().Logger()
	cfg := config.Default()
	zerolog.SetGlobalLevel(cfg.Level())

	// ── Page ────────────────────────────────────────────────────────────
	doc, err := browser.NewDocument(browser.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("document")
	}
	canvas, err := browser.NewCanvas(doc, canvasID, browser.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("canvas")
	}
	width, height := canvas.Resize()

	// ── Camera ──────────────────────────────────────────────────────────
	cam, err := cfg.NewCamera(
		camera.WithDocument(doc),
		camera.WithLogger(logger.With().Str("component", "camera").Logger()),
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("camera")
	}
	lens := cfg.NewLens(width, height)

	// ── Uniform ─────────────────────────────────────────────────────────
	var uniform camera.GPUCameraUniform
	pub, err := browser.NewPublisher(uniformVar, uniform.Size())
	if err != nil {
		logger.Fatal().Err(err).Msg("publisher")
	}

	// ── Session ─────────────────────────────────────────────────────────
	session := engine.NewSession(
		engine.WithHost(canvas),
		engine.WithCamera(cam),
		engine.WithLens(lens),
		engine.WithTickRate(cfg.TickRate),
		engine.WithLogger(logger),
		engine.WithFrameCallback(func(mgl32.Mat4, float32) {
			u := camera.NewGPUCameraUniform(cam, lens)
			if err := pub.Publish(u.Marshal()); err != nil {
				logger.Error().Err(err).Msg("publish uniform")
			}
		}),
	)
	if err := session.Run(context.Background()); err != nil {
		logger.Error().Err(err).Msg("session")
	}
}
