//go:build js

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nobonobo/box-viewer/internal/jsbind"
	"github.com/nobonobo/box-viewer/schema"
	"github.com/nobonobo/box-viewer/viewer"
)

const (
	defaultControlsURL = "./OrbitControls.js"
	loadTimeout        = 30 * time.Second
)

func runApplication() error {
	params, err := schema.ParseParams(jsbind.Params())
	if err != nil {
		return fmt.Errorf("failed to parse page parameters: %w", err)
	}
	cfg := viewer.DefaultConfig()
	if err := cfg.Apply(params); err != nil {
		return fmt.Errorf("failed to apply page parameters: %w", err)
	}

	controlsURL := defaultControlsURL
	if params.ControlsURL.Specified {
		controlsURL = params.ControlsURL.Value
	}
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()
	lib, err := jsbind.NewLibrary(ctx, controlsURL)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}

	controller := viewer.New(jsbind.NewHost(), lib, cfg)
	controller.Start()
	slog.Info("Viewer running",
		slog.String("color", controller.ObjectColor().Hex()),
		slog.Bool("colorInput", controller.ColorInputBound()),
	)
	select {}
}
