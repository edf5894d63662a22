package main

import (
	"log/slog"
	"os"
	"runtime"
)

func main() {
	logger := slog.Default().With(slog.String("app", "box-viewer"))
	logger.Info("Starting viewer",
		slog.String("platform", runtime.GOOS+"/"+runtime.GOARCH),
	)
	if err := runApplication(); err != nil {
		logger.Error("Viewer failed",
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	logger.Info("Viewer stopped")
}
