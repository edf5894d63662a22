//go:build !js

package main

import (
	"fmt"
	"runtime"
)

func runApplication() error {
	return fmt.Errorf("viewer runs in a browser (GOOS=js GOARCH=wasm), not %s/%s", runtime.GOOS, runtime.GOARCH)
}
