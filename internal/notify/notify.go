// Package notify shows desktop notifications. Delivery is best-effort.
package notify

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/gen2brain/beeep"
)

var send = func(title, body string) error {
	return beeep.Notify(title, body, "")
}

var getenv = os.Getenv

// Wallpaper announces that imagePath is the new wallpaper. Headless Linux
// sessions are skipped since there is no notification daemon to talk to.
func Wallpaper(imagePath string) error {
	if runtime.GOOS == "linux" && getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return nil
	}
	return send("Wallpaper updated", filepath.Base(imagePath))
}
