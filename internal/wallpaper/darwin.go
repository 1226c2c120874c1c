package wallpaper

import (
	"context"

	"go.uber.org/zap"
)

// The image path reaches the script through argv so it is never spliced into
// AppleScript source.
const darwinScript = `on run argv
	tell application "System Events" to set picture of every desktop to (item 1 of argv as POSIX file)
end run`

type darwinSetter struct {
	runner Runner
	logger *zap.Logger
}

func (s *darwinSetter) Apply(ctx context.Context, imagePath string) error {
	s.logger.Info("setting wallpaper with osascript", zap.String("path", imagePath))

	if _, err := s.runner.Run(ctx, "osascript", "-e", darwinScript, imagePath); err != nil {
		return newSetError("macos", "osascript", err)
	}
	return nil
}
