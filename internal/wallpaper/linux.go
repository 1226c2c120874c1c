package wallpaper

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

const (
	gnomeSchema = "org.gnome.desktop.background"

	plasmaService = "org.kde.plasmashell"
	plasmaPath    = "/PlasmaShell"

	xfceChannel  = "xfce4-desktop"
	xfceProperty = "/backdrop/screen0/monitor0/workspace0/last-image"
)

type linuxSetter struct {
	target   Target
	runner   Runner
	logger   *zap.Logger
	fallback func(string) error
}

func (s *linuxSetter) Apply(ctx context.Context, imagePath string) error {
	kind := classifyDesktop(s.target.Desktop)
	s.logger.Info("detected desktop environment",
		zap.String("desktop", strings.ToLower(s.target.Desktop)),
		zap.String("session", strings.ToLower(s.target.Session)))

	switch kind {
	case desktopGNOME:
		return s.applyGNOME(ctx, imagePath)
	case desktopKDE:
		return s.applyKDE(ctx, imagePath)
	case desktopXFCE:
		return s.applyXFCE(ctx, imagePath)
	}

	s.logger.Warn("unsupported desktop environment", zap.String("desktop", s.target.Desktop))
	return applyFallback(s.logger, s.fallback, "linux", imagePath)
}

// applyGNOME sets both the light and dark picture keys. The dark key is
// skipped when the light one fails.
func (s *linuxSetter) applyGNOME(ctx context.Context, imagePath string) error {
	uri := "file://" + imagePath
	s.logger.Info("setting wallpaper with gsettings", zap.String("path", imagePath))

	for _, key := range []string{"picture-uri", "picture-uri-dark"} {
		if _, err := s.runner.Run(ctx, "gsettings", "set", gnomeSchema, key, uri); err != nil {
			return newSetError("gnome", "gsettings", err)
		}
	}
	return nil
}

// applyKDE sets the wallpaper for every virtual desktop id reported by
// plasmashell. If the ids cannot be listed nothing is applied and no error is
// returned. Every id is attempted even after a failure.
func (s *linuxSetter) applyKDE(ctx context.Context, imagePath string) error {
	s.logger.Info("setting wallpaper with qdbus", zap.String("path", imagePath))

	out, err := s.runner.Run(ctx, "qdbus", plasmaService, plasmaPath, "org.kde.PlasmaShell.currentVirtualDesktop")
	if err != nil {
		s.logger.Debug("listing virtual desktops failed", zap.Error(err))
		return nil
	}

	var errs []error
	for _, id := range strings.Fields(string(out)) {
		if _, err := s.runner.Run(ctx, "qdbus", plasmaService, plasmaPath,
			"org.kde.PlasmaShell.setWallpaperForActivity", id, imagePath); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return newSetError("kde", "qdbus", errors.Join(errs...))
	}
	return nil
}

func (s *linuxSetter) applyXFCE(ctx context.Context, imagePath string) error {
	s.logger.Info("setting wallpaper with xfconf-query", zap.String("path", imagePath))

	if _, err := s.runner.Run(ctx, "xfconf-query", "-c", xfceChannel, "-p", xfceProperty, "-s", imagePath); err != nil {
		return newSetError("xfce", "xfconf-query", err)
	}
	return nil
}
