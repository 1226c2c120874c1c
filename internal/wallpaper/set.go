package wallpaper

import (
	"context"

	"go.uber.org/zap"
)

// Setter applies an image file as the desktop wallpaper.
type Setter interface {
	Apply(ctx context.Context, imagePath string) error
}

// Options configures NewSetter. Zero values are usable.
type Options struct {
	Runner Runner
	Logger *zap.Logger

	// Fallback, when non-nil, is used on unsupported desktops and operating
	// systems instead of doing nothing.
	Fallback func(path string) error
}

// NewSetter picks the Setter for t.
func NewSetter(t Target, opts Options) Setter {
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	switch t.OS {
	case "windows":
		return &windowsSetter{apply: systemParametersInfo, logger: opts.Logger}
	case "darwin":
		return &darwinSetter{runner: opts.Runner, logger: opts.Logger}
	case "linux":
		return &linuxSetter{target: t, runner: opts.Runner, logger: opts.Logger, fallback: opts.Fallback}
	}
	return &unsupportedSetter{os: t.OS, logger: opts.Logger, fallback: opts.Fallback}
}

// unsupportedSetter handles operating systems without a native variant.
type unsupportedSetter struct {
	os       string
	logger   *zap.Logger
	fallback func(string) error
}

func (s *unsupportedSetter) Apply(_ context.Context, imagePath string) error {
	s.logger.Warn("unsupported operating system", zap.String("os", s.os))
	return applyFallback(s.logger, s.fallback, s.os, imagePath)
}

// applyFallback runs fallback when configured. Without one the image is left
// in place and nothing else happens.
func applyFallback(logger *zap.Logger, fallback func(string) error, desktop, imagePath string) error {
	if fallback == nil {
		return nil
	}
	logger.Info("using generic wallpaper setter", zap.String("path", imagePath))
	if err := fallback(imagePath); err != nil {
		return &SetError{Desktop: desktop, Command: "fallback", Code: -1, Err: err}
	}
	return nil
}

var (
	_ Setter = (*windowsSetter)(nil)
	_ Setter = (*darwinSetter)(nil)
	_ Setter = (*linuxSetter)(nil)
	_ Setter = (*unsupportedSetter)(nil)
)
