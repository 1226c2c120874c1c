package wallpaper

import (
	"context"
	"errors"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
)

type windowsSetter struct {
	apply  func(path string) error
	logger *zap.Logger
}

func (s *windowsSetter) Apply(_ context.Context, imagePath string) error {
	abs, err := filepath.Abs(imagePath)
	if err != nil {
		return &SetError{Desktop: "windows", Code: -1, Err: err}
	}
	s.logger.Info("setting wallpaper with SystemParametersInfoW", zap.String("path", abs))

	if err := s.apply(abs); err != nil {
		code := -1
		var errno syscall.Errno
		if errors.As(err, &errno) {
			code = int(errno)
		}
		return &SetError{Desktop: "windows", Code: code, Err: err}
	}
	return nil
}
