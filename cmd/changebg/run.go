package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/FranFrau/change-background/internal/wallpaper"
)

type fetcher interface {
	Fetch(ctx context.Context, url, destPath string) error
}

type app struct {
	fetcher fetcher
	setter  wallpaper.Setter
	notify  func(imagePath string) error
	logger  *zap.Logger
}

// run downloads url to dest and applies it. Only a failed download changes
// the exit code; a failed apply is logged and the run still succeeds.
func (a *app) run(ctx context.Context, url, dest string) int {
	if err := a.fetcher.Fetch(ctx, url, dest); err != nil {
		a.logger.Error("download failed", zap.Error(err))
		return ExitFailure
	}

	if err := a.setter.Apply(ctx, dest); err != nil {
		a.logger.Error("could not set wallpaper", zap.Error(err))
		return ExitSuccess
	}

	if a.notify != nil {
		if err := a.notify(dest); err != nil {
			a.logger.Debug("notification not shown", zap.Error(err))
		}
	}
	return ExitSuccess
}
