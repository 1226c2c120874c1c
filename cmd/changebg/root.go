package main

import (
	"os"
	"runtime"

	setwallpaper "github.com/davenicholson-xyz/go-setwallpaper/wallpaper"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FranFrau/change-background/internal/config"
	"github.com/FranFrau/change-background/internal/logging"
	"github.com/FranFrau/change-background/internal/notify"
	"github.com/FranFrau/change-background/internal/wallpaper"
)

type flags struct {
	url      string
	output   string
	notify   bool
	fallback bool
	debug    bool
}

func newRootCmd(code *int) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "changebg",
		Short: "Download an image and set it as the desktop wallpaper",
		Long: `changebg downloads one image into the current directory and applies it
with the platform's native wallpaper mechanism (gsettings, qdbus or
xfconf-query on Linux, osascript on macOS, SystemParametersInfoW on Windows).

Flags override values from ~/.config/changebg/config.yaml.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, _ []string) {
			logger := logging.New(f.debug)
			defer func() { _ = logger.Sync() }()

			cfg, err := config.Load()
			if err != nil {
				logger.Warn("could not load config", zap.Error(err))
			}
			applyFlags(cmd, cfg, f)

			dest, err := cfg.ResolvedImagePath()
			if err != nil {
				logger.Error("resolving image path", zap.Error(err))
				*code = ExitFailure
				return
			}

			*code = newApp(cfg, logger).run(cmd.Context(), cfg.URL, dest)
		},
	}

	cmd.Flags().StringVar(&f.url, "url", "", "image URL to download")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "file name the image is saved as")
	cmd.Flags().BoolVar(&f.notify, "notify", false, "show a desktop notification once the wallpaper is set")
	cmd.Flags().BoolVar(&f.fallback, "fallback", false, "use a generic setter on unsupported desktops")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging")

	return cmd
}

// applyFlags copies explicitly set flags over config file values.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f flags) {
	if cmd.Flags().Changed("url") {
		cfg.URL = f.url
	}
	if cmd.Flags().Changed("output") {
		cfg.Filename = f.output
	}
	if cmd.Flags().Changed("notify") {
		cfg.Notify = f.notify
	}
	if cmd.Flags().Changed("fallback") {
		cfg.Fallback = f.fallback
	}
}

func newApp(cfg *config.Config, logger *zap.Logger) *app {
	opts := wallpaper.Options{Logger: logger}
	if cfg.Fallback {
		opts.Fallback = setwallpaper.Set
	}

	a := &app{
		fetcher: wallpaper.NewFetcher(logger),
		setter:  wallpaper.NewSetter(wallpaper.DetectTarget(runtime.GOOS, os.Getenv), opts),
		logger:  logger,
	}
	if cfg.Notify {
		a.notify = notify.Wallpaper
	}
	return a
}
