// cmd/percentview/root.go
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"go-percent-view/internal/app"
	"go-percent-view/internal/config"
	"go-percent-view/internal/event"
	"go-percent-view/internal/ui"
	"go-percent-view/internal/utils"
	"go-percent-view/pkg/render"
	"go-percent-view/pkg/units"
)

type rootFlags struct {
	attrsPath string
	fontPath  string
	percent   float32
	density   float32
	fontScale float32
	seed      int64
	logLevel  string
	logFormat string
}

// runGame подменяется в тестах
var runGame = ebiten.RunGame

func newRootCommand(fs afero.Fs, stderr *os.File) *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "percentview",
		Short:         "Show an animated percent ring",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(stderr, flags.logLevel, flags.logFormat)
			if err != nil {
				return err
			}
			return run(cmd, fs, flags, logger)
		},
	}

	cmd.Flags().StringVar(&flags.attrsPath, "attrs", "", "JSON file with style attributes")
	cmd.Flags().StringVar(&flags.fontPath, "font", "", "TTF/OTF font for the label (default Go Regular)")
	cmd.Flags().Float32Var(&flags.percent, "percent", 0, "percent to animate to on start")
	cmd.Flags().Float32Var(&flags.density, "density", 0, "pixels per dp (default: monitor scale factor)")
	cmd.Flags().Float32Var(&flags.fontScale, "font-scale", 1, "extra scale for sp units")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed for tap targets (0 = time based)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "text", "log format: text or json")
	return cmd
}

func newLogger(out *os.File, level, format string) (*logrus.Logger, error) {
	logger := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	logger.SetLevel(lvl)

	tty := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
	var w io.Writer = out
	if tty {
		w = colorable.NewColorable(out)
	}
	logger.SetOutput(w)

	switch format {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{ForceColors: tty, DisableColors: !tty, FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return logger, nil
}

func run(cmd *cobra.Command, fs afero.Fs, flags *rootFlags, logger *logrus.Logger) error {
	var attrs *config.Attributes
	if flags.attrsPath != "" {
		var err error
		attrs, err = config.LoadAttributes(fs, flags.attrsPath)
		if err != nil {
			return err
		}
		logger.WithField("path", flags.attrsPath).Info("Loaded style attributes")
	}

	faces, err := loadFaces(fs, flags.fontPath)
	if err != nil {
		return err
	}
	defer faces.Close()

	scale := flags.density
	if !cmd.Flags().Changed("density") {
		scale = float32(ebiten.Monitor().DeviceScaleFactor())
	}
	density := units.NewDensity(scale, flags.fontScale)

	dispatcher := event.NewDispatcher()
	view := ui.NewPercentView(
		ui.WithAttributes(attrs),
		ui.WithDensity(density),
		ui.WithDispatcher(dispatcher),
		ui.WithLogger(logger),
	)
	if flags.percent != 0 {
		view.SetPercent(flags.percent)
	}

	demo := app.NewDemo(view, dispatcher, render.NewEbitenCanvas(faces, logger), utils.NewPRNGService(flags.seed), logger)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Percent View")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	logger.WithFields(logrus.Fields{
		"density": density.Density,
		"radius":  view.Style().Radius,
	}).Info("Starting")
	if err := runGame(demo); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

func loadFaces(fs afero.Fs, path string) (*render.FaceCache, error) {
	if path == "" {
		return render.DefaultFaceCache()
	}
	return render.LoadFaceCache(fs, path)
}
