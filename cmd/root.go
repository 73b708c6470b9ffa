package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AnyUserName/imagify/internal/config"
)

var (
	version    = "0.1.0"
	verbose    bool
	quiet      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "imagify",
	Short: "Convert batches of images to a single format",
	Long: `imagify converts a selection of images (png, jpg, bmp, gif, tiff, webp)
to one target format: PNG, JPEG, WEBP, ICO, TGA, BMP, GIF or TIFF.

Transparent images are flattened onto white for formats without alpha,
and an image the target encoder rejects is saved as <name>_fallback.png
so nothing is lost.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "also log to stderr, at debug level")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "hide the progress bar")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imagify %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

// newLogger opens the log file for appending and returns a logger writing
// to it, and to stderr as well when --verbose is set. The returned func
// closes the file.
func newLogger(cfg config.Config, stderr io.Writer) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	log.SetLevel(logrus.InfoLevel)

	var outs []io.Writer
	closer := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		outs = append(outs, f)
		closer = func() { f.Close() }
	}
	if verbose {
		outs = append(outs, stderr)
		log.SetLevel(logrus.DebugLevel)
	}
	log.SetOutput(io.MultiWriter(outs...))

	return log, closer, nil
}
