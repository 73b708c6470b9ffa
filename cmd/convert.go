package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/AnyUserName/imagify/internal/config"
	"github.com/AnyUserName/imagify/internal/format"
	"github.com/AnyUserName/imagify/internal/pipeline"
	"github.com/AnyUserName/imagify/internal/report"
)

var (
	convertTo      string
	convertDest    string
	convertQuality int
	convertReport  string
)

var convertCmd = &cobra.Command{
	Use:   "convert <image|dir>...",
	Short: "Convert images to the selected format",
	Long: `Converts each image to the target format and writes <name>.<format>
into the destination directory, overwriting files with the same name.
Directories are searched for png, jpg, jpeg, bmp, gif, tiff, webp and ico
files.

Targets: ` + strings.Join(format.Names(), ", ") + ` (jpg is accepted as JPEG
and keeps the .jpg extension).`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "target format (default from config, png)")
	convertCmd.Flags().StringVarP(&convertDest, "dest", "o", "", "destination directory (default ~/Pictures/Imagify)")
	convertCmd.Flags().IntVarP(&convertQuality, "quality", "q", 0, "JPEG/WEBP quality 1-100 (0 = encoder default)")
	convertCmd.Flags().StringVar(&convertReport, "report", "", "write a JSON report of the batch to this file")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := config.NewLoader(configPath).Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("to") {
		cfg.Format = convertTo
	}
	if cmd.Flags().Changed("dest") {
		cfg.DestDir = convertDest
	}
	if cmd.Flags().Changed("quality") {
		cfg.Quality = convertQuality
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	target, err := format.Parse(cfg.Format)
	if err != nil {
		return err
	}

	paths, err := pipeline.ExpandPaths(args)
	if err != nil {
		return fmt.Errorf("collect images: %w", err)
	}

	if err := cfg.Prepare(); err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if len(paths) == 0 {
		log.Warn("convert called without selecting images")
		fmt.Fprintln(stdout, "No images selected: nothing to convert.")
		return nil
	}
	log.Infof("selected images: %v", paths)
	log.Debugf("destination: %s", cfg.DestDir)

	console := newConsoleSink(stderr, len(paths), !quiet)
	sinks := []pipeline.Sink{console}
	var rb *report.Builder
	if convertReport != "" {
		rb = report.NewBuilder(target, cfg.DestDir)
		sinks = append(sinks, rb)
	}

	conv := pipeline.New(
		pipeline.Config{DestDir: cfg.DestDir, Quality: cfg.Quality},
		pipeline.WithLogger(log),
		pipeline.WithSink(pipeline.Multi(sinks...)),
	)
	res := conv.ConvertAll(paths, target)

	if rb != nil {
		if err := report.WriteJSON(rb.Report(), convertReport); err != nil {
			log.WithError(err).Error("write report")
			fmt.Fprintf(stderr, "Could not write report: %v\n", err)
		}
	}

	name := strings.ToUpper(string(target))
	if !res.AnySucceeded {
		return fmt.Errorf("conversion failed: none of %d images converted, see %s", res.Total, cfg.LogFile)
	}
	fmt.Fprintf(stdout, "Images have been converted to %s format in %s", name, cfg.DestDir)
	if res.Fallback > 0 || res.Failed > 0 {
		fmt.Fprintf(stdout, " (%d saved, %d as PNG fallback, %d failed)", res.Saved, res.Fallback, res.Failed)
	}
	fmt.Fprintln(stdout, ".")
	return nil
}

// consoleSink reports failed items on stderr and advances the progress
// bar. Fallbacks are only logged.
type consoleSink struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func newConsoleSink(w io.Writer, total int, progress bool) *consoleSink {
	s := &consoleSink{w: w}
	if progress {
		s.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("converting"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	return s
}

func (s *consoleSink) Item(o pipeline.Outcome) {
	if o.Status == pipeline.StatusFailed {
		if s.bar != nil {
			_ = s.bar.Clear()
		}
		fmt.Fprintf(s.w, "Failed to convert %s: %v\n", o.Source, o.Err)
	}
	if s.bar != nil {
		_ = s.bar.Add(1)
	}
}

func (s *consoleSink) Done(pipeline.BatchResult) {
	if s.bar != nil {
		_ = s.bar.Finish()
	}
}
