package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpfielding/tilegrid/pkg/export"
	"github.com/jpfielding/tilegrid/pkg/grid"
	"github.com/jpfielding/tilegrid/pkg/logging"
	"github.com/jpfielding/tilegrid/pkg/pnm"
	"github.com/spf13/cobra"
)

func NewRoot(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tilectl",
		Short: "a CLI to transform and compress tiled PGM/PPM images",
		Long:  "tilectl reads plain P2/P3 images into 4x4 tiled grids, applies geometric transforms and deduplicates repeated pixels and tiles.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")
			logFile, _ := cmd.Flags().GetString("log-file")

			level, ok := logging.ParseLevel(logLevel)
			slog.SetDefault(logging.Logger(logging.Writer(logFile), logFormat == "json", level))
			if !ok {
				slog.WarnContext(ctx, "Invalid log level, defaulting to INFO", "level", logLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			printCommandTree(cmd.OutOrStdout(), cmd, 0)
		},
	}
	cmd.AddCommand(
		NewVersionCmd(ctx, gitsha),
		NewScaleCmd(ctx),
		NewCropCmd(ctx),
		NewFlipCmd(ctx),
		NewRotateCmd(ctx),
		NewCompressCmd(ctx),
		NewStatsCmd(ctx),
		NewExportCmd(ctx),
	)
	pf := cmd.PersistentFlags()
	pf.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-format", "text", "Log format (text|json)")
	pf.String("log-file", "", "Rotating log file (default stderr)")
	return cmd
}

func printCommandTree(w io.Writer, cmd *cobra.Command, indent int) {
	fmt.Fprintln(w, strings.Repeat("\t", indent), cmd.Use+":", cmd.Short)
	for _, subCmd := range cmd.Commands() {
		printCommandTree(w, subCmd, indent+1)
	}
}

func NewVersionCmd(ctx context.Context, gitsha string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "git sha for this build",
		Long:  "git sha for this build",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), gitsha)
		},
	}
	return cmd
}

// ioFlags registers the input and output flags shared by the image commands.
func ioFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "input P2/P3 image path (- for stdin)")
	pf.StringP("out", "o", "", "output path; .pgm/.ppm/.pnm or - write text, other extensions export a binary image")
}

// load reads the --in image.
func load(cmd *cobra.Command) (*grid.Image, error) {
	path, _ := cmd.Flags().GetString("in")
	switch path {
	case "":
		return nil, fmt.Errorf("input path is required. Use --in")
	case "-":
		if stdinIsTerminal(cmd) {
			return nil, fmt.Errorf("refusing to read an image from a terminal")
		}
		return pnm.Read(cmd.InOrStdin())
	default:
		m, err := pnm.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return m, nil
	}
}

// save writes r to the --out path as text or, for image extensions, through
// the export package.
func save(ctx context.Context, cmd *cobra.Command, r grid.Raster) error {
	path, _ := cmd.Flags().GetString("out")
	switch strings.ToLower(filepath.Ext(path)) {
	case "":
		if path == "" {
			return fmt.Errorf("output path is required. Use --out")
		}
		if path == "-" {
			return pnm.Write(cmd.OutOrStdout(), r)
		}
		fallthrough
	case ".pgm", ".ppm", ".pnm":
		if err := pnm.WriteFile(path, r); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	default:
		if err := export.Save(path, r); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	slog.InfoContext(ctx, "wrote image", "path", path, "height", r.Height(), "width", r.Width(), "grayscale", r.Grayscale())
	return nil
}

// stdinIsTerminal guards against blocking on an interactive stdin.
func stdinIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
