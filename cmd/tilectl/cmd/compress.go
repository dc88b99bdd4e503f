package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jpfielding/tilegrid/pkg/grid"
	"github.com/jpfielding/tilegrid/pkg/util"
	"github.com/spf13/cobra"
)

func compressFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.Bool("tiles", true, "alias identical tiles across the image")
	pf.Bool("pixels", true, "alias identical pixels within each tile")
}

func compress(cmd *cobra.Command) (*grid.Compressed, error) {
	tiles, _ := cmd.Flags().GetBool("tiles")
	pixels, _ := cmd.Flags().GetBool("pixels")
	src, err := load(cmd)
	if err != nil {
		return nil, err
	}
	c, err := src.Compress(grid.Options{Pixel: pixels, Tile: tiles})
	if err != nil {
		return nil, fmt.Errorf("compressing: %w", err)
	}
	return c, nil
}

// NewCompressCmd deduplicates an image and writes the result
func NewCompressCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress",
		Short: "Alias repeated pixels and tiles",
		Long:  "Builds a compressed grid where identical pixels within a tile and identical tiles across the image share storage, then writes it out. Pixel values are unchanged.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := compress(cmd)
			if err != nil {
				return err
			}
			st := c.Stats()
			slog.InfoContext(ctx, "compressed",
				"tiles", st.Tiles, "distinct_tiles", st.DistinctTiles,
				"pixels", st.Pixels, "distinct_pixels", st.DistinctPixels)
			return save(ctx, cmd, c)
		},
	}
	ioFlags(cmd)
	compressFlags(cmd)
	return cmd
}

// NewStatsCmd reports how much of an image deduplicates
func NewStatsCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print deduplication statistics",
		Long:  "Compresses the input in memory and prints logical against stored tile and pixel counts, followed by a content id and use count for every distinct tile.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := compress(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			st := c.Stats()
			fmt.Fprintf(w, "Size: %dx%d grayscale=%v\n", c.Height(), c.Width(), c.Grayscale())
			fmt.Fprintf(w, "Tiles: %d stored / %d\n", st.DistinctTiles, st.Tiles)
			fmt.Fprintf(w, "Pixels: %d stored / %d\n", st.DistinctPixels, st.Pixels)

			for _, shared := range c.DistinctTiles() {
				fmt.Fprintf(w, "%s x%d\n", util.ContentUUID(shared.Tile.String()), len(shared.Positions))
			}
			slog.DebugContext(ctx, "stats", "summary", st.String())
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "input P2/P3 image path (- for stdin)")
	compressFlags(cmd)
	return cmd
}

// NewExportCmd converts a text image to PNG, JPEG, GIF, TIFF or BMP
func NewExportCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Convert a P2/P3 image to a binary image format",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := load(cmd)
			if err != nil {
				return err
			}
			return save(ctx, cmd, src)
		},
	}
	ioFlags(cmd)
	return cmd
}
