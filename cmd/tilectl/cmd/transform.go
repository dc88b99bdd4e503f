package cmd

import (
	"context"
	"log/slog"

	"github.com/jpfielding/tilegrid/pkg/transform"
	"github.com/spf13/cobra"
)

// NewScaleCmd enlarges or shrinks an image by an integer factor
func NewScaleCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Scale an image by an integer factor",
		Long:  "Positive factors repeat every pixel into a factor x factor block, negative factors keep every |factor|-th row and column.",
		RunE: func(cmd *cobra.Command, args []string) error {
			factor, _ := cmd.Flags().GetInt("factor")
			src, err := load(cmd)
			if err != nil {
				return err
			}
			out, err := transform.Scale(src, factor)
			if err != nil {
				return err
			}
			slog.DebugContext(ctx, "scaled", "factor", factor)
			return save(ctx, cmd, out)
		},
	}
	ioFlags(cmd)
	pf := cmd.PersistentFlags()
	pf.IntP("factor", "n", 2, "scale factor (negative shrinks)")
	return cmd
}

// NewCropCmd cuts a rectangle out of an image
func NewCropCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crop",
		Short: "Crop a rectangle from an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			top, _ := cmd.Flags().GetInt("top")
			left, _ := cmd.Flags().GetInt("left")
			height, _ := cmd.Flags().GetInt("height")
			width, _ := cmd.Flags().GetInt("width")
			src, err := load(cmd)
			if err != nil {
				return err
			}
			out, err := transform.Crop(src, top, left, height, width)
			if err != nil {
				return err
			}
			return save(ctx, cmd, out)
		},
	}
	ioFlags(cmd)
	pf := cmd.PersistentFlags()
	pf.Int("top", 0, "first row of the crop")
	pf.Int("left", 0, "first column of the crop")
	pf.Int("height", 4, "crop height (multiple of 4)")
	pf.Int("width", 4, "crop width (multiple of 4)")
	return cmd
}

// NewFlipCmd mirrors an image
func NewFlipCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flip",
		Short: "Mirror an image vertically or horizontally",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("direction")
			d, err := transform.ParseDirection(dir)
			if err != nil {
				return err
			}
			src, err := load(cmd)
			if err != nil {
				return err
			}
			out, err := transform.Flip(src, d)
			if err != nil {
				return err
			}
			return save(ctx, cmd, out)
		},
	}
	ioFlags(cmd)
	pf := cmd.PersistentFlags()
	pf.StringP("direction", "d", "vertical", "vertical|horizontal")
	return cmd
}

// NewRotateCmd turns an image a quarter turn
func NewRotateCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Rotate an image a quarter turn",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("direction")
			clockwise, err := transform.ParseRotation(dir)
			if err != nil {
				return err
			}
			src, err := load(cmd)
			if err != nil {
				return err
			}
			out, err := transform.Rotate(src, clockwise)
			if err != nil {
				return err
			}
			return save(ctx, cmd, out)
		},
	}
	ioFlags(cmd)
	pf := cmd.PersistentFlags()
	pf.StringP("direction", "d", "clockwise", "clockwise|counterclockwise")
	return cmd
}
