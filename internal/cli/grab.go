package cli

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/jmylchreest/colourpick/internal/pixel"
)

type grabOptions struct {
	region regionOptions
	output string
}

func newGrabCmd(global *globalOptions) *cobra.Command {
	opts := &grabOptions{}

	cmd := &cobra.Command{
		Use:   "grab",
		Short: "Save a window region as an image",
		Long: `Sample a window region and save it as an image file. The encoder is
chosen by the output extension: .png, .bmp, .tif or .tiff.

Without --width and --height the whole window is saved.

Examples:
  # Save the root window
  colourpick grab -o screen.png

  # Save a 64x64 region around the pointer's top-left
  colourpick grab --pointer --width 64 --height 64 -o swatch.bmp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrab(global, opts)
		},
	}

	opts.region.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output image file (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runGrab(global *globalOptions, opts *grabOptions) error {
	encode, err := encoderFor(opts.output)
	if err != nil {
		return err
	}

	t, err := openTarget(global)
	if err != nil {
		return err
	}
	defer t.close()

	window, err := t.window(opts.region.window)
	if err != nil {
		return err
	}
	rect, err := opts.region.rect(t, window, true)
	if err != nil {
		return err
	}

	colours, err := pixel.SampleRect(t.source, window, rect)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.output) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := encode(f, pixel.ToImage(rect, colours)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", opts.output, err)
	}

	global.logger.Info("saved image", "path", opts.output, "width", rect.Width, "height", rect.Height)
	return f.Close()
}

// encoderFor picks an image encoder from the file extension.
func encoderFor(path string) (func(io.Writer, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported image extension %q (supported: .png, .bmp, .tif, .tiff)", filepath.Ext(path))
	}
}
