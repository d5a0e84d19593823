package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/colourpick/internal/colour"
	"github.com/jmylchreest/colourpick/internal/pixel"
)

// regionOptions are the flags selecting what to sample.
type regionOptions struct {
	window  string
	x, y    int16
	width   uint16
	height  uint16
	pointer bool
}

func (r *regionOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&r.window, "window", "w", "", "window id, decimal or 0x hex (default: root window)")
	cmd.Flags().Int16VarP(&r.x, "x", "x", 0, "x offset within the window")
	cmd.Flags().Int16VarP(&r.y, "y", "y", 0, "y offset within the window")
	cmd.Flags().Uint16Var(&r.width, "width", 0, "region width (0: single point, or whole window for grab)")
	cmd.Flags().Uint16Var(&r.height, "height", 0, "region height (0: single point, or whole window for grab)")
	cmd.Flags().BoolVarP(&r.pointer, "pointer", "p", false, "use the current pointer position as x/y")
}

// rect resolves the region flags against t. When width or height is zero,
// whole selects the full window and a single point is used otherwise.
func (r *regionOptions) rect(t *target, window pixel.Window, whole bool) (pixel.Rect, error) {
	origin := pixel.Point{X: r.x, Y: r.y}
	if r.pointer {
		p, err := t.cursor(window)
		if err != nil {
			return pixel.Rect{}, err
		}
		origin = p
	}

	if r.width != 0 && r.height != 0 {
		return pixel.Rect{X: origin.X, Y: origin.Y, Width: r.width, Height: r.height}, nil
	}
	if r.width != 0 || r.height != 0 {
		return pixel.Rect{}, fmt.Errorf("--width and --height must be given together")
	}
	if whole {
		return t.bounds(window)
	}
	return pixel.PointRect(origin), nil
}

type sampleOptions struct {
	region  regionOptions
	format  outputFormat
	output  string
	preview bool
	unique  bool
	average bool
}

func newSampleCmd(global *globalOptions) *cobra.Command {
	opts := &sampleOptions{format: formatHex}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Sample colours from a window",
		Long: `Sample the colour of a single pixel or a rectangular region of a window.

Regions are reported row by row, left to right. Only 24-bit true colour
windows are supported.

Examples:
  # Colour of the root window pixel at (10, 20)
  colourpick sample -x 10 -y 20

  # Colour under the pointer, described in a table
  colourpick sample --pointer --format table

  # Distinct colours of a 16x16 region of a window, as JSON
  colourpick sample -w 0x3a00007 -x 0 -y 0 --width 16 --height 16 --unique -f json

  # Sample from a screenshot instead of the X server
  colourpick --from-image shot.png sample -x 100 -y 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("preview") {
				opts.preview = isTerminal(cmd) && opts.output == ""
			}
			return runSample(cmd, global, opts)
		},
	}

	opts.region.register(cmd)
	cmd.Flags().VarP(&opts.format, "format", "f", "output format (hex, rgb, hsl, json, table)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews (default: on for terminals)")
	cmd.Flags().BoolVar(&opts.unique, "unique", false, "report each distinct colour once")
	cmd.Flags().BoolVar(&opts.average, "average", false, "report the average colour of the region")

	return cmd
}

func runSample(cmd *cobra.Command, global *globalOptions, opts *sampleOptions) error {
	t, err := openTarget(global)
	if err != nil {
		return err
	}
	defer t.close()

	window, err := t.window(opts.region.window)
	if err != nil {
		return err
	}
	rect, err := opts.region.rect(t, window, false)
	if err != nil {
		return err
	}

	global.logger.Debug("sampling", "window", fmt.Sprintf("%#x", uint32(window)),
		"x", rect.X, "y", rect.Y, "width", rect.Width, "height", rect.Height)

	colours, err := sampleColours(t.source, window, rect)
	if err != nil {
		return err
	}

	palette := colour.NewPalette(colours)
	if opts.unique {
		palette = palette.Unique()
	}
	if opts.average {
		palette = colour.NewPalette([]colour.Colour{palette.Average()})
	}

	global.logger.Debug("sampled", "pixels", len(colours), "reported", palette.Len())

	output, err := formatPalette(palette, opts.format, opts.preview)
	if err != nil {
		return err
	}

	return writeOutput(cmd, global, opts.output, output)
}

// sampleColours reads rect from src, using a single point query for 1x1 rects.
func sampleColours(src pixel.Source, window pixel.Window, rect pixel.Rect) ([]colour.Colour, error) {
	if rect.Width == 1 && rect.Height == 1 {
		c, err := pixel.SamplePoint(src, window, pixel.Point{X: rect.X, Y: rect.Y})
		if err != nil {
			return nil, err
		}
		return []colour.Colour{c}, nil
	}
	return pixel.SampleRect(src, window, rect)
}

// writeOutput writes to the output file, or stdout when path is empty.
func writeOutput(cmd *cobra.Command, global *globalOptions, path, output string) error {
	if path == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}

	global.logger.Debug("writing output", "path", path)
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil { // #nosec G306 - Output files need standard read permissions
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// isTerminal reports whether the command writes to a terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
