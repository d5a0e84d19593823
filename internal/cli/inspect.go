package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourpick/internal/colour"
)

type inspectOptions struct {
	format  outputFormat
	preview bool
	lighten float64
	darken  float64
	mix     string
	amount  float64
}

func newInspectCmd(global *globalOptions) *cobra.Command {
	opts := &inspectOptions{format: formatTable, amount: 0.5}

	cmd := &cobra.Command{
		Use:   "inspect <colour>...",
		Short: "Describe colours given as hex codes or names",
		Long: `Describe colours without touching the display: HSL, packed ARGB value,
darkness, 3-digit compactability and contrast against white and black.

Colours are hex codes (#rgb, #rrggbb, #aarrggbb) or common names such as
"teal" or "brightblue". Derived colours can be added with --lighten,
--darken and --mix; amounts are fractions between 0 and 1.

Examples:
  colourpick inspect '#0e737b'
  colourpick inspect '#0e737b' --lighten 0.2 --darken 0.2
  colourpick inspect red --mix blue --amount 0.25 -f json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("preview") {
				opts.preview = isTerminal(cmd)
			}
			palette, err := inspectPalette(args, opts)
			if err != nil {
				return err
			}
			global.logger.Debug("inspecting", "colours", palette.Len())

			output, err := formatPalette(palette, opts.format, opts.preview)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().VarP(&opts.format, "format", "f", "output format (hex, rgb, hsl, json, table)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews (default: on for terminals)")
	cmd.Flags().Float64Var(&opts.lighten, "lighten", 0, "also show each colour lightened toward white by this amount")
	cmd.Flags().Float64Var(&opts.darken, "darken", 0, "also show each colour darkened toward black by this amount")
	cmd.Flags().StringVar(&opts.mix, "mix", "", "also show each colour interpolated toward this colour")
	cmd.Flags().Float64Var(&opts.amount, "amount", 0.5, "interpolation amount for --mix")

	return cmd
}

// inspectPalette parses args and appends the requested derived colours after
// each one.
func inspectPalette(args []string, opts *inspectOptions) (*colour.Palette, error) {
	amounts := []struct {
		flag  string
		value float64
	}{
		{"lighten", opts.lighten},
		{"darken", opts.darken},
		{"amount", opts.amount},
	}
	for _, a := range amounts {
		if a.value < 0 || a.value > 1 {
			return nil, fmt.Errorf("--%s must be between 0 and 1, got %g", a.flag, a.value)
		}
	}

	var mixWith *colour.Colour
	if opts.mix != "" {
		c, err := colour.Parse(opts.mix)
		if err != nil {
			return nil, err
		}
		mixWith = &c
	}

	colours := make([]colour.Colour, 0, len(args))
	for _, arg := range args {
		c, err := colour.Parse(arg)
		if err != nil {
			return nil, err
		}
		colours = append(colours, c)
		if opts.lighten > 0 {
			colours = append(colours, c.Lighten(opts.lighten))
		}
		if opts.darken > 0 {
			colours = append(colours, c.Darken(opts.darken))
		}
		if mixWith != nil {
			colours = append(colours, c.Interpolate(*mixWith, opts.amount))
		}
	}

	return colour.NewPalette(colours), nil
}
