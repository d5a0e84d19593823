package cli

import (
	"fmt"
	"strconv"

	"github.com/jmylchreest/colourpick/internal/pixel"
	"github.com/jmylchreest/colourpick/internal/pixel/file"
	"github.com/jmylchreest/colourpick/internal/pixel/x11"
)

// target is an opened pixel source plus the helpers commands need.
type target struct {
	source pixel.Source
	root   pixel.Window
	bounds func(pixel.Window) (pixel.Rect, error)
	cursor func(pixel.Window) (pixel.Point, error)
	close  func()
}

// openTarget opens the screenshot given by --from-image, or connects to the
// X server otherwise.
func openTarget(opts *globalOptions) (*target, error) {
	if opts.image != "" {
		opts.logger.Debug("loading screenshot", "path", opts.image)
		src, err := file.Load(opts.image)
		if err != nil {
			return nil, fmt.Errorf("failed to load image: %w", err)
		}
		return &target{
			source: src,
			bounds: func(pixel.Window) (pixel.Rect, error) { return src.Bounds(), nil },
			cursor: func(pixel.Window) (pixel.Point, error) {
				return pixel.Point{}, fmt.Errorf("--pointer needs an X server, not --from-image")
			},
			close: func() {},
		}, nil
	}

	conn, err := x11.Connect(opts.display, opts.logger)
	if err != nil {
		return nil, err
	}
	return &target{
		source: conn,
		root:   conn.Root(),
		bounds: conn.Geometry,
		cursor: conn.Pointer,
		close:  conn.Close,
	}, nil
}

// window resolves a --window value; empty means the root window.
func (t *target) window(s string) (pixel.Window, error) {
	if s == "" {
		return t.root, nil
	}
	return parseWindow(s)
}

// parseWindow parses a window id in decimal or 0x-prefixed hex, as printed
// by xwininfo and xdotool.
func parseWindow(s string) (pixel.Window, error) {
	id, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", s, err)
	}
	return pixel.Window(id), nil
}
