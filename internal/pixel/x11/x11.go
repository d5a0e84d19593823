// Package x11 implements pixel.Source on top of an X11 connection.
package x11

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/jmylchreest/colourpick/internal/pixel"
)

// allPlanes requests every bit plane of the drawable.
const allPlanes = math.MaxUint32

// Conn is a connection to an X server.
type Conn struct {
	conn   *xgb.Conn
	root   xproto.Window
	logger hclog.Logger
}

// Connect dials the X server named by display. An empty display uses $DISPLAY.
func Connect(display string, logger hclog.Logger) (*Conn, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("x11")

	// xgb reports protocol warnings through its own package logger.
	xgb.Logger = logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	c, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server %q: %w", display, err)
	}

	screen := xproto.Setup(c).DefaultScreen(c)
	logger.Debug("connected", "display", display,
		"root", fmt.Sprintf("%#x", uint32(screen.Root)),
		"width", screen.WidthInPixels, "height", screen.HeightInPixels,
		"depth", screen.RootDepth)

	return &Conn{conn: c, root: screen.Root, logger: logger}, nil
}

// Root returns the root window of the default screen.
func (c *Conn) Root() pixel.Window {
	return pixel.Window(c.root)
}

// GetImage implements pixel.Source with a ZPixmap GetImage request.
func (c *Conn) GetImage(window pixel.Window, rect pixel.Rect) (pixel.Image, error) {
	c.logger.Trace("get image", "window", fmt.Sprintf("%#x", uint32(window)),
		"x", rect.X, "y", rect.Y, "width", rect.Width, "height", rect.Height)

	reply, err := xproto.GetImage(c.conn, xproto.ImageFormatZPixmap, xproto.Drawable(window),
		rect.X, rect.Y, rect.Width, rect.Height, allPlanes).Reply()
	if err != nil {
		return pixel.Image{}, err
	}

	return pixel.Image{Depth: reply.Depth, Data: reply.Data}, nil
}

// Geometry returns the window's size as a rect at its own origin.
func (c *Conn) Geometry(window pixel.Window) (pixel.Rect, error) {
	reply, err := xproto.GetGeometry(c.conn, xproto.Drawable(window)).Reply()
	if err != nil {
		return pixel.Rect{}, fmt.Errorf("failed to get geometry of window %#x: %w", uint32(window), err)
	}

	return pixel.Rect{Width: reply.Width, Height: reply.Height}, nil
}

// Pointer returns the pointer position relative to window.
func (c *Conn) Pointer(window pixel.Window) (pixel.Point, error) {
	reply, err := xproto.QueryPointer(c.conn, xproto.Window(window)).Reply()
	if err != nil {
		return pixel.Point{}, fmt.Errorf("failed to query pointer: %w", err)
	}
	if !reply.SameScreen {
		return pixel.Point{}, fmt.Errorf("pointer is not on the same screen as window %#x", uint32(window))
	}

	return pixel.Point{X: reply.WinX, Y: reply.WinY}, nil
}

// Close closes the connection.
func (c *Conn) Close() {
	c.conn.Close()
}
