// Package display wraps a pixelgl window for the windowed Uxn emulator,
// translating the screen device's RGB blit buffer into a drawn sprite and
// polling keyboard/mouse state into controller- and mouse-device events.
package display

import (
	"fmt"
	"image/color"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/uxngo/uxngo/internal/controller"
	"github.com/uxngo/uxngo/internal/mouse"
)

// Window embeds a pixelgl window opened at the Uxn screen device's initial
// dimensions. The window keeps that size; only the backing picture is
// re-allocated when the blitted dimensions change.
type Window struct {
	*pixelgl.Window

	width, height uint16
	picture       *pixel.PictureData
	sprite        *pixel.Sprite
}

// NewWindow opens a fixed-size, non-resizable window for the given initial
// screen dimensions.
func NewWindow(title string, width, height uint16) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:     title,
		Bounds:    pixel.R(0, 0, float64(width), float64(height)),
		VSync:     true,
		Resizable: false,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %v", err)
	}
	win := &Window{Window: w}
	win.allocate(width, height)
	return win, nil
}

func (w *Window) allocate(width, height uint16) {
	rect := pixel.R(0, 0, float64(width), float64(height))
	w.picture = &pixel.PictureData{
		Pix:    make([]color.RGBA, int(width)*int(height)),
		Stride: int(width),
		Rect:   rect,
	}
	w.sprite = pixel.NewSprite(w.picture, rect)
	w.width, w.height = width, height
}

// Blit draws the screen device's flattened RGB buffer, re-allocating the
// backing picture if the dimensions have changed since the last call.
func (w *Window) Blit(width, height uint16, rgb []byte) {
	if width != w.width || height != w.height {
		w.allocate(width, height)
	}

	for y := uint16(0); y < height; y++ {
		srcRow := int(y) * int(width) * 3
		// pixel's picture data is indexed bottom-up; the screen device's
		// buffer is top-down, so rows are flipped on the way in.
		dstRow := int(height-1-y) * int(width)
		for x := uint16(0); x < width; x++ {
			i := srcRow + int(x)*3
			w.picture.Pix[dstRow+int(x)] = color.RGBA{R: rgb[i], G: rgb[i+1], B: rgb[i+2], A: 0xff}
		}
	}

	w.Clear(colornames.Black)
	w.sprite.Draw(w.Window, pixel.IM.Moved(w.Bounds().Center()))
}

var buttonKeys = map[pixelgl.Button]controller.Button{
	pixelgl.KeyZ:         controller.ButtonA,
	pixelgl.KeyX:         controller.ButtonB,
	pixelgl.KeyBackspace: controller.ButtonSelect,
	pixelgl.KeyEnter:     controller.ButtonStart,
	pixelgl.KeyUp:        controller.ButtonUp,
	pixelgl.KeyDown:      controller.ButtonDown,
	pixelgl.KeyLeft:      controller.ButtonLeft,
	pixelgl.KeyRight:     controller.ButtonRight,
}

// PollController reports buttons that were newly pressed or released this
// frame, for the caller to feed into a controller.Device.
func (w *Window) PollController() (pressed, released []controller.Button) {
	for key, button := range buttonKeys {
		if w.JustPressed(key) {
			pressed = append(pressed, button)
		}
		if w.JustReleased(key) {
			released = append(released, button)
		}
	}
	return pressed, released
}

// PollTypedKeys returns the ASCII characters typed this frame.
func (w *Window) PollTypedKeys() []byte {
	text := w.Typed()
	if text == "" {
		return nil
	}
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r < 0x80 {
			out = append(out, byte(r))
		}
	}
	return out
}

var mouseButtonKeys = map[pixelgl.Button]mouse.Button{
	pixelgl.MouseButtonLeft:   mouse.ButtonLeft,
	pixelgl.MouseButtonMiddle: mouse.ButtonMiddle,
	pixelgl.MouseButtonRight:  mouse.ButtonRight,
}

// PollMouse reports the current cursor position (in top-down screen
// coordinates), newly pressed/released buttons, and scroll delta.
func (w *Window) PollMouse() (x, y uint16, pressed, released []mouse.Button, scrollX, scrollY int16) {
	pos := w.MousePosition()
	x = uint16(pos.X)
	if pos.Y >= 0 && pos.Y <= float64(w.height) {
		y = w.height - uint16(pos.Y)
	}

	for key, button := range mouseButtonKeys {
		if w.JustPressed(key) {
			pressed = append(pressed, button)
		}
		if w.JustReleased(key) {
			released = append(released, button)
		}
	}

	scroll := w.MouseScroll()
	scrollX, scrollY = int16(scroll.X), int16(scroll.Y)

	return x, y, pressed, released, scrollX, scrollY
}
