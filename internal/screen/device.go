// Package screen implements the Uxn screen device: two compositing layers,
// pixel and sprite write primitives, system-palette resolution, and an RGB
// blit buffer produced on demand.
package screen

import (
	"encoding/binary"

	"github.com/uxngo/uxngo/internal/device"
)

const spriteSize1bpp = 8

const (
	layerBG = 0
	layerFG = 1
)

// PaletteSource supplies the System device's raw 4-color palette bytes
// (ports 0x8..0xd), without coupling the screen package to internal/uxn.
type PaletteSource interface {
	SystemPalette() [6]byte
}

// Device is the Uxn screen device.
type Device struct {
	vector [2]byte

	layers [2]*layer
	width  uint16
	height uint16

	dim [2][2]byte // raw big-endian bytes for width, height

	autoByte byte
	changed  bool

	targetLoc [2][2]byte // raw big-endian bytes for target x, y
	spriteAddr [2]byte

	lastPixelValue byte

	systemColorsRaw [6]byte
	systemColors    [4][3]byte

	spriteRepeat   byte
	autoIncAddress bool
	autoIncX       bool
	autoIncY       bool

	pixels []byte // RGB blit buffer, 3*width*height
}

// NewDevice constructs a screen of the given initial dimensions.
func NewDevice(width, height uint16) *Device {
	d := &Device{
		layers: [2]*layer{newLayer(width, height), newLayer(width, height)},
		width:  width,
		height: height,
		pixels: make([]byte, int(width)*int(height)*3),
	}
	binary.BigEndian.PutUint16(d.dim[0][:], width)
	binary.BigEndian.PutUint16(d.dim[1][:], height)
	d.changed = true
	return d
}

// Vector returns the screen's event vector address.
func (d *Device) Vector() uint16 {
	return binary.BigEndian.Uint16(d.vector[:])
}

// Dimensions returns the current width and height.
func (d *Device) Dimensions() (uint16, uint16) {
	return d.width, d.height
}

func (d *Device) targetX() uint16 { return binary.BigEndian.Uint16(d.targetLoc[0][:]) }
func (d *Device) targetY() uint16 { return binary.BigEndian.Uint16(d.targetLoc[1][:]) }
func (d *Device) setTargetX(x uint16) {
	binary.BigEndian.PutUint16(d.targetLoc[0][:], x)
}
func (d *Device) setTargetY(y uint16) {
	binary.BigEndian.PutUint16(d.targetLoc[1][:], y)
}
func (d *Device) spriteAddress() uint16 { return binary.BigEndian.Uint16(d.spriteAddr[:]) }
func (d *Device) setSpriteAddress(a uint16) {
	binary.BigEndian.PutUint16(d.spriteAddr[:], a)
}

// Read implements device.Device.
func (d *Device) Read(port byte) byte {
	switch port {
	case 0x0:
		return d.vector[0]
	case 0x1:
		return d.vector[1]
	case 0x2:
		return d.dim[0][0]
	case 0x3:
		return d.dim[0][1]
	case 0x4:
		return d.dim[1][0]
	case 0x5:
		return d.dim[1][1]
	case 0x6:
		return d.autoByte
	case 0x8:
		return d.targetLoc[0][0]
	case 0x9:
		return d.targetLoc[0][1]
	case 0xa:
		return d.targetLoc[1][0]
	case 0xb:
		return d.targetLoc[1][1]
	case 0xc:
		return d.spriteAddr[0]
	case 0xd:
		return d.spriteAddr[1]
	case 0xe:
		return d.lastPixelValue
	default:
		return 0
	}
}

// Write implements device.Device.
func (d *Device) Write(port byte, val byte, ram device.RAM) {
	switch port {
	case 0x0:
		d.vector[0] = val
	case 0x1:
		d.vector[1] = val
	case 0x2:
		d.dim[0][0] = val
	case 0x3:
		d.dim[0][1] = val
		d.resize()
	case 0x4:
		d.dim[1][0] = val
	case 0x5:
		d.dim[1][1] = val
		d.resize()
	case 0x6:
		d.autoByte = val
		d.setAuto(val)
	case 0x8:
		d.targetLoc[0][0] = val
	case 0x9:
		d.targetLoc[0][1] = val
	case 0xa:
		d.targetLoc[1][0] = val
	case 0xb:
		d.targetLoc[1][1] = val
	case 0xc:
		d.spriteAddr[0] = val
	case 0xd:
		d.spriteAddr[1] = val
	case 0xe:
		d.lastPixelValue = val
		d.pixelWrite(val)
	case 0xf:
		d.spritesWrite(val, ram)
	}
}

func (d *Device) resize() {
	d.width = binary.BigEndian.Uint16(d.dim[0][:])
	d.height = binary.BigEndian.Uint16(d.dim[1][:])
	d.layers = [2]*layer{newLayer(d.width, d.height), newLayer(d.width, d.height)}
	d.pixels = make([]byte, int(d.width)*int(d.height)*3)
	d.changed = true
}

func (d *Device) setAuto(val byte) {
	d.spriteRepeat = val >> 4
	d.autoIncAddress = val&0x04 != 0
	d.autoIncX = val&0x01 != 0
	d.autoIncY = val&0x02 != 0
}

func (d *Device) pixelWrite(val byte) {
	ly := layerBG
	if val&0x40 != 0 {
		ly = layerFG
	}
	color := ColorIndex(val & 0x3)

	tx, ty := d.targetX(), d.targetY()
	if d.layers[ly].setPixel(tx, ty, color) {
		d.changed = true
	}
	if d.autoIncX {
		d.setTargetX(tx + 1)
	}
	if d.autoIncY {
		d.setTargetY(ty + 1)
	}
}

func (d *Device) spritesWrite(val byte, ram device.RAM) {
	paletteChoice := val & 0xf
	flipX := val&0x10 != 0
	flipY := val&0x20 != 0
	twoBpp := val&0x80 != 0
	transparent := color0Transparent(paletteChoice)

	spriteAddr := d.spriteAddress()
	palette := getPalette(paletteChoice)

	targetX, targetY := d.targetX(), d.targetY()

	ly := layerBG
	if (val>>6)&1 != 0 {
		ly = layerFG
	}

	addressInc := uint16(0)
	switch {
	case d.autoIncAddress && twoBpp:
		addressInc = 16
	case d.autoIncAddress && !twoBpp:
		addressInc = 8
	}

	for i := 0; i < int(d.spriteRepeat)+1; i++ {
		d.spriteWrite(spriteAddr, twoBpp, ly, targetX, targetY, palette, transparent, flipX, flipY, ram)
		spriteAddr += addressInc

		if d.autoIncX {
			targetY += 8
		}
		if d.autoIncY {
			targetX += 8
		}
	}

	if d.autoIncAddress {
		d.setSpriteAddress(spriteAddr)
	}
	if d.autoIncX {
		d.setTargetX(d.targetX() + 8)
	}
	if d.autoIncY {
		d.setTargetY(d.targetY() + 8)
	}
}

func (d *Device) spriteWrite(spriteAddr uint16, twoBpp bool, ly int, targetX, targetY uint16,
	palette [4]ColorIndex, transparent bool, flipX, flipY bool, ram device.RAM) {

	low, err := ram.Read(spriteAddr, spriteSize1bpp)
	if err != nil {
		return
	}
	var high []byte
	if twoBpp {
		high, err = ram.Read(spriteAddr+spriteSize1bpp, spriteSize1bpp)
		if err != nil {
			return
		}
	} else {
		high = make([]byte, spriteSize1bpp)
	}

	currentY := targetY
	if flipY {
		currentY = targetY + 7
	}
	incX, incY := int32(1), int32(1)
	if flipX {
		incX = -1
	}
	if flipY {
		incY = -1
	}

	for row := 0; row < spriteSize1bpp; row++ {
		bitRow := low[row]
		bitRowHigher := high[row]

		currentX := targetX
		if flipX {
			currentX = targetX + 7
		}

		for bitIndex := 7; bitIndex >= 0; bitIndex-- {
			higherBit := (bitRowHigher >> uint(bitIndex)) & 1
			lowerBit := (bitRow >> uint(bitIndex)) & 1
			pixelVal := (higherBit << 1) | lowerBit

			if !(pixelVal == 0 && transparent) {
				color := palette[pixelVal]
				if d.layers[ly].setPixel(currentX, currentY, color) {
					d.changed = true
				}
			}

			currentX = uint16(int32(currentX) + incX)
		}

		currentY = uint16(int32(currentY) + incY)
	}
}

func (d *Device) updateSystemColors() {
	raw := d.systemColorsRaw
	d.systemColors[ColorZero] = [3]byte{(raw[0] >> 4) & 0xf, (raw[2] >> 4) & 0xf, (raw[4] >> 4) & 0xf}
	d.systemColors[ColorOne] = [3]byte{raw[0] & 0xf, raw[2] & 0xf, raw[4] & 0xf}
	d.systemColors[ColorTwo] = [3]byte{(raw[1] >> 4) & 0xf, (raw[3] >> 4) & 0xf, (raw[5] >> 4) & 0xf}
	d.systemColors[ColorThree] = [3]byte{raw[1] & 0xf, raw[3] & 0xf, raw[5] & 0xf}

	for i := range d.systemColors {
		for j := range d.systemColors[i] {
			c := d.systemColors[i][j]
			d.systemColors[i][j] = c | (c << 4)
		}
	}
}

// GetDrawRequired polls the system palette; if it changed, it is cached and
// the screen is marked dirty. Returns whether a redraw is needed.
func (d *Device) GetDrawRequired(system PaletteSource) bool {
	raw := system.SystemPalette()
	if raw != d.systemColorsRaw {
		d.systemColorsRaw = raw
		d.changed = true
		d.updateSystemColors()
	}
	return d.changed
}

// Draw flattens the two layers into the RGB blit buffer (foreground
// overrides background unless the foreground pixel is color index 0),
// invokes blit with the dimensions and buffer, and clears the dirty flag.
func (d *Device) Draw(blit func(width, height uint16, rgb []byte)) {
	i := 0
	for y := uint16(0); y < d.height; y++ {
		for x := uint16(0); x < d.width; x++ {
			fg := d.layers[layerFG].at(x, y)
			color := fg
			if fg == ColorZero {
				color = d.layers[layerBG].at(x, y)
			}
			rgb := d.systemColors[color]
			d.pixels[i] = rgb[0]
			d.pixels[i+1] = rgb[1]
			d.pixels[i+2] = rgb[2]
			i += 3
		}
	}
	blit(d.width, d.height, d.pixels)
	d.changed = false
}
