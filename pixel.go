package blit

import "image/color"

// Pixel layout: ARGB1555. One alpha bit in the top bit, then 5 bits
// each of red, green and blue packed into a 16-bit word.
const (
	storageBits = 16

	alphaBits  = 1
	alphaShift = 15
	redBits    = 5
	redShift   = 10
	greenBits  = 5
	greenShift = 5
	blueBits   = 5
	blueShift  = 0
)

// Layout validation. Each constant fails to compile (constant overflows
// uint) if the channel widths overflow the storage word or a channel
// has zero width.
const (
	_ uint = storageBits - (alphaBits + redBits + greenBits + blueBits)
	_ uint = alphaBits - 1
	_ uint = redBits - 1
	_ uint = greenBits - 1
	_ uint = blueBits - 1
)

// Pixel is a single packed ARGB1555 pixel. It is a plain value with no
// identity beyond its bit pattern; copying is free.
type Pixel uint16

// AlphaMask selects the alpha bits of a Pixel.
// RGBMask selects the color bits, excluding alpha and padding.
const (
	AlphaMask Pixel = ((1 << alphaBits) - 1) << alphaShift
	RGBMask   Pixel = ((1<<redBits)-1)<<redShift |
		((1<<greenBits)-1)<<greenShift |
		((1<<blueBits)-1)<<blueShift
)

// FromARGB8 packs 8-bit channel values into a Pixel.
//
// Each channel is quantized by right-shift truncation to its stored
// width: the low-order precision bits are discarded, not rounded. An
// 8-bit alpha of 0x80 or above sets the alpha bit.
func FromARGB8(a, r, g, b uint8) Pixel {
	return Pixel(a>>(8-alphaBits))<<alphaShift |
		Pixel(r>>(8-redBits))<<redShift |
		Pixel(g>>(8-greenBits))<<greenShift |
		Pixel(b>>(8-blueBits))<<blueShift
}

// IsZero reports whether no bit of the pixel is set.
func (p Pixel) IsZero() bool {
	return p == 0
}

// Opaque reports whether the pixel's alpha bit is set. CompositeRow
// copies exactly the source pixels for which Opaque is true.
func (p Pixel) Opaque() bool {
	return p&AlphaMask != 0
}

// Alpha returns the stored alpha value at its native width (0 or 1).
func (p Pixel) Alpha() uint8 {
	return uint8(p >> alphaShift & (1<<alphaBits - 1))
}

// Red returns the stored red value at its native 5-bit width.
func (p Pixel) Red() uint8 {
	return uint8(p >> redShift & (1<<redBits - 1))
}

// Green returns the stored green value at its native 5-bit width.
func (p Pixel) Green() uint8 {
	return uint8(p >> greenShift & (1<<greenBits - 1))
}

// Blue returns the stored blue value at its native 5-bit width.
func (p Pixel) Blue() uint8 {
	return uint8(p >> blueShift & (1<<blueBits - 1))
}

// RGBA implements [color.Color]. Each 5-bit channel expands to 8 bits
// by bit replication so that full-scale values map to 0xFF exactly;
// the single alpha bit expands to fully opaque or fully transparent.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r8 := p.Red()<<3 | p.Red()>>2
	g8 := p.Green()<<3 | p.Green()>>2
	b8 := p.Blue()<<3 | p.Blue()>>2

	r = uint32(r8) * 0x101
	g = uint32(g8) * 0x101
	b = uint32(b8) * 0x101
	if p.Opaque() {
		a = 0xFFFF
	}
	// color.Color requires alpha-premultiplied values. With a 1-bit
	// alpha the premultiplied color is either the color itself or zero.
	if a == 0 {
		return 0, 0, 0, 0
	}
	return r, g, b, a
}

// PixelModel converts arbitrary colors to Pixel via [FromARGB8].
var PixelModel color.Model = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, a := c.RGBA()
	return FromARGB8(uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
