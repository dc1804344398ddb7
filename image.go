package blit

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Image is an in-memory ARGB1555 framebuffer. It implements
// [draw.Image] and [draw.RGBA64Image] so it works with the standard
// library and golang.org/x/image drawing code, while DrawOver provides
// the alpha-tested row fast path for Image-to-Image blits.
type Image struct {
	Pix    []Pixel
	Stride int
	Rect   image.Rectangle
}

// NewImage creates an Image with the given bounds.
func NewImage(r image.Rectangle) *Image {
	return &Image{
		Pix:    make([]Pixel, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Image) ColorModel() color.Model {
	return PixelModel
}

// PixOffset returns the index into Pix of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	off := image.Pt(x, y).Sub(p.Rect.Min)
	return off.Y*p.Stride + off.X
}

func (p *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(p.Rect) {
		return Pixel(0)
	}
	return p.Pix[p.PixOffset(x, y)]
}

func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = pixelModel(c).(Pixel)
}

func (p *Image) RGBA64At(x, y int) color.RGBA64 {
	if !(image.Point{x, y}).In(p.Rect) {
		return color.RGBA64{}
	}
	r, g, b, a := p.Pix[p.PixOffset(x, y)].RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

func (p *Image) SetRGBA64(x, y int, c color.RGBA64) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	px := FromARGB8(uint8(c.A>>8), uint8(c.R>>8), uint8(c.G>>8), uint8(c.B>>8))
	p.Pix[p.PixOffset(x, y)] = px
}

// SubImage returns an image sharing pixels with p, visible through r.
func (p *Image) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return new(Image)
	}
	start := p.PixOffset(r.Min.X, r.Min.Y)
	end := p.PixOffset(r.Max.X, r.Max.Y-1)
	return &Image{
		Pix:    p.Pix[start:end],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Fill sets every pixel of dr (clipped to the image bounds) to px.
func (p *Image) Fill(dr image.Rectangle, px Pixel) {
	clip := FromImageRect(dr).Intersect(FromImageRect(p.Rect))
	if clip.Empty() {
		return
	}
	for y := 0; y < int(clip.H); y++ {
		off := p.PixOffset(int(clip.Pos.X), int(clip.Pos.Y)+y)
		row := p.Pix[off : off+int(clip.W)]
		for x := range row {
			row[x] = px
		}
	}
}

// DrawOver draws src into the rectangle dr of p, reading src starting
// at sp. For *Image sources the blit is alpha-tested per pixel via
// [CompositeRow]: source pixels with a clear alpha bit leave the
// destination untouched. Other sources fall back to [draw.Draw] with
// the Over operator.
//
// dr is clipped against both images, so the row length handed to
// CompositeRow never exceeds either buffer.
func (p *Image) DrawOver(dr image.Rectangle, src image.Image, sp image.Point) {
	clip := FromImageRect(dr).Intersect(FromImageRect(p.Rect))

	if img, ok := src.(*Image); ok {
		// Clip against the source bounds translated into destination
		// space, then derive the source origin from the clipped rect.
		off := Pt(int32(dr.Min.X-sp.X), int32(dr.Min.Y-sp.Y))
		clip = clip.Intersect(FromImageRect(img.Rect).Add(off))
		if clip.Empty() {
			return
		}
		sx := sp.X + int(clip.Pos.X) - dr.Min.X
		sy := sp.Y + int(clip.Pos.Y) - dr.Min.Y
		w := int(clip.W)
		for y := 0; y < int(clip.H); y++ {
			do := p.PixOffset(int(clip.Pos.X), int(clip.Pos.Y)+y)
			so := img.PixOffset(sx, sy+y)
			CompositeRow(p.Pix[do:do+w], img.Pix[so:so+w], w)
		}
		return
	}

	ir := clip.ImageRect()
	if ir.Empty() {
		return
	}
	Logger().Debug("blit: DrawOver generic fallback", "bounds", ir)
	sp = sp.Add(ir.Min.Sub(dr.Min))
	draw.Draw(p, ir, src, sp, draw.Over)
}

// FromImage converts an arbitrary image to a new ARGB1555 Image with
// the same bounds. Channels are quantized through [FromARGB8]; alpha
// of half scale or above maps to opaque.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := NewImage(b)
	if rgba64, ok := src.(image.RGBA64Image); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.SetRGBA64(x, y, rgba64.RGBA64At(x, y))
			}
		}
		return dst
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, b2, a := src.At(x, y).RGBA()
			dst.Pix[dst.PixOffset(x, y)] = FromARGB8(
				uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(b2>>8))
		}
	}
	return dst
}

// Scale draws src scaled to fill dr using a golang.org/x/image scaler.
// A nil scaler selects [xdraw.NearestNeighbor], which preserves hard
// pixel edges and introduces no intermediate colors.
func (p *Image) Scale(dr image.Rectangle, src image.Image, scaler xdraw.Scaler) {
	if scaler == nil {
		scaler = xdraw.NearestNeighbor
	}
	scaler.Scale(p, dr, src, src.Bounds(), xdraw.Over, nil)
}
