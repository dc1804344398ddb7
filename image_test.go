package blit

import (
	"image"
	"image/color"
	"testing"
)

func TestImageSetAt(t *testing.T) {
	p := NewImage(image.Rect(0, 0, 4, 4))
	red := FromARGB8(0xFF, 0xFF, 0, 0)

	p.Set(1, 2, red)
	if got := p.At(1, 2); got != red {
		t.Errorf("At(1,2) = %v, want %v", got, red)
	}
	if got := p.At(0, 0); got != Pixel(0) {
		t.Errorf("At(0,0) = %v, want zero pixel", got)
	}

	// Out-of-bounds access is a no-op / zero pixel.
	p.Set(10, 10, red)
	if got := p.At(10, 10); got != Pixel(0) {
		t.Errorf("out-of-bounds At = %v", got)
	}
}

func TestImageRGBA64RoundTrip(t *testing.T) {
	p := NewImage(image.Rect(0, 0, 2, 2))
	p.SetRGBA64(0, 0, color.RGBA64{R: 0xFFFF, G: 0x8000, B: 0, A: 0xFFFF})

	got := p.RGBA64At(0, 0)
	if got.A != 0xFFFF {
		t.Errorf("alpha = %#.4x, want opaque", got.A)
	}
	if got.R != 0xFFFF {
		t.Errorf("red = %#.4x, want full scale", got.R)
	}
	// 0x80 truncates to 5-bit 0x10, which replicates back to 0x8484.
	if got.G != 0x8484 {
		t.Errorf("green = %#.4x, want 0x8484", got.G)
	}

	if got := p.RGBA64At(5, 5); got != (color.RGBA64{}) {
		t.Errorf("out-of-bounds RGBA64At = %v", got)
	}
}

func TestImagePixOffsetWithOffsetBounds(t *testing.T) {
	p := NewImage(image.Rect(10, 20, 14, 24))
	if got := p.PixOffset(10, 20); got != 0 {
		t.Errorf("PixOffset(min) = %d, want 0", got)
	}
	if got := p.PixOffset(13, 21); got != 1*4+3 {
		t.Errorf("PixOffset(13,21) = %d, want 7", got)
	}
}

func TestImageFill(t *testing.T) {
	p := NewImage(image.Rect(0, 0, 8, 8))
	px := FromARGB8(0xFF, 0, 0xFF, 0)

	p.Fill(image.Rect(2, 2, 6, 6), px)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := Pixel(0)
			if x >= 2 && x < 6 && y >= 2 && y < 6 {
				want = px
			}
			if got := p.Pix[p.PixOffset(x, y)]; got != want {
				t.Fatalf("pixel (%d,%d) = %#.4x, want %#.4x", x, y, uint16(got), uint16(want))
			}
		}
	}

	// Fill clips to the image bounds.
	p.Fill(image.Rect(-10, -10, 100, 1), px)
	if got := p.Pix[p.PixOffset(7, 0)]; got != px {
		t.Errorf("clipped fill missed (7,0)")
	}
}

func newCheckerSprite(w, h int) *Image {
	s := NewImage(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				s.Pix[s.PixOffset(x, y)] = AlphaMask | Pixel(x+y*w)
			} else {
				// Transparent but with color bits set; must not land.
				s.Pix[s.PixOffset(x, y)] = RGBMask
			}
		}
	}
	return s
}

func TestImageDrawOverAlphaTest(t *testing.T) {
	dst := NewImage(image.Rect(0, 0, 8, 8))
	bg := FromARGB8(0xFF, 0x20, 0x20, 0x20)
	dst.Fill(dst.Rect, bg)

	sprite := newCheckerSprite(4, 4)
	dst.DrawOver(image.Rect(2, 2, 6, 6), sprite, image.Point{})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got := dst.Pix[dst.PixOffset(x, y)]
			inside := x >= 2 && x < 6 && y >= 2 && y < 6
			if !inside {
				if got != bg {
					t.Fatalf("pixel (%d,%d) outside blit changed", x, y)
				}
				continue
			}
			sx, sy := x-2, y-2
			src := sprite.Pix[sprite.PixOffset(sx, sy)]
			want := bg
			if src.Opaque() {
				want = src
			}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %#.4x, want %#.4x", x, y, uint16(got), uint16(want))
			}
		}
	}
}

func TestImageDrawOverClipsDestination(t *testing.T) {
	dst := NewImage(image.Rect(0, 0, 4, 4))
	sprite := NewImage(image.Rect(0, 0, 4, 4))
	for i := range sprite.Pix {
		sprite.Pix[i] = AlphaMask | Pixel(i)
	}

	// Sprite hangs off the top-left corner; only the overlap lands.
	dst.DrawOver(sprite.Rect.Add(image.Pt(-2, -2)), sprite, image.Point{})

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := dst.Pix[dst.PixOffset(x, y)]
			var want Pixel
			if x < 2 && y < 2 {
				want = sprite.Pix[sprite.PixOffset(x+2, y+2)]
			}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %#.4x, want %#.4x", x, y, uint16(got), uint16(want))
			}
		}
	}

	// Fully disjoint draw is a no-op and must not panic.
	dst.DrawOver(sprite.Rect.Add(image.Pt(100, 100)), sprite, image.Point{})
}

func TestImageDrawOverClipsSource(t *testing.T) {
	dst := NewImage(image.Rect(0, 0, 8, 8))
	sprite := NewImage(image.Rect(0, 0, 2, 2))
	for i := range sprite.Pix {
		sprite.Pix[i] = AlphaMask | Pixel(i+1)
	}

	// dr asks for more than the sprite holds; the row length must stay
	// within the source buffer.
	dst.DrawOver(image.Rect(3, 3, 8, 8), sprite, image.Point{})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got := dst.Pix[dst.PixOffset(x, y)]
			var want Pixel
			if x >= 3 && x < 5 && y >= 3 && y < 5 {
				want = sprite.Pix[sprite.PixOffset(x-3, y-3)]
			}
			if got != want {
				t.Fatalf("pixel (%d,%d) = %#.4x, want %#.4x", x, y, uint16(got), uint16(want))
			}
		}
	}
}

func TestImageDrawOverGenericSource(t *testing.T) {
	dst := NewImage(image.Rect(0, 0, 4, 4))
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(1, 1, color.NRGBA{R: 0xFF, A: 0xFF})

	dst.DrawOver(dst.Rect, src, image.Point{})

	if got := dst.Pix[dst.PixOffset(1, 1)]; got != FromARGB8(0xFF, 0xFF, 0, 0) {
		t.Errorf("generic draw pixel = %#.4x", uint16(got))
	}
}

func TestImageSubImage(t *testing.T) {
	p := NewImage(image.Rect(0, 0, 8, 8))
	px := FromARGB8(0xFF, 0xFF, 0xFF, 0xFF)

	sub, ok := p.SubImage(image.Rect(2, 2, 6, 6)).(*Image)
	if !ok {
		t.Fatal("SubImage did not return *Image")
	}
	if sub.Bounds() != image.Rect(2, 2, 6, 6) {
		t.Errorf("sub bounds = %v", sub.Bounds())
	}

	// Pixels are shared with the parent.
	sub.Set(3, 3, px)
	if got := p.Pix[p.PixOffset(3, 3)]; got != px {
		t.Error("write through sub image not visible in parent")
	}

	if got := p.SubImage(image.Rect(100, 100, 200, 200)).Bounds(); !got.Empty() {
		t.Errorf("disjoint SubImage bounds = %v", got)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0xFF, G: 0x80, B: 0x10, A: 0xFF})
	src.SetNRGBA(1, 0, color.NRGBA{R: 0xFF, A: 0x10}) // below alpha threshold

	got := FromImage(src)
	if want := FromARGB8(0xFF, 0xFF, 0x80, 0x10); got.Pix[0] != want {
		t.Errorf("pixel 0 = %#.4x, want %#.4x", uint16(got.Pix[0]), uint16(want))
	}
	if got.Pix[1].Opaque() {
		t.Errorf("pixel 1 should be transparent, got %#.4x", uint16(got.Pix[1]))
	}
}

func TestImageScaleNearest(t *testing.T) {
	src := NewImage(image.Rect(0, 0, 2, 2))
	a := FromARGB8(0xFF, 0xFF, 0, 0)
	b := FromARGB8(0xFF, 0, 0, 0xFF)
	src.Pix = []Pixel{a, b, b, a}

	dst := NewImage(image.Rect(0, 0, 4, 4))
	dst.Scale(dst.Rect, src, nil)

	// Nearest-neighbor doubling: each source pixel becomes a 2x2 block.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := a
			if (x < 2) != (y < 2) {
				want = b
			}
			if got := dst.Pix[dst.PixOffset(x, y)]; got != want {
				t.Fatalf("pixel (%d,%d) = %#.4x, want %#.4x", x, y, uint16(got), uint16(want))
			}
		}
	}
}
