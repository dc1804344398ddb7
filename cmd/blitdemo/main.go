// Command blitdemo composites sprite images over a background with the
// blit alpha-tested row compositor and writes the result as PNG.
//
// Input images are converted to ARGB1555 first, so the output shows
// exactly what a framebuffer in that format would hold.
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/blit"
)

type CLI struct {
	Background string   `arg:"" help:"Background image (png, gif, jpeg, bmp, tiff, webp)." type:"existingfile"`
	Sprite     []string `help:"Sprite images, composited in order." type:"existingfile"`
	At         []string `help:"Sprite positions as X,Y pairs, one per sprite. Defaults to 0,0."`
	Out        string   `help:"Output PNG path." default:"out.png"`
	Upscale    int      `help:"Integer nearest-neighbor upscale factor for the output." default:"1"`
	Verbose    bool     `help:"Enable debug logging."`
}

func (c *CLI) Validate() error {
	if len(c.At) > len(c.Sprite) {
		return fmt.Errorf("more positions (%d) than sprites (%d)", len(c.At), len(c.Sprite))
	}
	for _, at := range c.At {
		var x, y int
		if _, err := fmt.Sscanf(at, "%d,%d", &x, &y); err != nil {
			return fmt.Errorf("invalid position %q: want X,Y", at)
		}
	}
	if c.Upscale < 1 {
		return fmt.Errorf("invalid upscale factor %d", c.Upscale)
	}
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("blitdemo"),
		kong.Description("Composite sprites over a background in ARGB1555."))
	kctx.FatalIfErrorf(run(&cli))
}

func run(cli *CLI) error {
	if cli.Verbose {
		blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	bg, err := loadImage(cli.Background)
	if err != nil {
		return err
	}
	dst := blit.FromImage(bg)

	for i, path := range cli.Sprite {
		src, err := loadImage(path)
		if err != nil {
			return err
		}
		sprite := blit.FromImage(src)

		var x, y int
		if i < len(cli.At) {
			fmt.Sscanf(cli.At[i], "%d,%d", &x, &y)
		}
		dr := sprite.Rect.Sub(sprite.Rect.Min).Add(image.Pt(x, y))
		dst.DrawOver(dr, sprite, sprite.Rect.Min)
		slog.Debug("composited sprite", "path", path, "at", image.Pt(x, y))
	}

	out := dst
	if cli.Upscale > 1 {
		b := dst.Bounds()
		out = blit.NewImage(image.Rect(0, 0, b.Dx()*cli.Upscale, b.Dy()*cli.Upscale))
		out.Scale(out.Bounds(), dst, nil)
	}

	f, err := os.Create(cli.Out)
	if err != nil {
		return fmt.Errorf("create %q: %w", cli.Out, err)
	}
	if err := png.Encode(f, out); err != nil {
		f.Close()
		return fmt.Errorf("encode %q: %w", cli.Out, err)
	}
	return f.Close()
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	slog.Debug("loaded image", "path", path, "format", format, "bounds", img.Bounds())
	return img, nil
}
