package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/ilcovid/oecdrt/internal/aggregate"
	"github.com/ilcovid/oecdrt/internal/config"
	"github.com/ilcovid/oecdrt/internal/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// footerHeight is the height in pixels of the footer strip.
const footerHeight = 24

// footer returns the text stamped below the charts.
func footer(cfg config.Config, rtRows []aggregate.Row) string {
	last := ""
	if len(rtRows) > 0 {
		last = rtRows[len(rtRows)-1].Date.Format(model.DateLayout)
	}
	return fmt.Sprintf("Data: %s. Last estimate: %s. Shaded: last %d days subject to reporting lag.",
		cfg.SourceURL, last, cfg.ReportingLagDays)
}

// compose draws left and right next to each other above the footer.
func compose(left, right image.Image, text string) image.Image {
	lb, rb := left.Bounds(), right.Bounds()
	height := max(lb.Dy(), rb.Dy())
	out := image.NewRGBA(image.Rect(0, 0, lb.Dx()+rb.Dx(), height+footerHeight))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, lb.Dx(), lb.Dy()), left, lb.Min, draw.Src)
	draw.Draw(out, image.Rect(lb.Dx(), 0, lb.Dx()+rb.Dx(), rb.Dy()), right, rb.Min, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.RGBA{R: 80, G: 80, B: 80, A: 255}),
		Face: face,
		Dot:  fixed.P(8, height+footerHeight-face.Metrics().Descent.Ceil()-5),
	}
	drawer.DrawString(text)
	return out
}

// WritePNG encodes img as PNG into the given path.
func WritePNG(path string, img image.Image) error {
	filep, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := png.Encode(filep, img); err != nil {
		filep.Close()
		return fmt.Errorf("render: %s: %w", path, err)
	}
	return filep.Close()
}
