package certificate

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// pngScale is the resolution factor of PNG certificates.
const pngScale = 2

var (
	backgroundColor = color.NRGBA{R: 248, G: 250, B: 252, A: 255}
	borderColor     = color.NRGBA{R: 30, G: 64, B: 175, A: 255}
	titleColor      = color.NRGBA{R: 30, G: 58, B: 138, A: 255}
	textColor       = color.NRGBA{R: 51, G: 65, B: 85, A: 255}
	lineColor       = color.NRGBA{R: 148, G: 163, B: 184, A: 255}
)

type pngRenderer struct {
	face font.Face
}

func NewPNGRenderer() Renderer { return pngRenderer{face: basicfont.Face7x13} }

func (pngRenderer) Format() string      { return FormatPNG }
func (pngRenderer) ContentType() string { return "image/png" }

func (r pngRenderer) Render(w io.Writer, cert Certificate) error {
	page := imaging.New(pageWidth, pageHeight, backgroundColor)

	// border
	const bw = 4
	inner := pageWidth - 2*margin
	innerH := pageHeight - 2*margin
	page = imaging.Paste(page, imaging.New(inner, bw, borderColor), image.Pt(margin, margin))
	page = imaging.Paste(page, imaging.New(inner, bw, borderColor), image.Pt(margin, margin+innerH-bw))
	page = imaging.Paste(page, imaging.New(bw, innerH, borderColor), image.Pt(margin, margin))
	page = imaging.Paste(page, imaging.New(bw, innerH, borderColor), image.Pt(margin+inner-bw, margin))

	for _, ln := range cert.lines() {
		col := textColor
		if ln.bold {
			col = titleColor
		}
		page = r.drawCentered(page, ln.text, ln.size, col, pageWidth/2, ln.y)
	}

	// signature & seal
	page = imaging.Paste(page, imaging.New(180, 2, lineColor), image.Pt(90, footerY))
	page = r.drawCentered(page, "School Principal", 12, textColor, 180, footerY+20)
	page = r.drawCentered(page, "School Seal", 10, textColor, pageWidth-180, footerY+20)

	out := imaging.Resize(page, pageWidth*pngScale, pageHeight*pngScale, imaging.Lanczos)
	if err := imaging.Encode(w, out, imaging.PNG); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	return nil
}

// drawCentered draws text horizontally centered on cx with its baseline at y.
// The bitmap face is scaled up to approach size.
func (r pngRenderer) drawCentered(page *image.NRGBA, text string, size float64, col color.Color, cx, y float64) *image.NRGBA {
	if text == "" {
		return page
	}
	metrics := r.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := metrics.Height.Ceil()
	width := font.MeasureString(r.face, text).Ceil()

	glyphs := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(col),
		Face: r.face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)

	scale := size / float64(height)
	if scale < 1 {
		scale = 1
	}
	sw, sh := int(float64(width)*scale), int(float64(height)*scale)
	scaled := imaging.Resize(glyphs, sw, sh, imaging.NearestNeighbor)

	pos := image.Pt(int(cx)-sw/2, int(y)-int(float64(ascent)*scale))
	return imaging.Overlay(page, scaled, pos, 1)
}
