package assets

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var palette = map[byte]color.RGBA{
	'W': colornames.White,
	'C': colornames.Cyan,
	'G': colornames.Limegreen,
	'M': colornames.Magenta,
	'Y': colornames.Yellow,
	'O': colornames.Orange,
	'R': colornames.Red,
}

// Ship hull shared by every thrust frame
var shipHull = []string{
	".......WW.......",
	"......WWWW......",
	"......WCCW......",
	".....WWCCWW.....",
	".....WWWWWW.....",
	"....WWWWWWWW....",
	"...GWWWWWWWWG...",
	"..GGWWWWWWWWGG..",
	".GGGWWWWWWWWGGG.",
	"GGGGWWWWWWWWGGGG",
	"GG..WWW..WWW..GG",
	"G....W....W....G",
}

var shipFlames = [4][]string{
	{
		".....Y....Y.....",
		"....YOY..YOY....",
		".....R....R.....",
		"................",
	},
	{
		"....YYY..YYY....",
		"....OYO..OYO....",
		".....O....O.....",
		".....R....R.....",
	},
	{
		".....Y....Y.....",
		".....O....O.....",
		"................",
		"................",
	},
	{
		"....YYY..YYY....",
		".....R....R.....",
		".....O....O.....",
		"................",
	},
}

var patterns = map[string][]string{
	"invaderer": {
		"...........",
		"..M.....M..",
		"...M...M...",
		"..MMMMMMM..",
		".MM.MMM.MM.",
		"MMMMMMMMMMM",
		"M.MMMMMMM.M",
		"M.M.....M.M",
		"...MM.MM...",
		"...........",
		"...........",
	},
	"missile": {
		"YY",
		"WW",
		"WW",
		"WW",
		"WW",
		"WW",
		"OO",
		"RR",
	},
	"bomb": {
		"OO",
		"RR",
		"RR",
		"RR",
		"RR",
		"RR",
		"RR",
		"YY",
	},
}

const (
	bannerW    = 120
	bannerH    = 60
	bannerText = "GAME OVER"
)

// Builtin returns procedural pixel art by name
func Builtin(name string) (image.Image, error) {
	switch name {
	case "ship":
		return shipSheet(), nil
	case "gameover":
		return banner(), nil
	}

	rows, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuiltin, name)
	}
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	paint(img, rows, 0, 0)
	return img, nil
}

// shipSheet lays the four thrust frames out as a 2x2 sheet, frame 0 top-left
func shipSheet() *image.RGBA {
	fw := len(shipHull[0])
	fh := len(shipHull) + len(shipFlames[0])
	img := image.NewRGBA(image.Rect(0, 0, fw*2, fh*2))

	for i, flame := range shipFlames {
		ox := (i % 2) * fw
		oy := (i / 2) * fh
		paint(img, shipHull, ox, oy)
		paint(img, flame, ox, oy+len(shipHull))
	}
	return img
}

func banner() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, bannerW, bannerH))
	border := colornames.Red
	for x := 0; x < bannerW; x++ {
		img.Set(x, 0, border)
		img.Set(x, bannerH-1, border)
	}
	for y := 0; y < bannerH; y++ {
		img.Set(0, y, border)
		img.Set(bannerW-1, y, border)
	}

	face := basicfont.Face7x13
	width := font.MeasureString(face, bannerText).Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(colornames.White),
		Face: face,
		Dot:  fixed.P((bannerW-width)/2, (bannerH+face.Ascent-face.Descent)/2),
	}
	d.DrawString(bannerText)
	return img
}

func paint(img *image.RGBA, rows []string, ox, oy int) {
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if c, ok := palette[row[x]]; ok {
				img.SetRGBA(ox+x, oy+y, c)
			}
		}
	}
}
