// Command markersheet renders a reference sheet of every plot symbol
// type: plain stroke, fill plus stroke, gradient fill, and drop shadow.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/disintegration/imaging"

	"github.com/gogpu/plotmark"
)

var symbolTypes = []plotmark.SymbolType{
	plotmark.SymbolRectangle,
	plotmark.SymbolEllipse,
	plotmark.SymbolCross,
	plotmark.SymbolPlus,
	plotmark.SymbolStar,
	plotmark.SymbolDiamond,
	plotmark.SymbolTriangle,
	plotmark.SymbolPentagon,
	plotmark.SymbolHexagon,
	plotmark.SymbolDash,
	plotmark.SymbolSnow,
}

func main() {
	var (
		cell   = flag.Int("cell", 48, "cell size in pixels")
		size   = flag.Float64("size", 24, "symbol size")
		scale  = flag.Float64("scale", 1, "rasterization scale")
		zoom   = flag.Int("zoom", 1, "integer upscale factor for the output image")
		output = flag.String("output", "markersheet.png", "output file")
	)
	flag.Parse()

	rows := []func(*plotmark.Symbol){
		styleStroke,
		styleFilled,
		styleGradient,
		styleShadowed,
	}

	width := *cell * len(symbolTypes)
	height := *cell * len(rows)
	dc := plotmark.NewContext(width, height)
	dc.ClearWithColor(plotmark.White)

	for row, style := range rows {
		for col, t := range symbolTypes {
			sym := plotmark.NewSymbol(t)
			sym.SetSize(plotmark.Sz(*size, *size))
			style(sym)

			center := plotmark.Pt(
				float64(col**cell)+float64(*cell)/2,
				float64(row**cell)+float64(*cell)/2,
			)
			if err := sym.DrawCached(dc, center, *scale, true); err != nil {
				log.Fatalf("draw %s: %v", t, err)
			}
		}
	}

	img := dc.Image()
	if *zoom > 1 {
		img = imaging.Resize(img, width**zoom, height**zoom, imaging.NearestNeighbor)
	}
	if err := imaging.Save(img, *output); err != nil {
		log.Fatalf("save %s: %v", *output, err)
	}
	fmt.Printf("wrote %s (%d symbol types x %d styles)\n", *output, len(symbolTypes), len(rows))
}

func styleStroke(s *plotmark.Symbol) {
	s.SetLineStyle(plotmark.NewLineStyle(1.5, plotmark.RGBA{R: 0.15, G: 0.25, B: 0.55, A: 1}))
}

func styleFilled(s *plotmark.Symbol) {
	s.SetLineStyle(plotmark.NewLineStyle(1.5, plotmark.RGBA{R: 0.1, G: 0.1, B: 0.1, A: 1}))
	s.SetFill(plotmark.NewSolidFill(plotmark.RGBA{R: 0.95, G: 0.65, B: 0.2, A: 1}))
}

func styleGradient(s *plotmark.Symbol) {
	s.SetLineStyle(plotmark.NewLineStyle(1, plotmark.RGBA{R: 0.1, G: 0.1, B: 0.1, A: 1}))
	s.SetFill(plotmark.NewLinearGradientFill(
		plotmark.Pt(0, 0), plotmark.Pt(0, 1),
		plotmark.ColorStop{Offset: 0, Color: plotmark.RGBA{R: 0.4, G: 0.75, B: 1, A: 1}},
		plotmark.ColorStop{Offset: 1, Color: plotmark.RGBA{R: 0.05, G: 0.25, B: 0.6, A: 1}},
	))
}

func styleShadowed(s *plotmark.Symbol) {
	s.SetLineStyle(plotmark.NewLineStyle(1.5, plotmark.RGBA{R: 0.1, G: 0.1, B: 0.1, A: 1}))
	s.SetFill(plotmark.NewSolidFill(plotmark.RGBA{R: 0.3, G: 0.7, B: 0.4, A: 1}))
	s.SetShadow(plotmark.NewShadow(2, 2, 3))
}
