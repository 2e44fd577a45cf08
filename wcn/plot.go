package wcn

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//ScatterPlot writes a predicted-vs-experimental B-factor scatter plot to filename
//(format decided by the extension: .png, .svg, .pdf...). Useful to eyeball whether
//a mediocre correlation comes from overall scatter or from a few outlier atoms.
func (r *Result) ScatterPlot(filename string) error {
	pts := make(plotter.XYs, len(r.BPredict))
	for i := range pts {
		pts[i].X = r.BPredict[i]
		pts[i].Y = r.BExper[i]
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("B-factor vs packing, CC=%.3f", r.CC)
	p.X.Label.Text = "1/WCN"
	p.Y.Label.Text = "B (experimental)"
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(s)
	return p.Save(14*vg.Centimeter, 14*vg.Centimeter, filename)
}
