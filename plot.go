/*
 * plot.go, part of godiffusion.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package diffusion

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//PlotMSD saves a plot of an MSD curve to a PNG file. If fit is not nil, the
//fitted line is drawn over its window and the diffusion coefficient goes in
//the title.
func PlotMSD(msd, time []float64, fit *Fit, filename string) error {
	if len(msd) != len(time) {
		return shapeError("goDiffusion/PlotMSD: MSD curve and time axis lengths differ: %d vs %d", len(msd), len(time))
	}
	p := plot.New()
	p.Title.Text = "Mean squared displacement"
	p.X.Label.Text = "t (ps)"
	p.Y.Label.Text = "MSD (nm^2)"
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(msd))
	for i := range msd {
		pts[i].X = time[i]
		pts[i].Y = msd[i]
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(curve)
	p.Legend.Add("MSD", curve)
	if fit != nil {
		wpts := make(plotter.XYs, 2)
		wpts[0].X = time[fit.Lo]
		wpts[0].Y = fit.Intercept + fit.Slope*time[fit.Lo]
		wpts[1].X = time[fit.Hi-1]
		wpts[1].Y = fit.Intercept + fit.Slope*time[fit.Hi-1]
		line, err := plotter.NewLine(wpts)
		if err != nil {
			return err
		}
		line.Color = color.RGBA{R: 255, A: 255}
		p.Add(line)
		p.Legend.Add("fit", line)
		p.Title.Text = fmt.Sprintf("MSD, D = %.3g cm^2/s", fit.D)
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
