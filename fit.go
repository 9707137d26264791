/*
 * fit.go, part of godiffusion.
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
	"math"

	"gonum.org/v1/gonum/stat"
)

//Default fractional bounds for the fit window. They exclude the ballistic
//regime at small lags and the poorly-averaged tail at large lags.
const (
	DefLowerFrac = 0.25
	DefUpperFrac = 0.50
)

//D2CGS converts a diffusion coefficient from nm^2/ps to cm^2/s
//(1e14 cm^2/nm^2 over 1e12 ps/s).
const D2CGS = 100.0

//Fit holds the result of fitting the diffusive regime of an MSD curve.
type Fit struct {
	D         float64 //diffusion coefficient, cm^2/s
	Slope     float64 //of the fitted line, nm^2/ps
	Intercept float64 //of the fitted line, nm^2
	Lo, Hi    int     //the [Lo,Hi) window of the curve used for the fit
}

//String returns a string representation of the Fit object.
func (F *Fit) String() string {
	return fmt.Sprintf("D: %g cm^2/s, slope: %g, intercept: %g, window: [%d,%d)", F.D, F.Slope, F.Intercept, F.Lo, F.Hi)
}

//FitD obtains the self-diffusion coefficient, in cm^2/s, from an MSD curve,
//in nm^2, and its time axis, in ps. A first-degree polynomial is fitted, by
//ordinary least squares, to the subrange of the curve delimited by the two
//fractions in frange (DefLowerFrac and DefUpperFrac if not given) applied to
//the curve's length; the Einstein relation for 3 dimensions, MSD = 6Dt, then
//gives D as the slope over 6, which is converted from nm^2/ps to cm^2/s.
func FitD(msd, time []float64, frange ...float64) (float64, error) {
	f, err := FitDFull(msd, time, frange...)
	if err != nil {
		return 0, errDecorate(err, "FitD")
	}
	return f.D, nil
}

//FitDFull works as FitD but returns the full fit: coefficient, line
//parameters and the window employed, for reporting or plotting.
func FitDFull(msd, time []float64, frange ...float64) (*Fit, error) {
	if len(msd) != len(time) {
		return nil, shapeError("goDiffusion/FitDFull: MSD curve and time axis lengths differ: %d vs %d", len(msd), len(time))
	}
	lower, upper := DefLowerFrac, DefUpperFrac
	switch len(frange) {
	case 0:
	case 2:
		lower, upper = frange[0], frange[1]
	default:
		return nil, rangeError("goDiffusion/FitDFull: frange must be a (lower, upper) pair, got %d values", len(frange))
	}
	if lower < 0 || upper > 1 {
		return nil, rangeError("goDiffusion/FitDFull: fractional window [%g,%g] out of [0,1]", lower, upper)
	}
	if lower > upper {
		return nil, rangeError("goDiffusion/FitDFull: inverted fractional window [%g,%g]", lower, upper)
	}
	n := float64(len(msd))
	lo := int(math.Round(lower * n))
	hi := int(math.Round(upper * n))
	if hi-lo < 2 {
		return nil, dataError("goDiffusion/FitDFull: fit window [%d,%d) has %d points, need at least 2", lo, hi, hi-lo)
	}
	intercept, slope := stat.LinearRegression(time[lo:hi], msd[lo:hi], nil, false)
	return &Fit{D: slope / 6 * D2CGS, Slope: slope, Intercept: intercept, Lo: lo, Hi: hi}, nil
}
