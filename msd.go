/*
 * msd.go, part of godiffusion.
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
	v3 "github.com/rmera/gochem/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Lags returns the set of time-lag separations, in frames, at which the MSD is
//evaluated for a trajectory of the given length: 0, stepJump, 2*stepJump...
//up to, and excluding, frames-startFrame. The first startFrame frames are
//skipped entirely, so a lag equal to the usable span, which would leave no
//frame pair to average over, never appears.
func Lags(frames, stepJump, startFrame int) ([]int, error) {
	if stepJump < 1 {
		return nil, rangeError("goDiffusion/Lags: stepJump must be at least 1, got %d", stepJump)
	}
	if startFrame < 0 {
		return nil, rangeError("goDiffusion/Lags: startFrame must be non-negative, got %d", startFrame)
	}
	if startFrame >= frames {
		return nil, rangeError("goDiffusion/Lags: startFrame (%d) must be smaller than the number of frames (%d)", startFrame, frames)
	}
	usable := frames - startFrame
	lags := make([]int, 0, (usable+stepJump-1)/stepJump)
	for l := 0; l < usable; l += stepJump {
		lags = append(lags, l)
	}
	return lags, nil
}

//LagTimes converts a lag set to physical times given dt, the time separating
//two consecutive frames (normally, in ps).
func LagTimes(lags []int, dt float64) []float64 {
	times := make([]float64, len(lags))
	for i, l := range lags {
		times[i] = float64(l) * dt
	}
	return times
}

//MSD computes the mean squared displacement of a trajectory, given as a slice
//of Natoms x 3 coordinate matrices, one per frame. For each lag L in the lag
//set (see Lags) the squared displacements between every pair of frames
//separated by L, for every atom and every Cartesian component, are averaged
//and multiplied by 3, the usual 3D convention. MSD returns a vector with one
//value per lag, in increasing lag order, and a matrix with one row per atom
//and one column per lag containing the same average restricted to each atom.
//The units are the square of whatever unit the coordinates are in.
//
//Coordinates must be unwrapped: displacements across periodic boundaries are
//not corrected for, and will inflate the result.
func MSD(traj []*v3.Matrix, stepJump, startFrame int) ([]float64, *mat.Dense, error) {
	natoms, err := checkFrames(traj)
	if err != nil {
		err.Decorate("MSD")
		return nil, nil, err
	}
	lags, err2 := Lags(len(traj), stepJump, startFrame)
	if err2 != nil {
		return nil, nil, errDecorate(err2, "MSD")
	}
	msd := make([]float64, len(lags))
	atomic := mat.NewDense(natoms, len(lags), nil)
	diff := v3.Zeros(natoms)
	sums := make([]float64, natoms)
	for c, lag := range lags {
		lagColumn(traj, lag, startFrame, c, msd, atomic, diff, sums)
	}
	return msd, atomic, nil
}

//lagColumn fills the c-th column of the outputs: the average over the frame
//pairs separated by lag, for all atoms (msd) and for each atom (atomic).
//diff and sums are scratch space, an Natoms x 3 matrix and an Natoms slice.
func lagColumn(traj []*v3.Matrix, lag, startFrame, c int, msd []float64, atomic *mat.Dense, diff *v3.Matrix, sums []float64) {
	for i := range sums {
		sums[i] = 0
	}
	end := len(traj) - lag
	for i := startFrame; i < end; i++ {
		diff.Sub(traj[i], traj[i+lag])
		diff.Dense.MulElem(diff.Dense, diff.Dense)
		for a := range sums {
			sums[a] += floats.Sum(diff.RawRowView(a))
		}
	}
	pairs := end - startFrame //always >= 1, the lag set excludes the usable span
	natoms := len(sums)
	//mean over every (pair, atom, component) squared displacement, times 3:
	//the sum-of-3-components convention for the 3D MSD.
	msd[c] = 3 * floats.Sum(sums) / float64(pairs*natoms*3)
	for a := 0; a < natoms; a++ {
		atomic.Set(a, c, 3*sums[a]/float64(pairs*3))
	}
}

//checkFrames returns the number of atoms per frame, or an error if the
//trajectory is empty or its frames don't share that number.
func checkFrames(traj []*v3.Matrix) (int, Error) {
	if len(traj) == 0 {
		return 0, shapeError("goDiffusion: empty trajectory")
	}
	natoms := -1
	for i, f := range traj {
		if f == nil {
			return 0, shapeError("goDiffusion: nil frame %d in trajectory", i)
		}
		r, c := f.Dims()
		if natoms < 0 {
			natoms = r
		}
		if r != natoms || c != 3 {
			return 0, shapeError("goDiffusion: frame %d is %dx%d, want %dx3", i, r, c, natoms)
		}
	}
	if natoms < 1 {
		return 0, shapeError("goDiffusion: frames contain no atoms")
	}
	return natoms, nil
}

//errDecorate asserts that err implements Error, decorates it with the
//caller's name and returns it. It panics on a non-Error error, as those
//can only come from a bug in this library.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
