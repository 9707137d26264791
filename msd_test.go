/*
 * msd_test.go, part of godiffusion.
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
	"math/rand"
	"testing"

	v3 "github.com/rmera/gochem/v3"
	"gonum.org/v1/gonum/mat"
)

func frame(coords ...[3]float64) *v3.Matrix {
	m := v3.Zeros(len(coords))
	for i, c := range coords {
		m.Set(i, 0, c[0])
		m.Set(i, 1, c[1])
		m.Set(i, 2, c[2])
	}
	return m
}

//a single atom walking along x at 1 nm/frame.
func walker(frames int) []*v3.Matrix {
	traj := make([]*v3.Matrix, frames)
	for i := range traj {
		traj[i] = frame([3]float64{float64(i), 0, 0})
	}
	return traj
}

func closeEnough(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if math.Abs(v-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestMSDLinear(Te *testing.T) {
	msd, atomic, err := MSD(walker(5), 1, 0)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("MSD of a 1 nm/frame walker:", msd)
	want := []float64{0, 1, 4, 9, 16}
	if !closeEnough(msd, want, 1e-12) {
		Te.Errorf("got %v, want %v", msd, want)
	}
	//a single atom: its row must match the averaged curve
	if !closeEnough(atomic.RawRowView(0), want, 1e-12) {
		Te.Errorf("atomic MSD %v, want %v", atomic.RawRowView(0), want)
	}
}

func TestMSDZeroLagAndStationary(Te *testing.T) {
	//3 stationary atoms at distinct positions, 4 frames
	f := frame([3]float64{0, 0, 0}, [3]float64{1, 2, 3}, [3]float64{-4, 5, 0.5})
	traj := []*v3.Matrix{f, f, f, f}
	msd, atomic, err := MSD(traj, 1, 0)
	if err != nil {
		Te.Fatal(err)
	}
	for c, v := range msd {
		if v != 0 {
			Te.Errorf("stationary trajectory: MSD at lag %d is %g, want 0", c, v)
		}
	}
	r, cols := atomic.Dims()
	for a := 0; a < r; a++ {
		for c := 0; c < cols; c++ {
			if atomic.At(a, c) != 0 {
				Te.Errorf("stationary trajectory: atomic MSD (%d,%d) is %g, want 0", a, c, atomic.At(a, c))
			}
		}
	}
	//the zero-lag identity holds for any trajectory
	msd, atomic, err = MSD(walker(6), 1, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if msd[0] != 0 {
		Te.Errorf("MSD at lag 0 is %g, want 0", msd[0])
	}
	if atomic.At(0, 0) != 0 {
		Te.Errorf("atomic MSD at lag 0 is %g, want 0", atomic.At(0, 0))
	}
}

func TestMSDStepAndStart(Te *testing.T) {
	traj := walker(5)
	msd, _, err := MSD(traj, 2, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if !closeEnough(msd, []float64{0, 4, 16}, 1e-12) {
		Te.Errorf("stepJump 2: got %v", msd)
	}
	msd, _, err = MSD(traj, 1, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if !closeEnough(msd, []float64{0, 1, 4, 9}, 1e-12) {
		Te.Errorf("startFrame 1: got %v", msd)
	}
	msd, atomic, err := MSD(traj, 2, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if !closeEnough(msd, []float64{0, 4}, 1e-12) {
		Te.Errorf("stepJump 2, startFrame 1: got %v", msd)
	}
	//shape invariant: ceil((frames-startFrame)/stepJump) lags
	r, c := atomic.Dims()
	if r != 1 || c != 2 {
		Te.Errorf("atomic MSD is %dx%d, want 1x2", r, c)
	}
}

func TestMSDPerAtom(Te *testing.T) {
	//one stationary atom, one 1 nm/frame walker
	traj := make([]*v3.Matrix, 5)
	for i := range traj {
		traj[i] = frame([3]float64{3, -1, 2}, [3]float64{float64(i), 0, 0})
	}
	msd, atomic, err := MSD(traj, 1, 0)
	if err != nil {
		Te.Fatal(err)
	}
	//the average is half the moving atom's MSD
	if !closeEnough(msd, []float64{0, 0.5, 2, 4.5, 8}, 1e-12) {
		Te.Errorf("averaged MSD: got %v", msd)
	}
	if !closeEnough(atomic.RawRowView(0), []float64{0, 0, 0, 0, 0}, 1e-12) {
		Te.Errorf("stationary atom: got %v", atomic.RawRowView(0))
	}
	if !closeEnough(atomic.RawRowView(1), []float64{0, 1, 4, 9, 16}, 1e-12) {
		Te.Errorf("walking atom: got %v", atomic.RawRowView(1))
	}
}

func TestMSDValidation(Te *testing.T) {
	traj := walker(4)
	_, _, err := MSD(traj, 0, 0)
	if _, ok := err.(*InvalidRangeError); !ok {
		Te.Errorf("stepJump 0: got %v, want InvalidRangeError", err)
	}
	_, _, err = MSD(traj, 1, 4)
	if _, ok := err.(*InvalidRangeError); !ok {
		Te.Errorf("startFrame past the end: got %v, want InvalidRangeError", err)
	}
	_, _, err = MSD(traj, 1, -1)
	if _, ok := err.(*InvalidRangeError); !ok {
		Te.Errorf("negative startFrame: got %v, want InvalidRangeError", err)
	}
	_, _, err = MSD(nil, 1, 0)
	if _, ok := err.(*InvalidShapeError); !ok {
		Te.Errorf("empty trajectory: got %v, want InvalidShapeError", err)
	}
	ragged := []*v3.Matrix{frame([3]float64{0, 0, 0}), frame([3]float64{0, 0, 0}, [3]float64{1, 1, 1})}
	_, _, err = MSD(ragged, 1, 0)
	if _, ok := err.(*InvalidShapeError); !ok {
		Te.Errorf("ragged frames: got %v, want InvalidShapeError", err)
	}
}

func TestConcMSD(Te *testing.T) {
	r := rand.New(rand.NewSource(42))
	const frames, natoms = 40, 7
	traj := make([]*v3.Matrix, frames)
	for i := range traj {
		traj[i] = v3.Zeros(natoms)
		for a := 0; a < natoms; a++ {
			for k := 0; k < 3; k++ {
				traj[i].Set(a, k, r.NormFloat64())
			}
		}
	}
	msd, atomic, err := MSD(traj, 1, 2)
	if err != nil {
		Te.Fatal(err)
	}
	for _, gorut := range []int{0, 1, 2, 16} {
		cmsd, catomic, err := ConcMSD(traj, 1, 2, gorut)
		if err != nil {
			Te.Fatal(err)
		}
		if !closeEnough(msd, cmsd, 0) {
			Te.Errorf("ConcMSD(%d goroutines) differs from MSD", gorut)
		}
		if !mat.Equal(atomic, catomic) {
			Te.Errorf("ConcMSD(%d goroutines) atomic matrix differs from MSD's", gorut)
		}
	}
}

func TestLags(Te *testing.T) {
	lags, err := Lags(10, 3, 1)
	if err != nil {
		Te.Fatal(err)
	}
	want := []int{0, 3, 6}
	if len(lags) != len(want) {
		Te.Fatalf("got %v, want %v", lags, want)
	}
	for i, v := range lags {
		if v != want[i] {
			Te.Errorf("got %v, want %v", lags, want)
		}
	}
	times := LagTimes(lags, 0.5)
	if !closeEnough(times, []float64{0, 1.5, 3}, 1e-12) {
		Te.Errorf("LagTimes: got %v", times)
	}
	if _, err = Lags(10, 1, 10); err == nil {
		Te.Error("startFrame == frames should fail")
	}
}
