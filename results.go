/*
 * results.go, part of godiffusion.
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
	"encoding/json"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//Results gathers the outputs of an MSD/diffusion analysis so they can be
//stored and recovered without recomputing, which for long trajectories is
//expensive. Atomic may be nil if the per-atom curves were not kept, and D
//is zero if no fit was performed.
type Results struct {
	Lags   []int      //lag set, in frames
	Time   []float64  //time axis, ps
	MSD    []float64  //averaged MSD curve, nm^2
	Atomic *mat.Dense //per-atom MSD, one row per atom, one column per lag
	D      float64    //diffusion coefficient, cm^2/s
}

func (R *Results) MarshalJSON() ([]byte, error) {
	var atomic [][]float64
	if R.Atomic != nil {
		r, _ := R.Atomic.Dims()
		atomic = make([][]float64, r)
		for i := range atomic {
			atomic[i] = R.Atomic.RawRowView(i)
		}
	}
	j, err := json.Marshal(struct {
		Lags   []int       `json:"lags"`
		Time   []float64   `json:"time"`
		MSD    []float64   `json:"msd"`
		Atomic [][]float64 `json:"atomic"`
		D      float64     `json:"d"`
	}{
		Lags:   R.Lags,
		Time:   R.Time,
		MSD:    R.MSD,
		Atomic: atomic,
		D:      R.D,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (R *Results) UnmarshalJSON(b []byte) error {
	var a struct {
		Lags   []int       `json:"lags"`
		Time   []float64   `json:"time"`
		MSD    []float64   `json:"msd"`
		Atomic [][]float64 `json:"atomic"`
		D      float64     `json:"d"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	R.Lags = a.Lags
	R.Time = a.Time
	R.MSD = a.MSD
	R.D = a.D
	R.Atomic = nil
	if len(a.Atomic) > 0 {
		rows := len(a.Atomic)
		cols := len(a.Atomic[0])
		R.Atomic = mat.NewDense(rows, cols, nil)
		for i, row := range a.Atomic {
			R.Atomic.SetRow(i, row)
		}
	}
	return nil
}

//Write writes the results to w as zstd-compressed JSON. The per-atom matrix
//dominates the size, and compresses well.
func (R *Results) Write(w io.Writer) error {
	z, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}
	j, err := json.Marshal(R)
	if err != nil {
		z.Close()
		return err
	}
	if _, err = z.Write(j); err != nil {
		z.Close()
		return err
	}
	return z.Close()
}

//ReadResults recovers results written by Write.
func ReadResults(r io.Reader) (*Results, error) {
	z, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer z.Close()
	j, err := io.ReadAll(z)
	if err != nil {
		return nil, err
	}
	R := new(Results)
	if err = json.Unmarshal(j, R); err != nil {
		return nil, err
	}
	return R, nil
}

//WriteFile writes the results to the named file, as Write.
func (R *Results) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = R.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

//ReadResultsFile recovers results from a file written by WriteFile.
func ReadResultsFile(name string) (*Results, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadResults(f)
}
