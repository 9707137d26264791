/*
 * conc.go, part of godiffusion.
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
	"runtime"
	"sync"

	v3 "github.com/rmera/gochem/v3"
	"gonum.org/v1/gonum/mat"
)

//ConcMSD computes the same quantities as MSD, concurrently. Each lag is an
//independent computation, so lags are distributed among gorut worker
//goroutines (as many as CPUs, if gorut is not given). Each worker writes
//its own columns of the outputs, so no synchronization beyond the final
//wait is needed. The result is identical to that of MSD.
func ConcMSD(traj []*v3.Matrix, stepJump, startFrame int, gorut ...int) ([]float64, *mat.Dense, error) {
	natoms, err := checkFrames(traj)
	if err != nil {
		err.Decorate("ConcMSD")
		return nil, nil, err
	}
	lags, err2 := Lags(len(traj), stepJump, startFrame)
	if err2 != nil {
		return nil, nil, errDecorate(err2, "ConcMSD")
	}
	workers := runtime.NumCPU()
	if len(gorut) > 0 && gorut[0] > 0 {
		workers = gorut[0]
	}
	if workers > len(lags) {
		workers = len(lags)
	}
	msd := make([]float64, len(lags))
	atomic := mat.NewDense(natoms, len(lags), nil)
	jobs := make(chan int, len(lags))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			//each worker gets its own scratch space
			diff := v3.Zeros(natoms)
			sums := make([]float64, natoms)
			for c := range jobs {
				lagColumn(traj, lags[c], startFrame, c, msd, atomic, diff, sums)
			}
		}()
	}
	for c := range lags {
		jobs <- c
	}
	close(jobs)
	wg.Wait()
	return msd, atomic, nil
}
