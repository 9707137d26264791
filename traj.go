/*
 * traj.go, part of godiffusion.
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

	chem "github.com/rmera/gochem"
	v3 "github.com/rmera/gochem/v3"
)

//Collect reads up to nframes frames from traj into memory, as a slice of
//coordinate matrices ready for MSD. If nframes is not positive, the whole
//trajectory is read. The MSD of a long trajectory needs every frame many
//times over, so it pays to read them once.
func Collect(traj chem.Traj, nframes int) ([]*v3.Matrix, error) {
	var frames []*v3.Matrix
	for i := 0; nframes <= 0 || i < nframes; i++ {
		coord := v3.Zeros(traj.Len())
		err := traj.Next(coord)
		if err != nil {
			switch err := err.(type) {
			case chem.LastFrameError:
				return frames, nil
			case chem.Error:
				err.Decorate(fmt.Sprintf("Collect: Failed while reading the %d th frame", i))
				return nil, err
			default:
				return nil, err
			}
		}
		frames = append(frames, coord)
	}
	return frames, nil
}

//CollectIndexes works as Collect, but keeps only the atoms whose indexes are
//given in clist, in the order given. Use it with SymbolIndexes to restrict
//the analysis to one species, say, the lithiums of an electrolyte.
func CollectIndexes(traj chem.Traj, clist []int, nframes int) ([]*v3.Matrix, error) {
	if len(clist) == 0 {
		return nil, shapeError("goDiffusion/CollectIndexes: empty atom selection")
	}
	var frames []*v3.Matrix
	coord := v3.Zeros(traj.Len())
	for i := 0; nframes <= 0 || i < nframes; i++ {
		err := traj.Next(coord)
		if err != nil {
			switch err := err.(type) {
			case chem.LastFrameError:
				return frames, nil
			case chem.Error:
				err.Decorate(fmt.Sprintf("CollectIndexes: Failed while reading the %d th frame", i))
				return nil, err
			default:
				return nil, err
			}
		}
		sel := v3.Zeros(len(clist))
		sel.SomeVecs(coord, clist)
		frames = append(frames, sel)
	}
	return frames, nil
}

//SymbolIndexes returns the indexes of the atoms in mol with the given
//chemical symbol (e.g. "Li").
func SymbolIndexes(mol chem.Atomer, symbol string) []int {
	var ret []int
	for i := 0; i < mol.Len(); i++ {
		if mol.Atom(i).Symbol == symbol {
			ret = append(ret, i)
		}
	}
	return ret
}
