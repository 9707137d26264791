/*
 * doc.go, part of godiffusion.
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

/*Package diffusion computes mean-squared displacements over molecular dynamics
trajectories and self-diffusion coefficients from the resulting curves.


	**goDiffusion capabilities**

    Computes the trajectory-averaged MSD and the per-atom MSD over every
	time-lag separation in a trajectory, sequentially or concurrently.

    Fits the diffusive (linear) regime of an MSD curve and obtains the
	self-diffusion coefficient via the Einstein relation, in cm^2/s.

    Collects frames from any goChem trajectory (DCD, XTC, multi-XYZ, STF)
	into memory, with optional atom selections.

    Saves and recovers analysis results as zstd-compressed JSON.

    Plots MSD curves and their linear fits to PNG files.

The library expects coordinates in nm and times in ps, the usual units for
Gromacs-style trajectories. Coordinates are assumed to be unwrapped: no
correction for periodic-boundary jumps is applied, so an MSD computed from
wrapped coordinates will be inflated.

goDiffusion is built on goChem (github.com/rmera/gochem) and Gonum.
*/
package diffusion
