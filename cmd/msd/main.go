/*
 * main.go, part of godiffusion.
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

//msd computes the MSD and the self-diffusion coefficient of one atomic
//species over a trajectory, from a small YAML configuration file.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	chem "github.com/rmera/gochem"
	"github.com/rmera/gochem/traj/dcd"
	"github.com/rmera/gochem/traj/xtc"
	v3 "github.com/rmera/gochem/v3"
	diffusion "github.com/rmera/godiffusion"
	"gopkg.in/yaml.v3"
)

//Conf contains the parameters of one analysis, read from a YAML file.
type Conf struct {
	//Traj is the trajectory file. The format is taken from the
	//extension (dcd, xtc or multi-frame xyz).
	Traj string `yaml:"traj"`

	//Top is the topology file (pdb or xyz). Not needed for xyz
	//trajectories, which carry their own.
	Top string `yaml:"top"`

	//Symbol is the chemical symbol of the species to analyze (say, "Li").
	//If empty, every atom goes into the MSD.
	Symbol string `yaml:"symbol"`

	//Dt is the time between consecutive frames, in ps.
	Dt float64 `yaml:"dt"`

	//StepJump is the stride between evaluated lags. 1 if not given.
	StepJump int `yaml:"stepjump"`

	//StartFrame is how many leading frames to skip. 0 if not given.
	StartFrame int `yaml:"startframe"`

	//Frac are the fractional bounds of the fit window. The library
	//defaults (0.25, 0.50) apply if not given.
	Frac []float64 `yaml:"frac"`

	//Cpus limits the goroutines used for the MSD. All CPUs if not given.
	Cpus int `yaml:"cpus"`

	//Out is the file for the compressed results. Nothing is written if empty.
	Out string `yaml:"out"`

	//Plot is the file for the MSD plot. Nothing is plotted if empty.
	Plot string `yaml:"plot"`
}

func readConf(name string) (*Conf, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	c := new(Conf)
	if err = yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	if c.Traj == "" {
		return nil, fmt.Errorf("conf: no trajectory file given")
	}
	if c.Dt <= 0 {
		return nil, fmt.Errorf("conf: dt must be given, and positive")
	}
	if c.StepJump == 0 {
		c.StepJump = 1
	}
	return c, nil
}

func format(name string) string {
	t := strings.Split(name, ".")
	return strings.ToLower(t[len(t)-1])
}

//opens the trajectory and, when one is needed and given, the topology.
func open(c *Conf) (*chem.Molecule, chem.Traj, error) {
	var mol *chem.Molecule
	var err error
	switch format(c.Top) {
	case "pdb":
		mol, err = chem.PDBFileRead(c.Top, false)
	case "xyz":
		mol, err = chem.XYZFileRead(c.Top)
	}
	if err != nil {
		return nil, nil, err
	}
	switch format(c.Traj) {
	case "dcd":
		traj, err := dcd.New(c.Traj)
		return mol, traj, err
	case "xtc":
		traj, err := xtc.New(c.Traj)
		return mol, traj, err
	case "xyz":
		xyzmol, traj, err := chem.XYZFileAsTraj(c.Traj)
		if mol == nil {
			return xyzmol, traj, err
		}
		return mol, traj, err
	}
	return nil, nil, fmt.Errorf("unsupported trajectory format: %s", c.Traj)
}

func main() {
	if len(os.Args) != 2 {
		log.Fatal("Usage: msd configuration.yaml")
	}
	c, err := readConf(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	mol, traj, err := open(c)
	if err != nil {
		log.Fatal(err)
	}
	var frames []*v3.Matrix
	if c.Symbol != "" {
		if mol == nil {
			log.Fatal("A topology file is needed to select atoms by symbol")
		}
		indexes := diffusion.SymbolIndexes(mol, c.Symbol)
		if len(indexes) == 0 {
			log.Fatalf("No %s atoms in the topology", c.Symbol)
		}
		log.Printf("Selected %d %s atoms\n", len(indexes), c.Symbol)
		frames, err = diffusion.CollectIndexes(traj, indexes, -1)
	} else {
		frames, err = diffusion.Collect(traj, -1)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Read %d frames\n", len(frames))
	msd, atomic, err := diffusion.ConcMSD(frames, c.StepJump, c.StartFrame, c.Cpus)
	if err != nil {
		log.Fatal(err)
	}
	lags, err := diffusion.Lags(len(frames), c.StepJump, c.StartFrame)
	if err != nil {
		log.Fatal(err)
	}
	time := diffusion.LagTimes(lags, c.Dt)
	fit, err := diffusion.FitDFull(msd, time, c.Frac...)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("D = %g cm^2/s (%s)\n", fit.D, fit.String())
	if c.Out != "" {
		res := &diffusion.Results{Lags: lags, Time: time, MSD: msd, Atomic: atomic, D: fit.D}
		if err = res.WriteFile(c.Out); err != nil {
			log.Fatal(err)
		}
		log.Printf("Results written to %s\n", c.Out)
	}
	if c.Plot != "" {
		if err = diffusion.PlotMSD(msd, time, fit, c.Plot); err != nil {
			log.Fatal(err)
		}
		log.Printf("Plot written to %s\n", c.Plot)
	}
}
