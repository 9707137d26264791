/*
 * errors.go, part of godiffusion.
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

import "fmt"

// Error is the interface for errors that this library implements, following the
// goChem convention. The Decorate method allows to add and retrieve info from
// the error as it is passed up, without changing its type or wrapping it
// around something else. If passed an empty string, Decorate just returns the
// current decoration slice, without adding to it.
type Error interface {
	Error() string
	Decorate(string) []string
}

// InvalidShapeError indicates ill-shaped input data: an empty trajectory,
// frames with inconsistent atom counts or without 3 columns, or an MSD curve
// and a time axis of different lengths.
type InvalidShapeError struct {
	message string
	deco    []string
}

func shapeError(format string, a ...interface{}) *InvalidShapeError {
	return &InvalidShapeError{message: fmt.Sprintf(format, a...)}
}

func (err *InvalidShapeError) Error() string { return err.message }

func (err *InvalidShapeError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// InvalidRangeError indicates an out-of-range parameter: a non-positive step,
// a starting frame at or beyond the end of the trajectory, or a fractional
// fit window outside [0,1] or with its bounds inverted.
type InvalidRangeError struct {
	message string
	deco    []string
}

func rangeError(format string, a ...interface{}) *InvalidRangeError {
	return &InvalidRangeError{message: fmt.Sprintf(format, a...)}
}

func (err *InvalidRangeError) Error() string { return err.message }

func (err *InvalidRangeError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// InsufficientDataError indicates that a fit window contains fewer than the 2
// points needed for a first-degree fit.
type InsufficientDataError struct {
	message string
	deco    []string
}

func dataError(format string, a ...interface{}) *InsufficientDataError {
	return &InsufficientDataError{message: fmt.Sprintf(format, a...)}
}

func (err *InsufficientDataError) Error() string { return err.message }

func (err *InsufficientDataError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
