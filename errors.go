/*
 * errors.go, part of goexport.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package export

import "fmt"

// Error is the interface implemented by all errors in this library. The Decorate
// method allows to add and retrieve info from the error as it is passed up the
// calling stack, without changing its type or wrapping it around something else.
// If passed an empty string, Decorate just returns the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// decoration carries the Decorate machinery so every error type in the
// taxonomy doesn't need to re-implement it.
type decoration struct {
	deco []string
}

// Decorate adds new information to the error
func (d *decoration) Decorate(deco string) []string {
	if deco != "" {
		d.deco = append(d.deco, deco)
	}
	return d.deco
}

// errDecorate asserts that err implements Error and decorates it with the
// caller's name before returning it. Non-Error errors are returned untouched.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}

// InvalidRangeError means a frame range request that can not produce a valid,
// strictly increasing sequence of frame indexes.
type InvalidRangeError struct {
	decoration
	Start, End, Stride int
	Reason             string
}

func (err *InvalidRangeError) Error() string {
	return fmt.Sprintf("goexport: invalid frame range (start %d, end %d, stride %d): %s", err.Start, err.End, err.Stride, err.Reason)
}

// FrameOutOfRangeError means a frame index at or beyond the source's frame count.
type FrameOutOfRangeError struct {
	decoration
	Frame, Total int
}

func (err *FrameOutOfRangeError) Error() string {
	return fmt.Sprintf("goexport: frame %d out of range (the source has %d frames)", err.Frame, err.Total)
}

// AmbiguousOutputError means the output template can not name one deterministic
// file for each thing to be written (several frames but one fixed filename, or
// a template with more than one wildcard).
type AmbiguousOutputError struct {
	decoration
	Template string
	Frames   int
	Reason   string
}

func (err *AmbiguousOutputError) Error() string {
	return fmt.Sprintf("goexport: ambiguous output %q for %d frame(s): %s", err.Template, err.Frames, err.Reason)
}

// PathCollisionError means two resolved frames mapped to the same output file.
type PathCollisionError struct {
	decoration
	Path   string
	Frames [2]int
}

func (err *PathCollisionError) Error() string {
	return fmt.Sprintf("goexport: frames %d and %d both resolve to output file %q", err.Frames[0], err.Frames[1], err.Path)
}

// UnsupportedMultiFrameError means several frames were to be accumulated in one
// file, but the format has no multi-frame-in-one-file convention.
type UnsupportedMultiFrameError struct {
	decoration
	Format string
}

func (err *UnsupportedMultiFrameError) Error() string {
	return fmt.Sprintf("goexport: format %q can not hold more than one frame per file; use a wildcard in the output name", err.Format)
}

// UnknownPropertyError means a requested column references a property that is
// absent from a frame's PropertySet (or a component the property doesn't have).
// Frame is -1 when the error was raised during job validation, before any
// frame-specific data was involved.
type UnknownPropertyError struct {
	decoration
	Column   string
	Property string
	Frame    int
}

func (err *UnknownPropertyError) Error() string {
	if err.Frame >= 0 {
		return fmt.Sprintf("goexport: column %q needs property %q, absent from frame %d", err.Column, err.Property, err.Frame)
	}
	return fmt.Sprintf("goexport: column %q needs property %q, which is not present", err.Column, err.Property)
}

// UnsupportedColumnError means a requested column is not understood by the
// target format's writer.
type UnsupportedColumnError struct {
	decoration
	Column string
	Format string
}

func (err *UnsupportedColumnError) Error() string {
	return fmt.Sprintf("goexport: format %q does not understand column %q", err.Format, err.Column)
}

// UnknownStyleError means an unrecognized record sub-style for a structure format.
type UnknownStyleError struct {
	decoration
	Style  string
	Format string
}

func (err *UnknownStyleError) Error() string {
	return fmt.Sprintf("goexport: unknown %q style %q", err.Format, err.Style)
}

// UnknownFormatError means a format identifier no writer is registered for.
type UnknownFormatError struct {
	decoration
	Format string
}

func (err *UnknownFormatError) Error() string {
	return fmt.Sprintf("goexport: unknown output format %q", err.Format)
}

// IOError wraps a filesystem or stream failure with the operation and path
// where it happened.
type IOError struct {
	decoration
	Op   string
	Path string
	Err  error
}

func (err *IOError) Error() string {
	return fmt.Sprintf("goexport: %s %q: %v", err.Op, err.Path, err.Err)
}

// Unwrap returns the underlying error, so errors.Is/As see through IOError.
func (err *IOError) Unwrap() error {
	return err.Err
}
