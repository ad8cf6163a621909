/*
 * source.go, part of goexport.
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

// FrameSource is what the export pipeline consumes: a random-access view of
// the dataset, one immutable PropertySet per frame. Frame must be
// deterministic and idempotent for a fixed index, and must return a
// *FrameOutOfRangeError for indexes at or beyond FrameCount.
type FrameSource interface {
	FrameCount() int
	Frame(i int) (*PropertySet, error)
}

// SliceSource is the trivial in-memory FrameSource: a list of PropertySets.
type SliceSource struct {
	frames []*PropertySet
}

// NewSliceSource builds a SliceSource from the given frames.
func NewSliceSource(frames ...*PropertySet) *SliceSource {
	return &SliceSource{frames: frames}
}

// FrameCount returns the number of frames held.
func (S *SliceSource) FrameCount() int {
	return len(S.frames)
}

// Frame returns the i-th frame.
func (S *SliceSource) Frame(i int) (*PropertySet, error) {
	if i < 0 || i >= len(S.frames) {
		return nil, &FrameOutOfRangeError{Frame: i, Total: len(S.frames)}
	}
	return S.frames[i], nil
}
