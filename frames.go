/*
 * frames.go, part of goexport.
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

// SelKind says how a FrameSel is to be interpreted.
type SelKind int

const (
	SelSingle SelKind = iota
	SelRange
	SelAll
)

// FrameSel is a frame-selection request: one frame, a strided range, or the
// whole trajectory. The zero value selects frame 0. In a range, End < 0
// means "up to the last frame" and Stride 0 means the default stride of 1;
// an explicit Stride <= -1 (or 0 via FrameRange) is an error.
type FrameSel struct {
	Kind   SelKind
	Frame  int
	Start  int
	End    int
	Stride int
}

// SingleFrame selects just frame i.
func SingleFrame(i int) FrameSel {
	return FrameSel{Kind: SelSingle, Frame: i}
}

// FrameRange selects start, start+stride, start+2*stride... inclusive of end.
func FrameRange(start, end, stride int) FrameSel {
	if stride == 0 {
		stride = -1 //an explicit zero stride is an error, not the default
	}
	return FrameSel{Kind: SelRange, Start: start, End: end, Stride: stride}
}

// AllFrames selects every frame of the source.
func AllFrames() FrameSel {
	return FrameSel{Kind: SelAll}
}

// ResolveFrames turns a selection plus the source's total frame count into
// the ordered, strictly increasing list of frame indexes to export. The list
// is never empty: every selection, SelAll over an empty source included,
// either yields at least one frame or fails. Range ends are clamped to
// total-1; a range whose start is negative, larger than its (clamped) end,
// or whose stride is not positive, is an *InvalidRangeError. A single frame
// outside [0,total), or any selection against an empty source, is a
// *FrameOutOfRangeError.
func ResolveFrames(total int, sel FrameSel) ([]int, error) {
	switch sel.Kind {
	case SelSingle:
		if sel.Frame < 0 || sel.Frame >= total {
			return nil, &FrameOutOfRangeError{Frame: sel.Frame, Total: total}
		}
		return []int{sel.Frame}, nil
	case SelAll:
		if total < 1 {
			return nil, &FrameOutOfRangeError{Frame: 0, Total: total}
		}
		frames := make([]int, total)
		for i := range frames {
			frames[i] = i
		}
		return frames, nil
	case SelRange:
		start, end, stride := sel.Start, sel.End, sel.Stride
		if stride == 0 {
			stride = 1
		}
		if end < 0 || end > total-1 {
			end = total - 1
		}
		if stride < 0 {
			return nil, &InvalidRangeError{Start: start, End: sel.End, Stride: sel.Stride, Reason: "stride must be positive"}
		}
		if start < 0 {
			return nil, &InvalidRangeError{Start: start, End: sel.End, Stride: sel.Stride, Reason: "negative start frame"}
		}
		if start > end {
			return nil, &InvalidRangeError{Start: start, End: sel.End, Stride: sel.Stride, Reason: "start frame past the end of the range"}
		}
		var frames []int
		for i := start; i <= end; i += stride {
			frames = append(frames, i)
		}
		return frames, nil
	}
	return nil, &InvalidRangeError{Reason: "unknown selection kind"}
}
