/*
 * paths.go, part of goexport.
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

import (
	"strconv"
	"strings"
)

// Wildcard is the placeholder in an output filename template that gets
// replaced by the frame index when writing one file per frame.
const Wildcard = "*"

// ResolvePaths turns a filename template plus the resolved frame list into
// concrete output paths. It is a pure function: no filesystem access.
//
// A wildcard in the template always forces one file per frame, whatever the
// multi flag says; the wildcard is replaced by the frame index written as a
// plain decimal (no padding). Without a wildcard, multi decides between one
// file accumulating every frame and the single-frame case, where resolving
// more than one frame is an *AmbiguousOutputError. Templates with more than
// one wildcard are rejected the same way, since they don't name one
// deterministic file per frame.
//
// perFrame reports whether one file is to be written per frame (in which
// case paths has one entry per frame, in frame order) or all frames go to
// the single returned path.
func ResolvePaths(template string, frames []int, multi bool) (paths []string, perFrame bool, err error) {
	switch strings.Count(template, Wildcard) {
	case 0:
		if !multi && len(frames) > 1 {
			return nil, false, &AmbiguousOutputError{Template: template, Frames: len(frames),
				Reason: "several frames resolved but the template has no wildcard and multiple frames were not requested"}
		}
		return []string{template}, false, nil
	case 1:
		paths = make([]string, len(frames))
		seen := make(map[string]int, len(frames))
		for k, f := range frames {
			p := strings.Replace(template, Wildcard, strconv.Itoa(f), 1)
			if prev, ok := seen[p]; ok {
				return nil, false, &PathCollisionError{Path: p, Frames: [2]int{prev, f}}
			}
			seen[p] = f
			paths[k] = p
		}
		return paths, true, nil
	default:
		return nil, false, &AmbiguousOutputError{Template: template, Frames: len(frames),
			Reason: "more than one wildcard in the template"}
	}
}
