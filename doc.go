/*
 * doc.go, part of goexport.
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

/*Package export serializes time-varying particle datasets (positions, types,
identifiers, bonds, velocities, cell geometry) into external scientific file
formats, across one or many frames.


	**goexport capabilities**

    Writes LAMMPS dump trajectories, one block per frame, any column layout.

    Writes LAMMPS data files with the atomic, charge, bond and full atom
	styles, including Masses, Velocities and Bonds sections.

    Writes XYZ (multi-model), VASP POSCAR, FHI-aims geometry.in, IMD
	checkpoint and POV-Ray scene files.

    Frame selection by single index, strided range or whole trajectory;
	one file per frame through a * wildcard in the output name, or all
	frames accumulated in one file where the format allows it.

    Transparent gzip/zstd output compression, picked from the file suffix.

    Takes frames from anything implementing FrameSource; adapters for
	in-memory data (SliceSource) and for goChem topologies plus
	trajectories (TrajSource) are included, so DCD, XTC and STF files can
	be exported directly.

    Export jobs are plain values, also loadable from YAML documents.

The engine is a single-threaded, synchronous pipeline: one frame is fetched,
mapped onto the requested columns and written to completion before the next
begins. Jobs either finish with every declared output file fully written, or
fail with an error from the taxonomy in errors.go, leaving no open handles.
*/
package export
