package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeOne runs a writer over one frame with its default columns.
func writeOne(Te *testing.T, format string, ps *PropertySet) string {
	w, err := NewWriter(format, nil)
	if err != nil {
		Te.Fatal(err)
	}
	cols, err := ResolveColumns(nil, ps, w)
	if err != nil {
		Te.Fatal(err)
	}
	fields, err := bindColumns(cols, w, ps, 0)
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := w.WriteHeader(&buf); err != nil {
		Te.Fatal(err)
	}
	if err := w.WriteFrame(&buf, 0, ps, fields); err != nil {
		Te.Fatal(err)
	}
	if err := w.WriteFooter(&buf); err != nil {
		Te.Fatal(err)
	}
	return buf.String()
}

func TestXYZWrite(Te *testing.T) {
	fmt.Println("XYZ write test!")
	text := writeOne(Te, XYZ, testFrame(0))
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) != 6 {
		Te.Fatalf("xyz block has %d lines, wanted count+comment+4 rows:\n%s", len(lines), text)
	}
	if strings.TrimSpace(lines[0]) != "4" {
		Te.Errorf("count line reads %q", lines[0])
	}
	//types render as their element symbols
	row := strings.Fields(lines[2])
	if row[0] != "Si" || len(row) != 4 {
		Te.Errorf("first row %v, wanted Si plus 3 coordinates", row)
	}
	if row2 := strings.Fields(lines[3]); row2[0] != "O" {
		Te.Errorf("second row %v, wanted O first", row2)
	}
}

func TestVASPWrite(Te *testing.T) {
	fmt.Println("POSCAR write test!")
	text := writeOne(Te, VASP, testFrame(0))
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	//comment, scale, 3 vectors, species, counts, Cartesian, 4 rows
	if len(lines) != 12 {
		Te.Fatalf("POSCAR has %d lines, wanted 12:\n%s", len(lines), text)
	}
	if strings.TrimSpace(lines[1]) != "1.0" {
		Te.Errorf("scale line reads %q", lines[1])
	}
	if fields := strings.Fields(lines[5]); len(fields) != 2 || fields[0] != "Si" || fields[1] != "O" {
		Te.Errorf("species line %q, wanted Si O", lines[5])
	}
	if fields := strings.Fields(lines[6]); len(fields) != 2 || fields[0] != "2" || fields[1] != "2" {
		Te.Errorf("count line %q, wanted 2 2", lines[6])
	}
	if strings.TrimSpace(lines[7]) != "Cartesian" {
		Te.Errorf("coordinate mode line reads %q", lines[7])
	}
	//rows grouped by type: the two Si particles (0 and 3) come first
	if !strings.Contains(lines[8], "0.0000000000000000") || !strings.Contains(lines[9], "3.0000000000000000") {
		Te.Errorf("Si rows not grouped first:\n%s", text)
	}
}

func TestAimsWrite(Te *testing.T) {
	text := writeOne(Te, FHIAims, testFrame(0))
	if n := strings.Count(text, "lattice_vector"); n != 3 {
		Te.Errorf("geometry.in has %d lattice_vector lines, wanted 3", n)
	}
	if n := strings.Count(text, "\natom "); n != 4 {
		Te.Errorf("geometry.in has %d atom lines, wanted 4", n)
	}
	if !strings.Contains(text, " Si\n") || !strings.Contains(text, " O\n") {
		Te.Errorf("species missing from atom lines:\n%s", text)
	}
}

func TestIMDWrite(Te *testing.T) {
	text := writeOne(Te, IMD, testFrame(0))
	for _, want := range []string{"#F A 1 1 1 3 0 0", "#C number type mass x y z", "#X 10", "#Y 0 10 0", "#Z 0 0 10", "#E"} {
		if !strings.Contains(text, want) {
			Te.Errorf("IMD header misses %q:\n%s", want, text)
		}
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	rows := 0
	for _, l := range lines {
		if !strings.HasPrefix(l, "#") {
			rows++
			//IMD types are 0-based
			f := strings.Fields(l)
			if f[1] != "0" && f[1] != "1" {
				Te.Errorf("row %q has type %s, wanted 0 or 1", l, f[1])
			}
		}
	}
	if rows != 4 {
		Te.Errorf("IMD file has %d particle rows, wanted 4", rows)
	}
}

// A frame that already carries 0-based type ids must not produce type -1
// in the shifted IMD output.
func TestIMDTypeClamp(Te *testing.T) {
	ps := testFrame(0)
	zero := NewPropertySet(4)
	zero.SetVectors(PosName, ps.Prop(PosName).vecs)
	zero.SetInts(TypeName, []int{0, 1, 1, 0})
	text := writeOne(Te, IMD, zero)
	if strings.Contains(text, " -1 ") {
		Te.Errorf("0-based input produced a negative IMD type:\n%s", text)
	}
	for _, l := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if strings.HasPrefix(l, "#") {
			continue
		}
		if f := strings.Fields(l); f[1] != "0" {
			Te.Errorf("row %q has type %s, wanted the clamped 0", l, f[1])
		}
	}
}

func TestPOVWrite(Te *testing.T) {
	text := writeOne(Te, POVRay, testFrame(0))
	if !strings.HasPrefix(text, "#version 3.5;") {
		Te.Errorf("scene does not start with the version header:\n%s", text)
	}
	if n := strings.Count(text, "sphere {"); n != 4 {
		Te.Errorf("scene has %d spheres, wanted 4", n)
	}
	if !strings.Contains(text, "camera {") || !strings.Contains(text, "light_source {") {
		Te.Errorf("scene misses camera or light:\n%s", text)
	}
}

// Single-structure formats must refuse a multi-frame job with a fixed
// output name, and write nothing in the process.
func TestSingleStructureMultiFrame(Te *testing.T) {
	fmt.Println("Single-structure multi-frame rejection test!")
	src := testSource(3)
	for _, format := range []string{LammpsData, VASP, FHIAims, IMD, POVRay} {
		dir := Te.TempDir()
		job := &ExportJob{
			Path:       filepath.Join(dir, "out."+format),
			Format:     format,
			Frames:     AllFrames(),
			MultiFrame: true,
		}
		err := Export(context.Background(), src, job)
		var merr *UnsupportedMultiFrameError
		if err == nil {
			Te.Errorf("format %s accepted a multi-frame single file", format)
			continue
		}
		if !asError(err, &merr) {
			Te.Errorf("format %s gave the wrong error: %v", format, err)
		}
		ents, _ := os.ReadDir(dir)
		if len(ents) != 0 {
			Te.Errorf("format %s wrote %d file(s) before failing", format, len(ents))
		}
		//with a wildcard the same job must pass
		job.Path = filepath.Join(dir, "out.*."+format)
		if err := Export(context.Background(), src, job); err != nil {
			Te.Errorf("format %s failed in wildcard mode: %v", format, err)
		}
		ents, _ = os.ReadDir(dir)
		if len(ents) != 3 {
			Te.Errorf("format %s wrote %d file(s) in wildcard mode, wanted 3", format, len(ents))
		}
		//the flag with a one-frame selection is fine: only more than one
		//frame in one file is rejected
		job.Path = filepath.Join(dir, "single."+format)
		job.Frames = SingleFrame(1)
		if err := Export(context.Background(), src, job); err != nil {
			Te.Errorf("format %s refused a one-frame job with the multi-frame flag: %v", format, err)
		}
	}
}
