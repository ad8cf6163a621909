/*
 * pipeline.go, part of goexport.
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
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// outFile owns one output handle: the file, an optional compression layer
// selected from the filename suffix, and a buffer on top. Close is
// idempotent, so the pipeline can both defer it (to guarantee release on
// every exit path) and call it explicitly (to catch flush errors).
type outFile struct {
	path   string
	f      *os.File
	z      io.WriteCloser
	b      *bufio.Writer
	closed bool
}

// openOutput creates path and stacks the write layers. A ".gz" suffix gets
// gzip, ".zst" gets zstd; anything else writes plain bytes. Writers only
// ever see the resulting io.Writer.
func openOutput(path string) (*outFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &IOError{Op: "create", Path: path, Err: err}
	}
	o := &outFile{path: path, f: f}
	var w io.Writer = f
	switch {
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, &IOError{Op: "compress", Path: path, Err: err}
		}
		o.z = zw
		w = zw
	case strings.HasSuffix(path, ".gz"):
		o.z = gzip.NewWriter(f)
		w = o.z
	}
	o.b = bufio.NewWriter(w)
	return o, nil
}

func (o *outFile) Write(p []byte) (int, error) {
	return o.b.Write(p)
}

// Close flushes and releases every layer, exactly once. The first failure
// wins but the file descriptor is closed regardless.
func (o *outFile) Close() error {
	if o == nil || o.closed {
		return nil
	}
	o.closed = true
	err := o.b.Flush()
	if o.z != nil {
		if err2 := o.z.Close(); err == nil {
			err = err2
		}
	}
	if err2 := o.f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return &IOError{Op: "close", Path: o.path, Err: err}
	}
	return nil
}

// Export runs one export job against a frame source: it resolves the frames
// to emit and the output paths, pulls each frame's PropertySet, maps the
// requested columns onto it and drives the format writer, owning the file
// handle(s) for the whole job.
//
// Everything that can be validated eagerly (format and style, frame range,
// path template, multi-frame capability, column capability against the
// first resolved frame) fails before any byte is written. A later frame
// missing a property the columns were resolved against aborts the whole
// job; partial silent exports are worse than a hard failure. Cancellation
// through ctx is honored between frames, so a started frame is always
// written out completely. On every exit path all handles are closed.
func Export(ctx context.Context, src FrameSource, job *ExportJob) error {
	if job == nil || src == nil {
		return fmt.Errorf("goexport: Export needs both a source and a job")
	}
	w, err := NewWriter(job.Format, job.Options)
	if err != nil {
		return errDecorate(err, "Export")
	}
	frames, err := ResolveFrames(src.FrameCount(), job.Frames)
	if err != nil {
		return errDecorate(err, "Export")
	}
	paths, perFrame, err := ResolvePaths(job.Path, frames, job.MultiFrame)
	if err != nil {
		return errDecorate(err, "Export")
	}
	if !perFrame && len(frames) > 1 && !w.MultiFrame() {
		return &UnsupportedMultiFrameError{Format: w.Format()}
	}
	first, err := src.Frame(frames[0])
	if err != nil {
		return errDecorate(err, "Export")
	}
	cols, err := ResolveColumns(job.Columns, first, w)
	if err != nil {
		return errDecorate(err, "Export")
	}
	id := uuid.New().String()[:8]
	log.Printf("goexport: job %s: %d frame(s) to %q as %s", id, len(frames), job.Path, job.Format)
	if perFrame {
		err = exportPerFrame(ctx, src, w, frames, paths, cols, first)
	} else {
		err = exportSingleFile(ctx, src, w, frames, paths[0], cols, first)
	}
	if err != nil {
		return errDecorate(err, "Export")
	}
	log.Printf("goexport: job %s: done", id)
	return nil
}

// exportSingleFile accumulates every frame in one file: one open handle,
// header once, frame blocks in order, footer once.
func exportSingleFile(ctx context.Context, src FrameSource, w Writer, frames []int, path string, cols []Column, first *PropertySet) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close() //idempotent; the explicit Close below reports flush errors
	if err := w.WriteHeader(out); err != nil {
		return wrapWriteErr(err, path)
	}
	for k, f := range frames {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("goexport: job canceled after %d frame(s): %w", k, err)
		}
		ps := first
		if k > 0 {
			if ps, err = src.Frame(f); err != nil {
				return err
			}
		}
		fields, err := bindColumns(cols, w, ps, f)
		if err != nil {
			return err
		}
		if err := w.WriteFrame(out, f, ps, fields); err != nil {
			return wrapWriteErr(err, path)
		}
	}
	if err := w.WriteFooter(out); err != nil {
		return wrapWriteErr(err, path)
	}
	return out.Close()
}

// exportPerFrame writes one file per frame, one open/close cycle each, in
// frame order.
func exportPerFrame(ctx context.Context, src FrameSource, w Writer, frames []int, paths []string, cols []Column, first *PropertySet) error {
	for k, f := range frames {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("goexport: job canceled after %d frame(s): %w", k, err)
		}
		ps := first
		if k > 0 {
			var err error
			if ps, err = src.Frame(f); err != nil {
				return err
			}
		}
		fields, err := bindColumns(cols, w, ps, f)
		if err != nil {
			return err
		}
		if err := writeOneFile(w, paths[k], f, ps, fields); err != nil {
			return err
		}
	}
	return nil
}

func writeOneFile(w Writer, path string, frame int, ps *PropertySet, fields []Field) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := w.WriteHeader(out); err != nil {
		return wrapWriteErr(err, path)
	}
	if err := w.WriteFrame(out, frame, ps, fields); err != nil {
		return wrapWriteErr(err, path)
	}
	if err := w.WriteFooter(out); err != nil {
		return wrapWriteErr(err, path)
	}
	return out.Close()
}

// wrapWriteErr turns raw stream errors from a writer into IOErrors carrying
// the path, while letting already-typed goexport errors through untouched.
func wrapWriteErr(err error, path string) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(Error); ok {
		return err
	}
	return &IOError{Op: "write", Path: path, Err: err}
}
