package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ExportJob is one user-specified export request. It is constructed once
// per invocation and never modified afterwards. The zero FrameSel exports
// frame 0 only; there is deliberately no ambient "current frame" state, a
// job says explicitly what it wants.
type ExportJob struct {
	Path       string   //output filename template, at most one Wildcard
	Format     string   //one of Formats()
	Columns    []string //empty means the format's default columns
	Frames     FrameSel
	MultiFrame bool
	Options    Options
}

// yamlJob is the on-disk shape of a job. The keys follow the names the
// scripting front-ends of particle-simulation tools use, so job files read
// naturally next to them.
type yamlJob struct {
	File           string            `yaml:"file"`
	Format         string            `yaml:"format"`
	Columns        []string          `yaml:"columns"`
	Frame          *int              `yaml:"frame"`
	StartFrame     *int              `yaml:"start_frame"`
	EndFrame       *int              `yaml:"end_frame"`
	EveryNthFrame  *int              `yaml:"every_nth_frame"`
	MultipleFrames bool              `yaml:"multiple_frames"`
	Options        map[string]string `yaml:"options"`
}

// ParseJob builds an ExportJob from a YAML document. Frame selection: a
// "frame" key selects that single frame; any of start_frame / end_frame /
// every_nth_frame selects a range (missing pieces default to 0, the last
// frame and 1); otherwise multiple_frames selects the whole trajectory and
// a plain job selects frame 0. Giving both "frame" and range keys is an
// error.
func ParseJob(data []byte) (*ExportJob, error) {
	var y yamlJob
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("goexport: can't parse job: %w", err)
	}
	if y.File == "" || y.Format == "" {
		return nil, fmt.Errorf("goexport: a job needs at least the file and format keys")
	}
	job := &ExportJob{
		Path:       y.File,
		Format:     y.Format,
		Columns:    y.Columns,
		MultiFrame: y.MultipleFrames,
		Options:    y.Options,
	}
	ranged := y.StartFrame != nil || y.EndFrame != nil || y.EveryNthFrame != nil
	switch {
	case y.Frame != nil && ranged:
		return nil, fmt.Errorf("goexport: job gives both a single frame and a frame range")
	case y.Frame != nil:
		job.Frames = SingleFrame(*y.Frame)
	case ranged:
		start, end, stride := 0, -1, 1
		if y.StartFrame != nil {
			start = *y.StartFrame
		}
		if y.EndFrame != nil {
			end = *y.EndFrame
		}
		if y.EveryNthFrame != nil {
			stride = *y.EveryNthFrame
		}
		job.Frames = FrameRange(start, end, stride)
	case y.MultipleFrames:
		job.Frames = AllFrames()
	default:
		job.Frames = SingleFrame(0)
	}
	return job, nil
}

// ReadJob reads a YAML job document from r and parses it.
func ReadJob(r io.Reader) (*ExportJob, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read job", Err: err}
	}
	return ParseJob(data)
}
