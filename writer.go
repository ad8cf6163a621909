package export

import "io"

// Options is the format-specific option bag of a job: "atom_style" for
// lammps_data, "precision" for the columnar writers, "radius" for povray.
// Unknown keys are ignored by the writers that don't use them.
type Options map[string]string

// Writer is the contract every output format implements. A Writer never
// opens or closes the stream it is given; stream lifetime belongs to the
// export pipeline. WriteHeader and WriteFooter are called exactly once per
// file, WriteFrame once per frame in frame order. The column capability
// methods drive column resolution: DefaultColumns is used when the job
// requests no explicit columns, MandatoryColumns must be resolvable in every
// exported frame, and Accepts says whether the format understands a given
// logical column name.
type Writer interface {
	Format() string
	MultiFrame() bool
	DefaultColumns() []string
	MandatoryColumns() []string
	Accepts(col string) bool
	WriteHeader(out io.Writer) error
	WriteFrame(out io.Writer, frame int, ps *PropertySet, cols []Field) error
	WriteFooter(out io.Writer) error
}

// Format identifiers. The set of formats is closed and known at build time;
// dispatch happens once, when the job is validated.
const (
	LammpsDump = "lammps_dump"
	LammpsData = "lammps_data"
	XYZ        = "xyz"
	VASP       = "vasp"
	FHIAims    = "fhi-aims"
	IMD        = "imd"
	POVRay     = "povray"
)

// Formats returns the identifiers of every supported output format.
func Formats() []string {
	return []string{LammpsDump, LammpsData, XYZ, VASP, FHIAims, IMD, POVRay}
}

// NewWriter returns the writer for the given format id, configured from the
// job's option bag. Option problems (an unrecognized lammps_data style, a
// bad precision) surface here, before any byte is written.
func NewWriter(format string, opt Options) (Writer, error) {
	switch format {
	case LammpsDump:
		return newDumpWriter(opt)
	case LammpsData:
		return newDataWriter(opt)
	case XYZ:
		return newXYZWriter(opt)
	case VASP:
		return newVASPWriter(opt)
	case FHIAims:
		return newAimsWriter(opt)
	case IMD:
		return newIMDWriter(opt)
	case POVRay:
		return newPOVWriter(opt)
	}
	return nil, &UnknownFormatError{Format: format}
}

// contains is a little helper for the writers' Accepts methods.
func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
