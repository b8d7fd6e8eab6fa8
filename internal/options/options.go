// Package options contains the program options.
package options

// Program options of the analyzer.
type Program struct {
	Input  string // input ROM file
	Batch  string // batch process files matching pattern
	Memviz string // write a memviz DOT dump of the analysis result

	Mapping string // force mapping mode instead of header detection

	Debug bool
	Quiet bool
}

// Analysis defines options to control the analysis engine.
type Analysis struct {
	Window  int // classification window size in bytes
	Workers int // parallel bank workers, 0 uses all CPUs

	CompressedEntropyThreshold float64 // entropy above this tags Compressed
	DataTableThreshold         float64 // minimum confidence for DataTable regions

	TextMinRun     int    // minimum printable run length for Text
	TextTerminator byte   // string terminator byte
	TextEncoding   string // ascii or shiftjis

	PointerTableMinEntries int     // minimum entries of a pointer table
	PointerTableDensity    float64 // minimum ratio of resolving entries
}

// NewAnalysis returns a new options instance with default options.
func NewAnalysis() Analysis {
	return Analysis{
		Window: 256,

		CompressedEntropyThreshold: 7.0,
		DataTableThreshold:         0.5,

		TextMinRun:     8,
		TextTerminator: 0x00,
		TextEncoding:   "ascii",

		PointerTableMinEntries: 8,
		PointerTableDensity:    0.75,
	}
}
