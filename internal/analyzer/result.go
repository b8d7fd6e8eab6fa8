package analyzer

import (
	"github.com/retroenv/snesgoanalyzer/internal/arch/w65816"
	"github.com/retroenv/snesgoanalyzer/internal/assets"
	"github.com/retroenv/snesgoanalyzer/internal/classify"
	"github.com/retroenv/snesgoanalyzer/internal/xref"
)

// BankStats summarizes the analysis output of one bank.
type BankStats struct {
	Bank         int
	Instructions int
	References   int
	TagBytes     map[classify.Tag]int
}

// Result holds the merged analysis output of all banks.
type Result struct {
	regions      []classify.Region
	refs         *xref.Index
	tables       []xref.Table
	graphics     []assets.GraphicsChunk
	samples      []assets.AudioSample
	instructions []w65816.Instruction
	stats        []BankStats
}

// Regions returns all classified regions ordered by file offset.
func (r *Result) Regions() []classify.Region {
	return r.regions
}

// References returns the cross reference index of the ROM.
func (r *Result) References() *xref.Index {
	return r.refs
}

// PointerTables returns all detected pointer tables.
func (r *Result) PointerTables() []xref.Table {
	return r.tables
}

// Graphics returns all detected tile chunks.
func (r *Result) Graphics() []assets.GraphicsChunk {
	return r.graphics
}

// Samples returns all detected audio samples.
func (r *Result) Samples() []assets.AudioSample {
	return r.samples
}

// Instructions returns all instructions decoded from code regions,
// ordered by file offset.
func (r *Result) Instructions() []w65816.Instruction {
	return r.instructions
}

// BankStats returns the per bank analysis statistics in bank order.
func (r *Result) BankStats() []BankStats {
	return r.stats
}

// RegionAt returns the region covering the given file offset.
func (r *Result) RegionAt(offset int) (classify.Region, bool) {
	for _, region := range r.regions {
		if offset >= region.Start && offset < region.End() {
			return region, true
		}
	}
	return classify.Region{}, false
}

// TagBytes returns the number of bytes covered per region tag.
func (r *Result) TagBytes() map[classify.Tag]int {
	counts := map[classify.Tag]int{}
	for _, region := range r.regions {
		counts[region.Tag] += region.Length
	}
	return counts
}
