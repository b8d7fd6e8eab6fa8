// Package xref builds the cross reference index of a ROM, it tracks
// which addresses transfer control or point to which other addresses.
package xref

import "sort"

// Kind describes how a reference reaches its target.
type Kind int

const (
	KindCall Kind = iota
	KindJump
	KindBranch
	KindPointer
)

func (k Kind) String() string {
	switch k {
	case KindCall:
		return "call"
	case KindJump:
		return "jump"
	case KindBranch:
		return "branch"
	case KindPointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// Reference is a directed edge between two ROM bus addresses.
type Reference struct {
	From uint32
	To   uint32
	Kind Kind
}

// Index holds all references of a ROM, indexed in both directions.
type Index struct {
	incoming map[uint32][]Reference
	outgoing map[uint32][]Reference
	count    int
}

// NewIndex returns an empty cross reference index.
func NewIndex() *Index {
	return &Index{
		incoming: map[uint32][]Reference{},
		outgoing: map[uint32][]Reference{},
	}
}

// Record adds a reference to the index.
func (i *Index) Record(ref Reference) {
	i.incoming[ref.To] = append(i.incoming[ref.To], ref)
	i.outgoing[ref.From] = append(i.outgoing[ref.From], ref)
	i.count++
}

// Merge moves all references of the other index into this one.
func (i *Index) Merge(other *Index) {
	for _, refs := range other.outgoing {
		for _, ref := range refs {
			i.Record(ref)
		}
	}
}

// CallersOf returns all references targeting the address, sorted by
// source address.
func (i *Index) CallersOf(address uint32) []Reference {
	refs := append([]Reference(nil), i.incoming[address]...)
	sort.Slice(refs, func(a, b int) bool {
		return refs[a].From < refs[b].From
	})
	return refs
}

// CalleesOf returns all references originating at the address, sorted
// by target address.
func (i *Index) CalleesOf(address uint32) []Reference {
	refs := append([]Reference(nil), i.outgoing[address]...)
	sort.Slice(refs, func(a, b int) bool {
		return refs[a].To < refs[b].To
	})
	return refs
}

// Edges returns all references sorted by source, then target address.
func (i *Index) Edges() []Reference {
	refs := make([]Reference, 0, i.count)
	for _, outgoing := range i.outgoing {
		refs = append(refs, outgoing...)
	}
	sort.Slice(refs, func(a, b int) bool {
		if refs[a].From != refs[b].From {
			return refs[a].From < refs[b].From
		}
		return refs[a].To < refs[b].To
	})
	return refs
}

// Stats returns the number of references per kind.
func (i *Index) Stats() map[Kind]int {
	stats := map[Kind]int{}
	for _, refs := range i.outgoing {
		for _, ref := range refs {
			stats[ref.Kind]++
		}
	}
	return stats
}

// Len returns the total number of recorded references.
func (i *Index) Len() int {
	return i.count
}
