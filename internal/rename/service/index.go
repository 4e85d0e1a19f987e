package service

import "strings"

// candidate is one canonical name with everything precomputed that the
// filter and scorer need.
type candidate struct {
	name   string // verbatim, the only form that may be returned
	low    string
	norm   string
	size   string
	idToks map[string]struct{}
}

// Index precomputes normalized forms and anchors of the canonical list so a
// batch pays the extraction cost once, not once per stem. Read-only after
// construction, safe for concurrent use.
type Index struct {
	cands  []candidate
	byNorm map[string]int // normalized form -> first occurrence
}

// BuildIndex prepares the canonical list for resolution. Order is kept:
// tie-breaks fall to the earlier name.
func BuildIndex(names []string) *Index {
	idx := &Index{
		cands:  make([]candidate, 0, len(names)),
		byNorm: make(map[string]int, len(names)),
	}
	for i, n := range names {
		idx.cands = append(idx.cands, candidate{
			name:   n,
			low:    strings.ToLower(n),
			norm:   Normalize(n),
			size:   SizeToken(n),
			idToks: IDTokens(n),
		})
		if nn := idx.cands[i].norm; nn != "" {
			if _, ok := idx.byNorm[nn]; !ok {
				idx.byNorm[nn] = i
			}
		}
	}
	return idx
}

func (idx *Index) Len() int { return len(idx.cands) }
