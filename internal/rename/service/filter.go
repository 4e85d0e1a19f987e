package service

import "strings"

// filterCandidates narrows the canonical set with the anchors of one stem.
// Each restriction fires only when its anchor is present, in this order:
// primary-token containment, region containment, exact size equality.
// An active restriction that empties the set is final: the resolver prefers
// a confident no-match over a wrong match when creative identity, market or
// physical size cannot be honored.
func (e *Engine) filterCandidates(cands []int, idx *Index, a Anchors) []int {
	if a.Primary != "" {
		cands = keep(cands, idx, func(c *candidate) bool {
			return strings.Contains(c.low, a.Primary)
		})
	}
	if len(cands) > 0 && a.Region != "" {
		if r := e.region(a.Region); r != nil {
			cands = keep(cands, idx, func(c *candidate) bool {
				return containsAnyVariant(c.low, r.Variants)
			})
		}
	}
	if len(cands) > 0 && a.Size != "" {
		cands = keep(cands, idx, func(c *candidate) bool {
			return c.size == a.Size
		})
	}
	return cands
}

func keep(cands []int, idx *Index, ok func(*candidate) bool) []int {
	out := make([]int, 0, len(cands))
	for _, i := range cands {
		if ok(&idx.cands[i]) {
			out = append(out, i)
		}
	}
	return out
}

func containsAnyVariant(low string, variants []string) bool {
	for _, v := range variants {
		if strings.Contains(low, v) {
			return true
		}
	}
	return false
}
