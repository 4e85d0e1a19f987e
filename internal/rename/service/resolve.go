package service

import (
	"math"
	"strings"

	"renamer-service/internal/rename/model"
)

// Resolve maps one filename stem to the canonical name it stands for, or to
// nothing. Decision procedure, terminal on first applicable exit:
//
//  1. exact normalized match -> that name, score 100
//  2. empty canonical list   -> no match, 0
//  3. anchor filter empties the set -> no match, 0
//  4. score survivors, best wins, earlier candidate breaks ties
//  5. winner must still contain the primary token and region -> else no match, 0
//  6. best below threshold*100 -> no match, but the score is reported
//  7. the winner, score rounded to one decimal
//
// Malformed input never errors: absent anchors just mean no restriction.
func (e *Engine) Resolve(stem string, idx *Index, threshold float64) model.MatchResult {
	res := model.MatchResult{FileStem: stem}

	stemNorm := Normalize(stem)
	if i, ok := idx.byNorm[stemNorm]; ok && stemNorm != "" {
		res.MatchedName = &idx.cands[i].name
		res.Score = 100
		return res
	}
	if idx.Len() == 0 {
		return res
	}

	anchors := e.Extract(stem)
	cands := make([]int, idx.Len())
	for i := range cands {
		cands[i] = i
	}
	cands = e.filterCandidates(cands, idx, anchors)
	if len(cands) == 0 {
		return res
	}

	// Seed from the first survivor (the set is non-empty here) so bestIdx is
	// always a valid index; strict > keeps the earlier candidate on ties.
	bestIdx := cands[0]
	bestScore := score(stemNorm, anchors, &idx.cands[bestIdx])
	for _, i := range cands[1:] {
		if s := score(stemNorm, anchors, &idx.cands[i]); s > bestScore {
			bestIdx, bestScore = i, s
		}
	}

	// The filter already held every survivor to these anchors; the winner is
	// re-checked on its own so a looser filter cannot silently admit a winner
	// missing them. Keep both.
	winner := &idx.cands[bestIdx]
	if anchors.Primary != "" && !strings.Contains(winner.low, anchors.Primary) {
		return res
	}
	if anchors.Region != "" {
		r := e.region(anchors.Region)
		if r != nil && !containsAnyVariant(winner.low, r.Variants) {
			return res
		}
	}

	rounded := math.Round(bestScore*10) / 10
	if threshold > 0 && bestScore < threshold*100 {
		res.Score = rounded
		return res
	}
	res.MatchedName = &winner.name
	res.Score = rounded
	return res
}

// ResolveAll resolves every stem independently against the same canonical
// list, results in input order. Two stems may legitimately resolve to the
// same canonical name; disambiguating output filenames is the renamer's
// job, not the engine's.
func (e *Engine) ResolveAll(stems, names []string, threshold float64) []model.MatchResult {
	idx := BuildIndex(names)
	out := make([]model.MatchResult, 0, len(stems))
	for _, stem := range stems {
		out = append(out, e.Resolve(stem, idx, threshold))
	}
	return out
}
