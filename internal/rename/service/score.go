package service

import (
	"strings"

	edlib "github.com/hbollon/go-edlib"
)

// Anchor-agreement bonuses. Token overlap under-rewards exact structural
// agreement: a shared creative-ID token is far stronger evidence than a
// shared vocabulary word, and an exact pixel-size match likewise. Without
// the bonus a near-miss on wording can outscore the true match.
const (
	sizeBonus       = 8.0
	idTokenBonus    = 3.5
	idTokenBonusCap = 7.0
	scoreCeiling    = 100.0
)

// score computes the 0..100 similarity of a stem against one candidate:
// word-level Sørensen-Dice over the normalized strings (order- and
// duplicate-insensitive token overlap), plus the anchor bonuses, clamped.
func score(stemNorm string, stemA Anchors, c *candidate) float64 {
	var s float64
	if stemNorm != "" && c.norm != "" {
		s = wordDice(stemNorm, c.norm) * 100
	}
	if stemA.Size != "" && stemA.Size == c.size {
		s += sizeBonus
	}
	if shared := sharedCount(stemA.IDTokens, c.idToks); shared > 0 {
		b := idTokenBonus * float64(shared)
		if b > idTokenBonusCap {
			b = idTokenBonusCap
		}
		s += b
	}
	if s > scoreCeiling {
		s = scoreCeiling
	}
	return s
}

// wordDice is the Sørensen-Dice coefficient over the two strings' word
// sets. edlib shingles by rune, never by word, so each distinct word is
// first mapped to one private-use rune; length-1 shingles of the encoded
// strings then coincide with the word sets.
func wordDice(a, b string) float64 {
	symbols := make(map[string]rune, 16)
	next := rune(0xE000)
	encode := func(s string) string {
		var sb strings.Builder
		for _, w := range strings.Fields(s) {
			r, ok := symbols[w]
			if !ok {
				r, next = next, next+1
				symbols[w] = r
			}
			sb.WriteRune(r)
		}
		return sb.String()
	}
	ea, eb := encode(a), encode(b)
	return float64(edlib.SorensenDiceCoefficient(ea, eb, 1))
}

func sharedCount(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}
