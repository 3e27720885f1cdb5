package docctx

import (
	"sort"
	"strings"
)

// TopChunks returns the k chunks most relevant to the query, scored by
// how many distinct query words each chunk contains. Ties keep chunk
// order. A query sharing no words with any chunk falls back to the
// first k chunks.
func TopChunks(chunks []string, query string, k int) []string {
	if k <= 0 || len(chunks) == 0 {
		return nil
	}
	if k > len(chunks) {
		k = len(chunks)
	}

	terms := queryTerms(query)

	type ranked struct {
		idx   int
		score int
	}
	scores := make([]ranked, len(chunks))
	total := 0
	for i, c := range chunks {
		lower := strings.ToLower(c)
		s := 0
		for t := range terms {
			if strings.Contains(lower, t) {
				s++
			}
		}
		scores[i] = ranked{idx: i, score: s}
		total += s
	}

	if total == 0 {
		return append([]string(nil), chunks[:k]...)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	out := make([]string, 0, k)
	for _, r := range scores[:k] {
		out = append(out, chunks[r.idx])
	}
	return out
}

// queryTerms lowercases the query and keeps words long enough to be
// selective; one- and two-letter words match everything.
func queryTerms(query string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.Trim(w, ".,?!:;\"'()")
		if len(w) >= 3 {
			terms[w] = struct{}{}
		}
	}
	return terms
}
