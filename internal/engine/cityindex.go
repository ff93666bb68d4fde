package engine

// Acceptance thresholds for fuzzy lookup. Below SimilarityThreshold the
// best candidate is still rejected; above ConfidentThreshold no further
// disambiguation is worth doing.
const (
	SimilarityThreshold = 0.6
	ConfidentThreshold  = 0.95
)

// Match is the single best canonical name for a lookup.
type Match struct {
	Target string
	Score  float64
}

// Index holds the canonical city set derived from a catalog: every start,
// end and stop city, normalized. Built once per catalog load and read-only
// afterwards, so it is shared across goroutines without locking.
type Index struct {
	names []string // insertion order, for deterministic tie-break
	seen  map[string]struct{}
	score Scorer
}

// BuildIndex derives the canonical city set from the catalog.
func BuildIndex(catalog []Route, score Scorer) *Index {
	if score == nil {
		score = JaroWinkler
	}
	ix := &Index{seen: make(map[string]struct{}), score: score}
	for _, r := range catalog {
		ix.add(r.Start)
		ix.add(r.End)
		for _, s := range r.Stops {
			ix.add(s.City)
		}
	}
	return ix
}

func (ix *Index) add(name string) {
	n := Normalize(name)
	if n == "" {
		return
	}
	if _, ok := ix.seen[n]; ok {
		return
	}
	ix.seen[n] = struct{}{}
	ix.names = append(ix.names, n)
}

// Contains reports exact membership of a normalized name.
func (ix *Index) Contains(name string) bool {
	_, ok := ix.seen[Normalize(name)]
	return ok
}

// BestMatch returns the highest-scoring canonical name for the given text,
// or ok=false when even the best candidate falls below SimilarityThreshold.
// On equal scores the name added first wins, so results are reproducible.
func (ix *Index) BestMatch(name string) (Match, bool) {
	n := Normalize(name)
	if n == "" {
		return Match{}, false
	}
	if _, ok := ix.seen[n]; ok {
		return Match{Target: n, Score: 1}, true
	}

	best := Match{Score: -1}
	for _, candidate := range ix.names {
		s := ix.score(n, candidate)
		if s > best.Score {
			best = Match{Target: candidate, Score: s}
			if s >= ConfidentThreshold {
				break
			}
		}
	}
	if best.Score < SimilarityThreshold {
		return Match{}, false
	}
	return best, true
}
