package engine

import (
	"regexp"
	"strings"
)

// Default connector tokens for the "from X to Y" pattern. Locale-specific
// and configurable: observed phrasings vary, so deployments can extend the
// lists without touching the matcher.
var (
	DefaultFromTokens = []string{"з", "із", "зі", "с", "из", "від", "от"}
	DefaultToTokens   = []string{"до", "в", "у", "на", "к"}
)

// Resolver finds the single best catalog record for a route query.
// Matching is single-best-or-none: no ranked list, no guessing.
type Resolver struct {
	connector *regexp.Regexp
}

func NewResolver(fromTokens, toTokens []string) *Resolver {
	if len(fromTokens) == 0 {
		fromTokens = DefaultFromTokens
	}
	if len(toTokens) == 0 {
		toTokens = DefaultToTokens
	}
	return &Resolver{connector: compileConnector(fromTokens, toTokens)}
}

func compileConnector(from, to []string) *regexp.Regexp {
	quote := func(tokens []string) string {
		quoted := make([]string, len(tokens))
		for i, t := range tokens {
			quoted[i] = regexp.QuoteMeta(Normalize(t))
		}
		return strings.Join(quoted, "|")
	}
	// connector tokens only count as whole words
	return regexp.MustCompile(`(?:^|\s)(?:` + quote(from) + `)\s+(.+?)\s+(?:` + quote(to) + `)\s+(.+)$`)
}

// Resolve applies the containment strategy first and the two-slot fuzzy
// strategy second. nil is the defined "route not found" outcome, not an
// error; an ambiguous fuzzy match is also nil, never a guess.
func (r *Resolver) Resolve(normalized string, catalog []Route, ix *Index) *Route {
	if route := matchByContainment(normalized, catalog); route != nil {
		return route
	}
	from, to, ok := r.extractSlots(normalized)
	if !ok {
		return nil
	}
	return MatchSlots(from, to, catalog, ix)
}

// matchByContainment accepts the first record with origin-side AND
// destination-side evidence in the text. Stops may stand in for either
// endpoint, but one mention cannot count for both sides.
func matchByContainment(text string, catalog []Route) *Route {
	for i := range catalog {
		r := &catalog[i]
		origin, ok := firstContained(text, originNames(r), "")
		if !ok {
			continue
		}
		if _, ok := firstContained(text, destNames(r), origin); ok {
			return r
		}
	}
	return nil
}

func originNames(r *Route) []string {
	names := []string{r.Start}
	if r.Aliases != nil {
		names = append(names, r.Aliases.Start...)
	}
	for _, s := range r.Stops {
		names = append(names, s.City)
	}
	return names
}

func destNames(r *Route) []string {
	names := []string{r.End}
	if r.Aliases != nil {
		names = append(names, r.Aliases.End...)
	}
	for _, s := range r.Stops {
		names = append(names, s.City)
	}
	return names
}

func firstContained(text string, names []string, skip string) (string, bool) {
	for _, name := range names {
		n := Normalize(name)
		if n == "" || n == skip {
			continue
		}
		if strings.Contains(text, n) {
			return n, true
		}
	}
	return "", false
}

func (r *Resolver) extractSlots(text string) (from, to string, ok bool) {
	m := r.connector.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// MatchSlots fuzzy-matches a from/to phrase pair against the index and
// returns the unique record joining the two matched cities. Exact
// orientation (from=start, to=end) is preferred; the reversed one is
// consulted only when the exact orientation yields nothing. More than one
// qualifying record in the consulted orientation is a no-result.
func MatchSlots(from, to string, catalog []Route, ix *Index) *Route {
	fromMatch, ok := ix.BestMatch(from)
	if !ok {
		return nil
	}
	toMatch, ok := ix.BestMatch(to)
	if !ok {
		return nil
	}

	route, n := byEndpoints(catalog, fromMatch.Target, toMatch.Target)
	if n == 0 {
		route, n = byEndpoints(catalog, toMatch.Target, fromMatch.Target)
	}
	if n != 1 {
		return nil // ambiguous: a deliberate no-result, never a guess
	}
	return route
}

func byEndpoints(catalog []Route, start, end string) (*Route, int) {
	var found *Route
	n := 0
	for i := range catalog {
		r := &catalog[i]
		if Normalize(r.Start) != start || Normalize(r.End) != end {
			continue
		}
		found = r
		n++
	}
	return found, n
}
