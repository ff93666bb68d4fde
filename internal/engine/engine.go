package engine

import "sync/atomic"

// Config tunes the engine. The zero value gives Jaro-Winkler scoring and
// the default Ukrainian/Russian connector tokens.
type Config struct {
	Scorer     Scorer
	FromTokens []string
	ToTokens   []string
}

// snapshot pairs a catalog with its derived index so a reload can never be
// observed half-applied.
type snapshot struct {
	catalog []Route
	index   *Index
}

// Engine is the whole pipeline: normalize → classify → resolve → render.
// Stateless per call; the snapshot is immutable, so one Engine serves any
// number of goroutines without locking.
type Engine struct {
	cfg      Config
	resolver *Resolver
	snap     atomic.Pointer[snapshot]
}

// Reply is one answered message.
type Reply struct {
	Intent Intent
	Route  *Route // set only when a route query resolved
	Text   string
}

// New validates the catalog and builds the engine. A bad catalog is fatal
// here: the process must not start serving with nothing to answer from.
func New(catalog []Route, cfg Config) (*Engine, error) {
	e := &Engine{
		cfg:      cfg,
		resolver: NewResolver(cfg.FromTokens, cfg.ToTokens),
	}
	if err := e.Swap(catalog); err != nil {
		return nil, err
	}
	return e, nil
}

// Swap atomically replaces the (catalog, index) pair. In-flight calls keep
// the snapshot they loaded; new calls see the new one.
func (e *Engine) Swap(catalog []Route) error {
	if err := ValidateCatalog(catalog); err != nil {
		return err
	}
	e.snap.Store(&snapshot{
		catalog: catalog,
		index:   BuildIndex(catalog, e.cfg.Scorer),
	})
	return nil
}

// Catalog returns the current records.
func (e *Engine) Catalog() []Route {
	return e.snap.Load().catalog
}

// HandleMessage answers one inbound text. Total: every input gets a reply,
// a failed resolution gets the fallback.
func (e *Engine) HandleMessage(raw string) Reply {
	normalized := Normalize(raw)
	intent := Classify(normalized)
	if intent != IntentRouteQuery {
		return Reply{Intent: intent, Text: Render(intent, nil)}
	}

	s := e.snap.Load()
	route := e.resolver.Resolve(normalized, s.catalog, s.index)
	if route == nil {
		// residual bucket: nothing matched and no route found
		return Reply{Intent: IntentUnknown, Text: Render(IntentUnknown, nil)}
	}
	return Reply{Intent: IntentRouteQuery, Route: route, Text: Render(IntentRouteQuery, route)}
}

// Lookup resolves an explicit from/to pair against the current snapshot,
// for callers that already have the two slots (the HTTP search endpoint).
func (e *Engine) Lookup(from, to string) *Route {
	s := e.snap.Load()
	return MatchSlots(from, to, s.catalog, s.index)
}
