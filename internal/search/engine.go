// engine.go implements the search engine: it owns the catalog snapshot, the
// observable search state, and the bounded search history, and runs the
// debounced query pipeline on a single goroutine.
//
// Search never blocks and never returns results directly; results arrive
// through the observable state. A one-slot pending cell plus a restarted timer
// implements the debounce window, so rapid submissions collapse to the last
// value submitted. The pipeline goroutine is the only writer of search state
// transitions; shared snapshots are guarded by one mutex.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mnl-au/glint/internal/catalog"
	"github.com/mnl-au/glint/internal/norm"
	"github.com/mnl-au/glint/internal/store"
)

// historyLimit caps the search history length.
const historyLimit = 10

// Engine is a debounced product search engine. All methods are safe for
// concurrent use. Close the engine when done; no methods may be called after
// or concurrently with Close.
type Engine struct {
	cfg   Config
	store store.Store

	mu          sync.RWMutex
	products    []catalog.Product
	state       State
	history     []string
	accepted    string // last query accepted past the debounce
	hasAccepted bool
	subs        map[int]chan State
	nextSub     int

	queries   chan string
	clears    chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New builds an engine with the given configuration and history store and
// starts its pipeline goroutine. A nil store keeps history in memory only.
// The store is not closed by the engine; its owner closes it.
func New(cfg Config, hs store.Store) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("search config: %w", err)
	}
	if hs == nil {
		hs = store.NewMemory()
	}

	e := &Engine{
		cfg:     cfg,
		store:   hs,
		subs:    make(map[int]chan State),
		queries: make(chan string, 1),
		clears:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	e.loadHistory()

	e.wg.Add(1)
	go e.run()
	return e, nil
}

// loadHistory restores persisted history. Any failure degrades to an empty
// history with a warning; search itself must keep working.
func (e *Engine) loadHistory() {
	raw, err := e.store.Get(context.Background(), store.HistoryKey)
	if err != nil {
		if err != store.ErrNotFound {
			slog.Warn("loading search history", "error", err)
		}
		return
	}
	var history []string
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		slog.Warn("decoding search history", "error", err)
		return
	}
	if len(history) > historyLimit {
		history = history[:historyLimit]
	}
	e.history = history
}

// run is the pipeline goroutine. It owns the debounce timer and performs
// every scoring pass, so state transitions are serialised by construction.
func (e *Engine) run() {
	defer e.wg.Done()

	timer := time.NewTimer(e.cfg.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var (
		pending    string
		hasPending bool
	)
	for {
		select {
		case <-e.done:
			return
		case q := <-e.queries:
			pending, hasPending = q, true
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(e.cfg.Debounce)
		case <-e.clears:
			pending, hasPending = "", false
		case <-timer.C:
			if !hasPending {
				continue
			}
			q := pending
			pending, hasPending = "", false
			if e.accept(q) {
				e.execute(q)
			}
		}
	}
}

// accept applies distinct-until-changed: a query identical to the last
// accepted one is dropped without a scoring pass or state transition.
func (e *Engine) accept(q string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.hasAccepted && q == e.accepted {
		return false
	}
	e.accepted, e.hasAccepted = q, true
	return true
}

// execute runs one scoring pass for an accepted query, publishing the
// in-flight transition first and the terminal one after.
func (e *Engine) execute(q string) {
	e.setState(func(s *State) {
		s.Query = q
		s.Searching = true
		s.Error = ""
	})

	results, err := e.scorePass(q)
	if err != nil {
		slog.Warn("search pass failed", "query", q, "error", err)
		e.setState(func(s *State) {
			s.Results = nil
			s.Searching = false
			s.Error = SearchFailedMessage
		})
		return
	}

	e.setState(func(s *State) {
		s.Results = results
		s.Searching = false
		s.HasSearched = true
		s.Error = ""
	})
}

// scorePass ranks the catalog for q and records the query in history. A panic
// while scoring is a per-query fault, not fatal to the engine.
func (e *Engine) scorePass(q string) (results []Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scoring: %v", r)
		}
	}()

	nq := norm.Normalize(q)
	if len([]rune(nq)) < e.cfg.MinQueryLength {
		return nil, nil
	}

	e.recordHistory(q)
	return e.rank(nq), nil
}

// rank scores every product against the normalised query, orders descending
// by score, and truncates to MaxResults. The sort is stable, so ties keep
// catalog order, though callers must not rely on tie order.
func (e *Engine) rank(normalizedQuery string) []Result {
	e.mu.RLock()
	products := e.products
	e.mu.RUnlock()

	var results []Result
	for _, p := range products {
		if r, ok := Classify(p, normalizedQuery, e.cfg); ok {
			results = append(results, r)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > e.cfg.MaxResults {
		results = results[:e.cfg.MaxResults]
	}
	return results
}

// recordHistory moves q to the front of the history, deduplicated and capped,
// and persists the new list without blocking the pipeline.
func (e *Engine) recordHistory(q string) {
	e.mu.Lock()
	next := make([]string, 0, historyLimit)
	next = append(next, q)
	for _, h := range e.history {
		if h == q {
			continue
		}
		next = append(next, h)
		if len(next) == historyLimit {
			break
		}
	}
	e.history = next
	snapshot := append([]string(nil), next...)
	e.mu.Unlock()

	data, err := json.Marshal(snapshot)
	if err != nil {
		slog.Warn("encoding search history", "error", err)
		return
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := e.store.Set(context.Background(), store.HistoryKey, string(data)); err != nil {
			slog.Warn("saving search history", "error", err)
		}
	}()
}

// Search submits a query into the debounced pipeline and returns immediately.
// Results arrive through the observable state. Submissions inside the
// debounce window collapse to the last value.
func (e *Engine) Search(query string) {
	q := strings.TrimSpace(query)
	for {
		select {
		case <-e.done:
			return
		case e.queries <- q:
			return
		default:
		}
		// Slot occupied: discard the stale submission, last write wins.
		select {
		case <-e.queries:
		default:
		}
	}
}

// SearchProducts runs a one-shot scoring pass and returns the ranked results
// directly. It bypasses the pipeline entirely: no debounce, no state
// transition, no history entry.
func (e *Engine) SearchProducts(query string) []Result {
	nq := norm.Normalize(query)
	if len([]rune(nq)) < e.cfg.MinQueryLength {
		return nil
	}
	return e.rank(nq)
}

// ExactMatch returns the first product in catalog order whose normalised name
// equals the normalised query.
func (e *Engine) ExactMatch(query string) (catalog.Product, bool) {
	nq := norm.Normalize(query)
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, p := range e.products {
		if norm.Normalize(p.Name) == nq {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// UpdateProducts replaces the catalog snapshot. Only subsequent searches see
// it; a scoring pass already in flight keeps the snapshot it started with.
func (e *Engine) UpdateProducts(products []catalog.Product) {
	snapshot := append([]catalog.Product(nil), products...)
	e.mu.Lock()
	e.products = snapshot
	e.mu.Unlock()
}

// Products returns a copy of the current catalog snapshot.
func (e *Engine) Products() []catalog.Product {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]catalog.Product(nil), e.products...)
}

// State returns a snapshot of the current search state.
func (e *Engine) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapshotLocked()
}

// Results returns the current result list.
func (e *Engine) Results() []Result {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]Result(nil), e.state.Results...)
}

// Searching reports whether a scoring pass is in flight.
func (e *Engine) Searching() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Searching
}

// History returns a copy of the search history, most recent first.
func (e *Engine) History() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.history...)
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// ClearSearch resets the live search state to its initial value and drops any
// pending debounced query. History is untouched. The next submission is
// always accepted, even if it repeats the last query.
func (e *Engine) ClearSearch() {
	select {
	case <-e.queries:
	default:
	}
	select {
	case e.clears <- struct{}{}:
	default:
	}

	e.mu.Lock()
	e.state = State{}
	e.accepted, e.hasAccepted = "", false
	s := e.snapshotLocked()
	e.mu.Unlock()
	e.publish(s)
}

// ClearHistory empties the search history and removes the persisted copy.
// The live search state is untouched.
func (e *Engine) ClearHistory() {
	e.mu.Lock()
	e.history = nil
	e.mu.Unlock()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := e.store.Remove(context.Background(), store.HistoryKey); err != nil && err != store.ErrNotFound {
			slog.Warn("removing search history", "error", err)
		}
	}()
}

// Subscribe returns a channel receiving state snapshots as they are
// published, starting with the current state. Delivery is conflated: a slow
// receiver observes the latest state rather than every intermediate one. The
// cancel function releases the subscription and closes the channel.
func (e *Engine) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	e.mu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	ch <- e.snapshotLocked()
	e.mu.Unlock()

	cancel := func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}

// Close stops the pipeline and waits for in-flight history writes to finish.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
	})
	e.wg.Wait()
}

// setState mutates the state under lock and publishes the resulting snapshot.
func (e *Engine) setState(mutate func(*State)) {
	e.mu.Lock()
	mutate(&e.state)
	s := e.snapshotLocked()
	e.mu.Unlock()
	e.publish(s)
}

// snapshotLocked copies the state; e.mu must be held.
func (e *Engine) snapshotLocked() State {
	s := e.state
	s.Results = append([]Result(nil), e.state.Results...)
	return s
}

// publish delivers s to every subscriber, replacing an unconsumed snapshot
// rather than blocking. Held under the read lock so cancel, which closes the
// channel under the write lock, can never race a send.
func (e *Engine) publish(s State) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, ch := range e.subs {
		select {
		case ch <- s:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}
