package mux

import (
	"context"
	"net/http"
	"sync"
	"uno-server/internal/rng"
	"uno-server/pkg/store"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
)

type ctxKey int

const (
	ctxRecordKey ctxKey = iota
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	store   store.Store
	rng     rng.Generator
	locks   *gameLocks
}

// NewMux returns a new HTTP mux
func NewMux(version string, s store.Store) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		store:   s,
		rng:     rng.Crypto{},
		locks:   newGameLocks(),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())

	gr := r.PathPrefix("/game/{uuid:(?i)[a-f0-9]{8}(?:-[a-f0-9]{4}){3}-[a-f0-9]{12}}").Subrouter()
	gr.Use(this.gameMiddleware)

	gr.Methods(http.MethodGet).Path("").Handler(this.getGameUUID())
	gr.Methods(http.MethodPost).Path("/player").Handler(this.postGameUUIDPlayer())
	gr.Methods(http.MethodPost).Path("/player/{index:[0-9]+}/draw").Handler(this.postGameUUIDPlayerIndexDraw())
	gr.Methods(http.MethodPost).Path("/reshuffle").Handler(this.postGameUUIDReshuffle())

	return this
}

// gameMiddleware loads the game into the request context
// The game stays locked until the handler returns
func (m *Mux) gameMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(gmux.Vars(r)["uuid"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		unlock := m.locks.lock(id)
		defer unlock()

		record, err := m.store.Get(r.Context(), id)
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRecordKey, record)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func recordFromContext(r *http.Request) *store.Record {
	return r.Context().Value(ctxRecordKey).(*store.Record)
}

type gameLock struct {
	sync.Mutex
	refs int
}

// gameLocks hands out one mutex per game
// a mutex is dropped once nothing holds or waits for it
type gameLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*gameLock
}

func newGameLocks() *gameLocks {
	return &gameLocks{
		locks: make(map[uuid.UUID]*gameLock),
	}
}

func (g *gameLocks) lock(id uuid.UUID) func() {
	g.mu.Lock()
	l, found := g.locks[id]
	if !found {
		l = &gameLock{}
		g.locks[id] = l
	}
	l.refs++
	g.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		g.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(g.locks, id)
		}
		g.mu.Unlock()
	}
}

func (g *gameLocks) len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.locks)
}
