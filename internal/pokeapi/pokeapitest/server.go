// Package pokeapitest serves canned pokeapi responses over httptest.
package pokeapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

type Move struct {
	Name          string
	VersionGroups []string
}

type Pokemon struct {
	ID    int
	Name  string
	Moves []Move
}

type Type struct {
	Name    string
	Moves   []string
	Members []string
}

type Server struct {
	*httptest.Server

	mu        sync.RWMutex
	resources map[string][]byte
	requests  atomic.Int64
}

// NewServer starts a server preloaded with Kanto and closes it when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{resources: make(map[string][]byte)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	for _, p := range KantoPokemon {
		s.AddPokemon(t, p)
	}
	for _, typ := range KantoTypes {
		s.AddType(t, typ)
	}
	s.AddRaw("pokemon/missingno", `{"id": 0, "name": "missingno", "moves": [{"version_group_details": []}]}`)
	return s
}

// BaseURL is the value to hand to pokeapi.NewClient.
func (s *Server) BaseURL() string {
	return s.URL + "/api/v2/"
}

func (s *Server) PokemonURL(name string) string {
	return s.BaseURL() + "pokemon/" + name + "/"
}

// Requests counts every request served so far, including failed ones.
func (s *Server) Requests() int {
	return int(s.requests.Load())
}

func (s *Server) AddRaw(endpoint, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[endpoint] = []byte(body)
}

func (s *Server) AddPokemon(t testing.TB, p Pokemon) {
	t.Helper()
	moves := make([]any, 0, len(p.Moves))
	for _, m := range p.Moves {
		details := make([]any, 0, len(m.VersionGroups))
		for _, vg := range m.VersionGroups {
			details = append(details, map[string]any{
				"level_learned_at":  1,
				"move_learn_method": map[string]any{"name": "level-up", "url": s.BaseURL() + "move-learn-method/1/"},
				"version_group":     map[string]any{"name": vg, "url": s.BaseURL() + "version-group/" + vg + "/"},
			})
		}
		moves = append(moves, map[string]any{
			"move":                  map[string]any{"name": m.Name, "url": s.BaseURL() + "move/" + m.Name + "/"},
			"version_group_details": details,
		})
	}
	body := mustJSON(t, map[string]any{"id": p.ID, "name": p.Name, "moves": moves})
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources["pokemon/"+p.Name] = body
	s.resources["pokemon/"+strconv.Itoa(p.ID)] = body
}

func (s *Server) AddType(t testing.TB, typ Type) {
	t.Helper()
	moves := make([]any, 0, len(typ.Moves))
	for _, m := range typ.Moves {
		moves = append(moves, map[string]any{"name": m, "url": s.BaseURL() + "move/" + m + "/"})
	}
	members := make([]any, 0, len(typ.Members))
	for i, name := range typ.Members {
		members = append(members, map[string]any{
			"slot":    i%2 + 1,
			"pokemon": map[string]any{"name": name, "url": s.PokemonURL(name)},
		})
	}
	body := mustJSON(t, map[string]any{"id": len(typ.Name), "name": typ.Name, "moves": moves, "pokemon": members})
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources["type/"+typ.Name] = body
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)
	key := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v2/"), "/")
	s.mu.RLock()
	body, ok := s.resources[key]
	s.mu.RUnlock()
	if r.Method != http.MethodGet || !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func mustJSON(t testing.TB, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshalling fixture: %s", err)
	}
	return b
}
