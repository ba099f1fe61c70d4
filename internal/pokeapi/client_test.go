package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/KeydetZ/BC-Pokemon/internal/pokeapi/pokeapitest"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T) (*Client, *pokeapitest.Server) {
	t.Helper()
	srv := pokeapitest.NewServer(t)
	return NewClient(srv.BaseURL(), srv.Client(), zaptest.NewLogger(t)), srv
}

func TestClientURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		entity   string
		value    string
		expected string
	}{
		{
			name:     "Default base url",
			base:     "",
			entity:   EntityPokemon,
			value:    "pikachu",
			expected: "https://pokeapi.co/api/v2/pokemon/pikachu",
		},
		{
			name:     "Base url without trailing slash",
			base:     "http://localhost:8080/api/v2",
			entity:   EntityType,
			value:    "normal",
			expected: "http://localhost:8080/api/v2/type/normal",
		},
		{
			name:     "Numeric value",
			base:     DefaultBaseURL,
			entity:   EntityPokemon,
			value:    "25",
			expected: "https://pokeapi.co/api/v2/pokemon/25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.base, nil, nil)
			if got := c.URL(tt.entity, tt.value); got != tt.expected {
				t.Errorf("URL() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClientPokemon(t *testing.T) {
	c, _ := newTestClient(t)

	for _, value := range []string{"pikachu", "25"} {
		p, err := c.Pokemon(context.Background(), value)
		if err != nil {
			t.Fatalf("Pokemon(%q): %s", value, err)
		}
		if p.Name == nil || *p.Name != "pikachu" {
			t.Fatalf("Pokemon(%q) name = %v, want pikachu", value, p.Name)
		}
		if p.ID == nil || *p.ID != 25 {
			t.Fatalf("Pokemon(%q) id = %v, want 25", value, p.ID)
		}
		if len(p.Moves) != 4 {
			t.Fatalf("Pokemon(%q) has %d moves, want 4", value, len(p.Moves))
		}
		first := p.Moves[0]
		if *first.Move.Name != "thunderbolt" || len(first.VersionGroupDetails) != 2 {
			t.Fatalf("unexpected first move: %+v", first)
		}
		if *first.VersionGroupDetails[1].VersionGroup.Name != "yellow" {
			t.Fatalf("unexpected version group: %q", *first.VersionGroupDetails[1].VersionGroup.Name)
		}
	}
}

func TestClientPokemonByURL(t *testing.T) {
	c, srv := newTestClient(t)

	p, err := c.PokemonByURL(context.Background(), srv.PokemonURL("snorlax"))
	if err != nil {
		t.Fatalf("%s", err)
	}
	if *p.Name != "snorlax" {
		t.Fatalf("got %q, want snorlax", *p.Name)
	}
}

func TestClientType(t *testing.T) {
	c, srv := newTestClient(t)

	typ, err := c.Type(context.Background(), "normal")
	if err != nil {
		t.Fatalf("%s", err)
	}
	if len(typ.Moves) != 12 {
		t.Fatalf("got %d moves, want 12", len(typ.Moves))
	}
	if len(typ.Pokemon) != 4 {
		t.Fatalf("got %d pokemon, want 4", len(typ.Pokemon))
	}
	if got := *typ.Pokemon[0].Pokemon.URL; got != srv.PokemonURL("rattata") {
		t.Fatalf("member url = %q, want %q", got, srv.PokemonURL("rattata"))
	}
}

func TestClientNotFound(t *testing.T) {
	c, _ := newTestClient(t)

	tests := []struct {
		name string
		call func() error
	}{
		{
			name: "Unknown pokemon name",
			call: func() error { _, err := c.Pokemon(context.Background(), "pika"); return err },
		},
		{
			name: "Out of range id",
			call: func() error { _, err := c.Pokemon(context.Background(), "100000"); return err },
		},
		{
			name: "Unknown type",
			call: func() error { _, err := c.Type(context.Background(), "norm"); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected a StatusError, got %v", err)
			}
			if statusErr.StatusCode != http.StatusNotFound {
				t.Fatalf("status = %d, want %d", statusErr.StatusCode, http.StatusNotFound)
			}
		})
	}
}

func TestClientMalformedBody(t *testing.T) {
	c, srv := newTestClient(t)
	srv.AddRaw("pokemon/broken", `{"id": 1, "name": `)

	_, err := c.Pokemon(context.Background(), "broken")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestClientCancelledContext(t *testing.T) {
	c, srv := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Pokemon(ctx, "pikachu")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if srv.Requests() != 0 {
		t.Fatalf("no request should reach the server, got %d", srv.Requests())
	}
}
