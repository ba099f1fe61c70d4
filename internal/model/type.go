package model

import (
	"fmt"

	"github.com/KeydetZ/BC-Pokemon/internal/pokeapi"
)

// Member is a pokemon listed under a type together with its detail url.
type Member struct {
	Name string
	URL  string
}

// Type holds the move catalog and member list of a move type. Both keep api order.
type Type struct {
	Name      string
	MoveNames []string
	Members   []Member

	moveSet map[string]struct{}
}

func NewType(raw *pokeapi.Type) (*Type, error) {
	if raw == nil {
		return nil, &MissingFieldError{Field: "type"}
	}
	if raw.Moves == nil {
		return nil, &MissingFieldError{Field: "moves"}
	}
	if raw.Pokemon == nil {
		return nil, &MissingFieldError{Field: "pokemon"}
	}
	t := &Type{
		MoveNames: make([]string, 0, len(raw.Moves)),
		Members:   make([]Member, 0, len(raw.Pokemon)),
		moveSet:   make(map[string]struct{}, len(raw.Moves)),
	}
	if raw.Name != nil {
		t.Name = *raw.Name
	}
	for i, move := range raw.Moves {
		if move.Name == nil {
			return nil, &MissingFieldError{Field: fmt.Sprintf("moves[%d].name", i)}
		}
		if _, dup := t.moveSet[*move.Name]; dup {
			continue
		}
		t.moveSet[*move.Name] = struct{}{}
		t.MoveNames = append(t.MoveNames, *move.Name)
	}
	index := make(map[string]int, len(raw.Pokemon))
	for i, entry := range raw.Pokemon {
		if entry.Pokemon == nil || entry.Pokemon.Name == nil {
			return nil, &MissingFieldError{Field: fmt.Sprintf("pokemon[%d].pokemon.name", i)}
		}
		if entry.Pokemon.URL == nil {
			return nil, &MissingFieldError{Field: fmt.Sprintf("pokemon[%d].pokemon.url", i)}
		}
		member := Member{Name: *entry.Pokemon.Name, URL: *entry.Pokemon.URL}
		// a repeated name keeps its first position but takes the later url
		if j, dup := index[member.Name]; dup {
			t.Members[j] = member
			continue
		}
		index[member.Name] = len(t.Members)
		t.Members = append(t.Members, member)
	}
	return t, nil
}

func (t *Type) HasMove(name string) bool {
	_, ok := t.moveSet[name]
	return ok
}
