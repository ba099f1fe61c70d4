package model

import (
	"errors"
	"fmt"

	"github.com/KeydetZ/BC-Pokemon/internal/pokeapi"
	"github.com/samber/lo"
)

var ErrNotInGeneration = errors.New("never appeared in generation")

// MissingFieldError reports a key that the api response was expected to carry.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field %q", pokeapi.ErrMalformedResponse, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return pokeapi.ErrMalformedResponse
}

type Move struct {
	Name string
	// Version groups the move can be learned in, in api order.
	Generations []string
}

func (m Move) String() string {
	return m.Name
}

func (m Move) InGeneration(gen string) bool {
	return lo.Contains(m.Generations, gen)
}

func newMove(raw pokeapi.PokemonMove, field string) (Move, error) {
	if raw.Move == nil || raw.Move.Name == nil {
		return Move{}, &MissingFieldError{Field: field + ".move.name"}
	}
	generations := make([]string, 0, len(raw.VersionGroupDetails))
	for i, detail := range raw.VersionGroupDetails {
		if detail.VersionGroup == nil || detail.VersionGroup.Name == nil {
			return Move{}, &MissingFieldError{Field: fmt.Sprintf("%s.version_group_details[%d].version_group.name", field, i)}
		}
		generations = append(generations, *detail.VersionGroup.Name)
	}
	return Move{Name: *raw.Move.Name, Generations: generations}, nil
}

// FilterByGeneration keeps the moves available in gen. An empty gen returns moves as is.
func FilterByGeneration(moves []Move, gen string) []Move {
	if gen == "" {
		return moves
	}
	return lo.Filter(moves, func(m Move, _ int) bool {
		return m.InGeneration(gen)
	})
}
