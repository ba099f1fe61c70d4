package model

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/KeydetZ/BC-Pokemon/internal/pokeapi"
	"github.com/samber/lo"
)

type Pokemon struct {
	Name    string
	Pokedex int
	Moves   []Move
}

func NewPokemon(raw *pokeapi.Pokemon) (*Pokemon, error) {
	if raw == nil {
		return nil, &MissingFieldError{Field: "pokemon"}
	}
	if raw.Name == nil {
		return nil, &MissingFieldError{Field: "name"}
	}
	if raw.ID == nil {
		return nil, &MissingFieldError{Field: "id"}
	}
	// an absent key decodes to nil, an empty list to a non-nil slice
	if raw.Moves == nil {
		return nil, &MissingFieldError{Field: "moves"}
	}
	moves := make([]Move, 0, len(raw.Moves))
	for i, rawMove := range raw.Moves {
		move, err := newMove(rawMove, fmt.Sprintf("moves[%d]", i))
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}
	return &Pokemon{
		Name:    *raw.Name,
		Pokedex: *raw.ID,
		Moves:   moves,
	}, nil
}

// FilterGeneration drops every move not learnable in gen.
func (p *Pokemon) FilterGeneration(gen string) {
	p.Moves = FilterByGeneration(p.Moves, gen)
}

func (p *Pokemon) SortMoves() {
	slices.SortStableFunc(p.Moves, func(a, b Move) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

func (p *Pokemon) MoveNames() []string {
	return lo.Map(p.Moves, func(m Move, _ int) string {
		return m.Name
	})
}

func (p *Pokemon) String() string {
	return fmt.Sprintf("name: %s\npokedex: %d\nmoves: [%s]\n", p.Name, p.Pokedex, strings.Join(p.MoveNames(), ", "))
}
