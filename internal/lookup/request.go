package lookup

import (
	"errors"
	"strconv"
	"strings"

	"github.com/KeydetZ/BC-Pokemon/internal/pokeapi"
)

const (
	InputPokemonID   = "pokemon id"
	InputPokemonName = "pokemon name"
	InputMoveType    = "move type"
)

var (
	ErrMissingArgument     = errors.New("missing argument (--lookup | --move-type)")
	ErrConflictingArgument = errors.New("only one of --lookup and --move-type may be set")
)

// Request is the resolved form of the command line input.
type Request struct {
	Entity string
	// Human readable description of Value, used in error messages.
	InputType string
	Value      string
	Generation string
}

// NewRequest resolves the lookup and move type flag values into a Request.
// Exactly one of lookup and moveType must be non-empty.
func NewRequest(lookup, moveType, generation string) (Request, error) {
	lookup = strings.TrimSpace(lookup)
	moveType = strings.TrimSpace(moveType)
	req := Request{Generation: strings.TrimSpace(generation)}
	switch {
	case lookup != "" && moveType != "":
		return Request{}, &ExitError{Code: ExitUsage, Err: ErrConflictingArgument}
	case lookup != "":
		req.Entity = pokeapi.EntityPokemon
		// no pokemon has a purely numeric name
		if id, err := strconv.Atoi(lookup); err == nil {
			req.Value = strconv.Itoa(id)
			req.InputType = InputPokemonID
		} else {
			req.Value = lookup
			req.InputType = InputPokemonName
		}
	case moveType != "":
		req.Entity = pokeapi.EntityType
		req.Value = moveType
		req.InputType = InputMoveType
	default:
		return Request{}, &ExitError{Code: ExitUsage, Err: ErrMissingArgument}
	}
	return req, nil
}
