package pokeapi

type Type struct {
	// The identifier for this resource.
	ID *int `json:"id"`
	// The name for this resource.
	Name *string `json:"name"`
	// A list of details of Pokémon that have this type.
	Pokemon []TypePokemon `json:"pokemon"`
	// A list of moves that have this type.
	Moves []NamedAPIResource `json:"moves"`
}

type TypePokemon struct {
	// The order the Pokémon's types are listed in.
	Slot int `json:"slot"`
	// The Pokémon that has the referenced type.
	Pokemon *NamedAPIResource `json:"pokemon"`
}
