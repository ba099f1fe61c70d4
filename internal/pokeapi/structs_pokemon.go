package pokeapi

type NamedAPIResource struct {
	// The name of the referenced resource.
	Name *string `json:"name"`
	// The URL of the referenced resource.
	URL *string `json:"url"`
}

type Pokemon struct {
	// The identifier for this resource.
	ID *int `json:"id"`
	// The name for this resource.
	Name *string `json:"name"`
	// A list of moves along with learn methods and level details pertaining to specific version groups.
	Moves []PokemonMove `json:"moves"`
}

type PokemonMove struct {
	// The move the Pokémon can learn.
	Move *NamedAPIResource `json:"move"`
	// The details of the version in which the Pokémon can learn the move.
	VersionGroupDetails []PokemonMoveVersion `json:"version_group_details"`
}

type PokemonMoveVersion struct {
	// The method by which the move is learned.
	MoveLearnMethod *NamedAPIResource `json:"move_learn_method"`
	// The version group in which the move is learned.
	VersionGroup *NamedAPIResource `json:"version_group"`
	// The minimum level to learn the move.
	LevelLearnedAt int `json:"level_learned_at"`
}
