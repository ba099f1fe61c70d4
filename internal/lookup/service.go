package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KeydetZ/BC-Pokemon/internal/model"
	"github.com/KeydetZ/BC-Pokemon/internal/pokeapi"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TopK is the number of moves reported for a move type.
const TopK = 10

const DefaultConcurrency = 8

// Fetcher is the subset of the pokeapi client the service needs.
type Fetcher interface {
	Pokemon(ctx context.Context, value string) (*pokeapi.Pokemon, error)
	PokemonByURL(ctx context.Context, url string) (*pokeapi.Pokemon, error)
	Type(ctx context.Context, value string) (*pokeapi.Type, error)
}

type Config struct {
	// Out receives the result summary.
	Out io.Writer
	// Progress receives notices about long running requests. Nil disables them.
	Progress io.Writer
	// Maximum number of member pokemon fetched at once during move type aggregation.
	Concurrency int
}

type Service struct {
	fetcher     Fetcher
	logger      *zap.Logger
	out         io.Writer
	progress    io.Writer
	concurrency int
}

func NewService(fetcher Fetcher, logger *zap.Logger, cfg Config) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Service{
		fetcher:     fetcher,
		logger:      logger,
		out:         cfg.Out,
		progress:    cfg.Progress,
		concurrency: cfg.Concurrency,
	}
}

// Result holds whichever of the two lookups was performed.
type Result struct {
	Pokemon  *model.Pokemon
	TopMoves []string
}

// Run dispatches req to the matching handler.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	s.logger.Info("handling request",
		zap.String("entity", req.Entity),
		zap.String("input_type", req.InputType),
		zap.String("value", req.Value),
		zap.String("generation", req.Generation),
	)
	switch req.Entity {
	case pokeapi.EntityPokemon:
		p, err := s.LookupPokemon(ctx, req)
		if err != nil {
			return nil, err
		}
		return &Result{Pokemon: p}, nil
	case pokeapi.EntityType:
		moves, err := s.TopMoves(ctx, req)
		if err != nil {
			return nil, err
		}
		return &Result{TopMoves: moves}, nil
	default:
		return nil, exitf(ExitUnsupported, ErrUnsupported, "%q", req.Entity)
	}
}

// LookupPokemon fetches a single pokemon, filters its moves by the requested
// generation and prints them sorted by name.
func (s *Service) LookupPokemon(ctx context.Context, req Request) (*model.Pokemon, error) {
	raw, err := s.fetcher.Pokemon(ctx, req.Value)
	if err != nil {
		return nil, fetchError(err, req)
	}
	p, err := model.NewPokemon(raw)
	if err != nil {
		return nil, exitf(ExitInvalidInput, err, "invalid %s: %s", req.InputType, req.Value)
	}

	p.FilterGeneration(req.Generation)
	if len(p.Moves) == 0 {
		if req.Generation == "" {
			return nil, &ExitError{Code: ExitNotInGeneration, Err: fmt.Errorf("pokemon %s has no moves: %w", req.Value, model.ErrNotInGeneration)}
		}
		return nil, &ExitError{Code: ExitNotInGeneration, Err: fmt.Errorf("pokemon %s %w %s", req.Value, model.ErrNotInGeneration, req.Generation)}
	}
	p.SortMoves()

	s.logger.Debug("pokemon resolved", zap.String("name", p.Name), zap.Int("moves", len(p.Moves)))
	if _, err := fmt.Fprint(s.out, p.String()); err != nil {
		return nil, err
	}
	return p, nil
}

// TopMoves counts how many pokemon of the requested type use each move of that
// type and prints the TopK most used ones.
func (s *Service) TopMoves(ctx context.Context, req Request) ([]string, error) {
	raw, err := s.fetcher.Type(ctx, req.Value)
	if err != nil {
		return nil, fetchError(err, req)
	}
	t, err := model.NewType(raw)
	if err != nil {
		return nil, exitf(ExitInvalidInput, err, "invalid %s: %s", req.InputType, req.Value)
	}

	if s.progress != nil {
		fmt.Fprintln(s.progress, "Processing request... this could take up to 1 minute")
	}
	s.logger.Info("aggregating moves",
		zap.String("type", req.Value),
		zap.Int("catalog", len(t.MoveNames)),
		zap.Int("members", len(t.Members)),
		zap.Int("concurrency", s.concurrency),
	)

	counter := NewMoveCounter(t.MoveNames)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, member := range t.Members {
		g.Go(func() error {
			return s.countMember(gctx, t, counter, member, req.Generation)
		})
	}
	if err := g.Wait(); err != nil {
		if interrupted(err) {
			return nil, exitf(ExitFailure, err, "%s lookup interrupted", req.InputType)
		}
		s.logger.Error("move aggregation failed", zap.Error(err))
		return nil, &ExitError{Code: ExitAggregation, Err: fmt.Errorf("%w: %w", ErrAggregation, err)}
	}

	top := counter.Top(TopK)
	name := t.Name
	if name == "" {
		name = req.Value
	}
	header := fmt.Sprintf("Top %d %s moves that are most commonly used:", TopK, cases.Title(language.English).String(name))
	if _, err := fmt.Fprintf(s.out, "%s\n[%s]\n", header, strings.Join(top, ", ")); err != nil {
		return nil, err
	}
	return top, nil
}

func (s *Service) countMember(ctx context.Context, t *model.Type, counter *MoveCounter, member model.Member, gen string) error {
	s.logger.Debug("fetching member", zap.String("pokemon", member.Name))
	raw, err := s.fetcher.PokemonByURL(ctx, member.URL)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", member.Name, err)
	}
	p, err := model.NewPokemon(raw)
	if err != nil {
		return fmt.Errorf("reading %s: %w", member.Name, err)
	}
	names := make([]string, 0, len(p.Moves))
	for _, move := range model.FilterByGeneration(p.Moves, gen) {
		if t.HasMove(move.Name) {
			names = append(names, move.Name)
		}
	}
	counter.Add(names...)
	return nil
}

func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// fetchError maps a failed primary fetch to its exit code. An interrupted
// request says nothing about the looked up value.
func fetchError(err error, req Request) *ExitError {
	if interrupted(err) {
		return exitf(ExitFailure, err, "%s lookup interrupted", req.InputType)
	}
	return exitf(ExitInvalidInput, err, "invalid %s: %s", req.InputType, req.Value)
}
