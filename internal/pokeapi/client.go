package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	EntityPokemon = "pokemon"
	EntityType    = "type"
)

var ErrMalformedResponse = errors.New("malformed response")

// StatusError is returned for any response that is not 200 OK.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, client *http.Client, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		client:  client,
		logger:  logger,
	}
}

// Endpoint builds the relative path of a single resource, e.g. "pokemon/25".
func Endpoint(entity, value string) string {
	return entity + "/" + value
}

// URL returns the absolute url for entity/value.
func (c *Client) URL(entity, value string) string {
	return c.baseURL + Endpoint(entity, value)
}

func (c *Client) Pokemon(ctx context.Context, value string) (*Pokemon, error) {
	return do[Pokemon](ctx, c, c.URL(EntityPokemon, value))
}

// PokemonByURL follows the absolute url of a NamedAPIResource pointing to a pokemon.
func (c *Client) PokemonByURL(ctx context.Context, url string) (*Pokemon, error) {
	return do[Pokemon](ctx, c, url)
}

func (c *Client) Type(ctx context.Context, value string) (*Type, error) {
	return do[Type](ctx, c, c.URL(EntityType, value))
}

func do[T any](ctx context.Context, c *Client, url string) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("requesting pokeapi", zap.String("url", url))
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Debug("pokeapi request failed", zap.String("url", url), zap.Int("status", resp.StatusCode))
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	v := new(T)
	err = json.Unmarshal(body, v)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrMalformedResponse, url, err)
	}
	return v, nil
}
