// Package persona loads the priming text that puts the generation model in character.
//
// A persona is a small TOML document:
//
//	version        = "twin-v3"
//	acknowledgment = "Understood. ..."
//	instruction    = """..."""
//
// The document is read once at startup from a file, an SSM parameter or a Redis key,
// so persona edits never touch the chat pipeline.
package persona

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/redis/go-redis/v9"
)

const unversioned = "unversioned"

type Persona struct {
	Version        string `toml:"version"`
	Instruction    string `toml:"instruction"`
	Acknowledgment string `toml:"acknowledgment"`
}

// Source yields a persona document.
type Source interface {
	Load(ctx context.Context) (*Persona, error)
}

// Parse decodes a persona document and checks that both priming texts are present.
func Parse(raw string) (*Persona, error) {
	var p Persona
	meta, err := toml.Decode(raw, &p)
	if err != nil {
		return nil, fmt.Errorf("decode persona document failed: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("persona document has unknown key %q", undecoded[0].String())
	}

	p.Version = strings.TrimSpace(p.Version)
	if p.Version == "" {
		p.Version = unversioned
	}
	if strings.TrimSpace(p.Instruction) == "" {
		return nil, errors.New("persona instruction is empty")
	}
	p.Acknowledgment = strings.TrimSpace(p.Acknowledgment)
	if p.Acknowledgment == "" {
		return nil, errors.New("persona acknowledgment is empty")
	}
	return &p, nil
}

type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) (*Persona, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read persona file failed: %w", err)
	}
	return Parse(string(raw))
}

// ParamGetter is satisfied by *paramstore.Client.
type ParamGetter interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

type ParamStoreSource struct {
	Params ParamGetter
	Name   string
}

func (s ParamStoreSource) Load(ctx context.Context) (*Persona, error) {
	if s.Params == nil {
		return nil, errors.New("persona: param getter must not be nil")
	}
	raw, err := s.Params.GetParameter(ctx, s.Name)
	if err != nil {
		return nil, fmt.Errorf("load persona parameter failed: %w", err)
	}
	return Parse(raw)
}

// KeyGetter is satisfied by *redis.Client.
type KeyGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

type RedisSource struct {
	Client KeyGetter
	Key    string
}

func (s RedisSource) Load(ctx context.Context) (*Persona, error) {
	if s.Client == nil {
		return nil, errors.New("persona: redis client must not be nil")
	}
	raw, err := s.Client.Get(ctx, s.Key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("persona key %q not found in redis", s.Key)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get persona failed: %w", err)
	}
	return Parse(raw)
}
