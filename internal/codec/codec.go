// Package codec implements the textual encodings of a (date, factor,
// interval) triple that the service has accumulated over time. Each encoding
// is an independent parse/format strategy; new ones can be added without
// touching the scheduling engine.
package codec

import (
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/srs-calc/internal/domain"
)

// ErrMalformed is returned when a serialized review state cannot be parsed.
// It belongs to the transport boundary: the engine never sees malformed
// input, callers reject it before constructing a ReviewState.
var ErrMalformed = errors.New("malformed review state string")

// ErrUnknownFormat is returned when a registry lookup names no codec.
var ErrUnknownFormat = errors.New("unknown codec format")

// Parser decodes a serialized review state into structured values.
type Parser interface {
	Parse(s string) (domain.ReviewState, error)
}

// Formatter renders a resolved next review date and updated state into one
// of the historical textual encodings.
type Formatter interface {
	Format(next time.Time, state domain.ReviewState) string
}

// Codec is a named parse/format strategy pair.
type Codec interface {
	Parser
	Formatter
	Name() string
}

// Registry holds the known codecs keyed by format name.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry creates a registry pre-populated with the built-in codecs.
func NewRegistry() *Registry {
	r := &Registry{codecs: make(map[string]Codec)}
	r.Register(NewLegacyCodec())
	r.Register(NewTagCodec())
	return r
}

// Register adds a codec under its own name, replacing any previous codec
// registered under that name.
func (r *Registry) Register(c Codec) {
	r.codecs[c.Name()] = c
}

// Get returns the codec registered under name.
func (r *Registry) Get(name string) (Codec, error) {
	c, ok := r.codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return c, nil
}
