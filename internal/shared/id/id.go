// Package id generates request identifiers for the catalog service.
//
// Identifiers are ULIDs, so they sort by creation time and read well in
// logs when prefixed (req_01J...).
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestID identifies one inbound HTTP request
type RequestID string

// RequestPrefix tags request ids in logs and response headers.
const RequestPrefix = "req"

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the shared generator instance
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator backed by crypto/rand
func NewGenerator() *Generator {
	return &Generator{entropy: rand.Reader}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// Tests use it for deterministic ids.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.Generate().String())
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

func (r RequestID) String() string { return string(r) }

// IsRequestID reports whether s has the req_<ulid> shape. Inbound
// X-Request-ID headers that fail this check are replaced.
func IsRequestID(s string) bool {
	prefix, raw, ok := strings.Cut(s, "_")
	if !ok || prefix != RequestPrefix {
		return false
	}
	_, err := ulid.Parse(raw)
	return err == nil
}

// Timestamp extracts the creation time of a request id
func Timestamp(r RequestID) (time.Time, error) {
	_, raw, _ := strings.Cut(string(r), "_")
	parsed, err := ulid.Parse(raw)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
