package ports

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/aretw0/advent/pkg/domain"
)

// ResultStore defines the interface for caching computed answers.
// Solvers are pure functions of their input, so an answer stays valid for as
// long as the input it was computed from is unchanged.
type ResultStore interface {
	// Save persists the answer under key.
	Save(ctx context.Context, key string, answer domain.Answer) error

	// Load retrieves the answer stored under key.
	// Returns domain.ErrResultNotFound if the key is unknown.
	Load(ctx context.Context, key string) (domain.Answer, error)

	// Delete removes the answer stored under key.
	Delete(ctx context.Context, key string) error

	// List returns every stored key.
	List(ctx context.Context) ([]string, error)
}

// ResultKey derives the cache key of an answer from its day and input lines.
func ResultKey(day int, lines []string) string {
	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return strconv.Itoa(day) + "-" + hex.EncodeToString(sum[:])
}
