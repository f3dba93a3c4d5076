package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/advent/pkg/domain"
)

// ErrEmptyKey is returned when a store operation receives an empty key.
var ErrEmptyKey = errors.New("key cannot be empty")

// Store implements ports.ResultStore using the local filesystem.
// It stores answers as JSON files in a configured directory.
type Store struct {
	BasePath string
}

// NewStore creates a new Store with the given base path.
// If basePath is empty, it defaults to ".advent/results".
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".advent", "results")
	}
	return &Store{BasePath: basePath}
}

func (f *Store) path(key string) string {
	return filepath.Join(f.BasePath, key+".json")
}

// Save persists the answer to a JSON file.
func (f *Store) Save(ctx context.Context, key string, answer domain.Answer) error {
	if key == "" {
		return ErrEmptyKey
	}

	if err := os.MkdirAll(f.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure result directory: %w", err)
	}

	data, err := json.MarshalIndent(answer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}

	if err := os.WriteFile(f.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write result file: %w", err)
	}
	return nil
}

// Load retrieves the answer from a JSON file.
func (f *Store) Load(ctx context.Context, key string) (domain.Answer, error) {
	if key == "" {
		return domain.Answer{}, ErrEmptyKey
	}

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Answer{}, domain.ErrResultNotFound
		}
		return domain.Answer{}, fmt.Errorf("failed to read result file: %w", err)
	}

	var answer domain.Answer
	if err := json.Unmarshal(data, &answer); err != nil {
		return domain.Answer{}, fmt.Errorf("failed to unmarshal answer: %w", err)
	}
	return answer, nil
}

// Delete removes the result file.
func (f *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete result file: %w", err)
	}
	return nil
}

// List returns the keys of all stored answers.
func (f *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(f.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	var keys []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			keys = append(keys, strings.TrimSuffix(entry.Name(), ".json"))
		}
	}
	sort.Strings(keys)
	return keys, nil
}
