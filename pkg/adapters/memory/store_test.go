package memory_test

import (
	"testing"

	"github.com/aretw0/advent/pkg/adapters/memory"
	"github.com/aretw0/advent/pkg/ports"
)

var _ ports.ResultStore = (*memory.Store)(nil)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunResultStoreContract(t, store)
}
