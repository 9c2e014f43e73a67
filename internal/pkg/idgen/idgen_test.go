package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-adventure/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("npc")
	assert.Equal(t, "npc_1", gen.Generate())
	assert.Equal(t, "npc_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequentialGeneratorConcurrent(t *testing.T) {
	gen := idgen.NewSequential("p")
	seen := sync.Map{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, loaded := seen.LoadOrStore(gen.Generate(), true)
			assert.False(t, loaded)
		}()
	}
	wg.Wait()

	assert.Equal(t, "p_51", gen.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("quest").Generate()
	require.True(t, strings.HasPrefix(id, "quest_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "quest_"))
	assert.NoError(t, err)

	a, b := idgen.NewUUID("").Generate(), idgen.NewUUID("").Generate()
	assert.NotEqual(t, a, b)
}
