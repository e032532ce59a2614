package textcompare_test

import (
	"testing"

	"github.com/fwojciec/textcompare"
	"github.com/stretchr/testify/assert"
)

func TestChange_Position(t *testing.T) {
	t.Parallel()

	t.Run("modified and removed sort at their own line", func(t *testing.T) {
		t.Parallel()

		modified := textcompare.Change{Kind: textcompare.ChangeModified, Line: 3}
		removed := textcompare.Change{Kind: textcompare.ChangeRemoved, Line: 3}

		assert.Equal(t, 3, modified.Position())
		assert.Equal(t, 3, removed.Position())
	})

	t.Run("added sorts just after its anchor line", func(t *testing.T) {
		t.Parallel()

		added := textcompare.Change{Kind: textcompare.ChangeAdded, Line: 3}

		assert.Equal(t, 4, added.Position())
	})

	t.Run("a replacement pair shares one position", func(t *testing.T) {
		t.Parallel()

		removed := textcompare.Change{Kind: textcompare.ChangeRemoved, Line: 5}
		added := textcompare.Change{Kind: textcompare.ChangeAdded, Line: 4}

		assert.Equal(t, removed.Position(), added.Position())
	})
}

func TestChunk_End(t *testing.T) {
	t.Parallel()

	c := textcompare.Chunk{Position: 2, Elements: []string{"a", "b", "c"}}

	assert.Equal(t, 5, c.End())
}
