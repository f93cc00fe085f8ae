//go:build !gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"solar-inspector/internal/domain/entity"
)

func TestGoCVHighlighterStub(t *testing.T) {
	h := NewGoCVHighlighter()
	_, err := h.Highlight("cell_0001.jpg", []byte("jpeg"), nil, entity.CategoryGood)
	require.ErrorIs(t, err, ErrGoCVDisabled)
}
