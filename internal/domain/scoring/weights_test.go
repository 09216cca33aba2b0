package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"arai-engine/internal/domain/entity"
)

func TestDeduction(t *testing.T) {
	w := DefaultWeights()
	require.Equal(t, 0.0, w.Deduction(entity.IssueCount{}))
	require.Equal(t, 10.0, w.Deduction(entity.IssueCount{Critical: 1}))
	require.Equal(t, 18.0, w.Deduction(entity.IssueCount{Critical: 1, High: 1, Medium: 1, Low: 1}))
}

func TestCompositeWeightsValidate(t *testing.T) {
	require.NoError(t, DefaultCompositeWeights().Validate())

	bad := CompositeWeights{Accessibility: 0.5, Readability: 0.3, Attention: 0.3}
	require.Error(t, bad.Validate())
}
