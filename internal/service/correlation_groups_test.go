package service

import (
	"folio/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCorrelationMatrix() domain.CorrelationMatrix {
	return domain.NewCorrelationMatrix([]string{"A", "B", "C", "D"}, [][]float64{
		{1, 0.8, 0.1, 0.1},
		{0.8, 1, 0.8, 0.8},
		{0.1, 0.8, 1, 0.8},
		{0.1, 0.8, 0.8, 1},
	})
}

func Test_createGroupsWithThreshold(t *testing.T) {
	groups := createGroupsWithThreshold(newCorrelationGraph(testCorrelationMatrix()), 0.7)

	require.Equal(
		t,
		[][]string{
			{"A", "B"},
			{"B", "C", "D"},
		},
		groups,
	)
}

func Test_keepLargestGroups(t *testing.T) {
	out := keepLargestGroups([][]string{
		{"A", "B"},
		{"B", "C", "D"},
	}, domain.Weights{
		"A": 100,
		"B": 10,
		"C": 1,
		"D": 1,
	})

	require.Equal(
		t,
		[][]string{
			{"A", "B"},
		},
		out,
	)
}

func TestCorrelationGroups(t *testing.T) {
	t.Run("unweighted", func(t *testing.T) {
		require.Len(t, CorrelationGroups(testCorrelationMatrix(), 0.7, nil), 2)
	})

	t.Run("low threshold joins everything", func(t *testing.T) {
		require.Equal(t, [][]string{{"A", "B", "C", "D"}}, CorrelationGroups(testCorrelationMatrix(), 0, nil))
	})

	t.Run("weighted towards the heavier cluster", func(t *testing.T) {
		out := CorrelationGroups(testCorrelationMatrix(), 0.7, domain.Weights{"C": 5, "D": 5, "A": 1})
		require.Equal(t, [][]string{{"B", "C", "D"}}, out)
	})
}
