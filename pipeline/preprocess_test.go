// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler(t *testing.T) {
	var s StandardScaler
	s.Fit([][]float64{{2, 4, 4, 4, 5, 5, 7, 9}, {3, 3, 3}})

	assert.InDelta(t, 5.0, s.Mean[0], 1e-12)
	assert.InDelta(t, 2.0, s.Scale[0], 1e-12)
	assert.InDelta(t, 1.0, s.transform(0, 7), 1e-12)

	// Constant columns are centered but not scaled.
	assert.Equal(t, 1.0, s.Scale[1])
	assert.Equal(t, 0.0, s.transform(1, 3))
}

func TestOneHotEncoder(t *testing.T) {
	var e OneHotEncoder
	e.Fit([][]string{{"Yes", "No", "Yes"}, {"b", "a", "c", "a"}})

	assert.Equal(t, [][]string{{"No", "Yes"}, {"a", "b", "c"}}, e.Categories)
	assert.Equal(t, 5, e.Width())

	dst := make([]float64, 3)
	assert.True(t, e.encode(1, "c", dst))
	assert.Equal(t, []float64{0, 0, 1}, dst)

	dst = make([]float64, 3)
	assert.False(t, e.encode(1, "z", dst))
	assert.Equal(t, []float64{0, 0, 0}, dst)
}

func TestDecisionTree_SeparableData(t *testing.T) {
	x := mat.NewDense(6, 2, []float64{
		0, 5,
		1, 3,
		2, 9,
		10, 1,
		11, 7,
		12, 2,
	})
	y := []int{0, 0, 0, 1, 1, 1}

	f := RandomForest{Config: ForestConfig{Estimators: 1, MinSamplesLeaf: 1, MaxFeatures: 2, Seed: 1}}
	require.NoError(t, f.Fit(x, y, 2))

	tree := f.Trees[0]
	assert.Equal(t, 1, tree.Depth())
	assert.Equal(t, []float64{1, 0}, tree.PredictProba([]float64{1.5, 4}))
	assert.Equal(t, []float64{0, 1}, tree.PredictProba([]float64{11.5, 4}))
}

func TestDecisionTree_MaxDepth(t *testing.T) {
	x := mat.NewDense(8, 1, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	y := []int{0, 1, 0, 1, 0, 1, 0, 1}

	f := RandomForest{Config: ForestConfig{Estimators: 3, MaxDepth: 2, MinSamplesLeaf: 1, Seed: 9, Bootstrap: true}}
	require.NoError(t, f.Fit(x, y, 2))

	for _, tree := range f.Trees {
		assert.LessOrEqual(t, tree.Depth(), 2)
	}
	proba := f.PredictProba([]float64{4.5})
	assert.InDelta(t, 1.0, proba[0]+proba[1], 1e-9)
}

func TestDecisionTree_PureNodeIsLeaf(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{1, 2, 3})
	f := RandomForest{Config: ForestConfig{Estimators: 1, MinSamplesLeaf: 1}}
	require.NoError(t, f.Fit(x, []int{1, 1, 1}, 2))

	assert.Len(t, f.Trees[0].Nodes, 1)
	assert.Equal(t, []float64{0, 1}, f.PredictProba([]float64{2}))
}
