// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pipeline

import (
	"errors"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ForestConfig holds the random forest hyperparameters.
type ForestConfig struct {
	Estimators     int
	MaxDepth       int // 0 means unlimited
	MinSamplesLeaf int
	MaxFeatures    int // 0 means floor(sqrt(n_features))
	Seed           uint64
	Bootstrap      bool
}

// DefaultForestConfig returns the production training parameters.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		Estimators:     200,
		MaxDepth:       20,
		MinSamplesLeaf: 1,
		Seed:           42,
		Bootstrap:      true,
	}
}

func (c ForestConfig) validate() error {
	if c.Estimators < 1 {
		return errors.New("pipeline: forest needs at least one estimator")
	}
	if c.MinSamplesLeaf < 1 {
		return errors.New("pipeline: min samples per leaf must be at least 1")
	}
	if c.MaxDepth < 0 || c.MaxFeatures < 0 {
		return errors.New("pipeline: max depth and max features must not be negative")
	}
	return nil
}

// RandomForest averages the class distributions of bootstrap-trained
// decision trees.
type RandomForest struct {
	Config    ForestConfig
	NClasses  int
	NFeatures int
	Trees     []DecisionTree
}

// Fit trains Config.Estimators trees on x and class indices y. Tree i is
// seeded from (Config.Seed, i), so fits are reproducible.
func (f *RandomForest) Fit(x *mat.Dense, y []int, nClasses int) error {
	if err := f.Config.validate(); err != nil {
		return err
	}
	nSamples, nFeatures := x.Dims()
	if nSamples == 0 || nSamples != len(y) {
		return errors.New("pipeline: forest fit needs matching, non-empty samples and labels")
	}

	maxFeatures := f.Config.MaxFeatures
	if maxFeatures == 0 {
		maxFeatures = max(1, int(math.Sqrt(float64(nFeatures))))
	}
	maxFeatures = min(maxFeatures, nFeatures)

	f.NClasses = nClasses
	f.NFeatures = nFeatures
	f.Trees = make([]DecisionTree, f.Config.Estimators)

	rows := make([][]float64, nSamples)
	for i := range rows {
		rows[i] = x.RawRowView(i)
	}

	for i := range f.Trees {
		rng := rand.New(rand.NewPCG(f.Config.Seed, uint64(i)))

		samples := make([]int, nSamples)
		for s := range samples {
			if f.Config.Bootstrap {
				samples[s] = rng.IntN(nSamples)
			} else {
				samples[s] = s
			}
		}

		b := &treeBuilder{
			rows:        rows,
			nFeatures:   nFeatures,
			y:           y,
			nClasses:    nClasses,
			maxDepth:    f.Config.MaxDepth,
			minLeaf:     f.Config.MinSamplesLeaf,
			maxFeatures: maxFeatures,
			rng:         rng,
		}
		b.build(samples, 0)
		f.Trees[i] = DecisionTree{Nodes: b.nodes}
	}

	return nil
}

// PredictProba returns the mean class distribution over all trees.
func (f *RandomForest) PredictProba(x []float64) []float64 {
	proba := make([]float64, f.NClasses)
	for i := range f.Trees {
		floats.Add(proba, f.Trees[i].PredictProba(x))
	}
	floats.Scale(1/float64(len(f.Trees)), proba)
	return proba
}
