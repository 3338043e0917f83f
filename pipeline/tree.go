// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pipeline

import (
	"cmp"
	"math/rand/v2"
	"slices"
)

// Node is one node of a fitted tree. Leaves have Feature == -1.
type Node struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	Value     []float64
}

// DecisionTree is a CART classification tree using gini impurity.
type DecisionTree struct {
	Nodes []Node
}

// PredictProba walks x down the tree and returns the leaf's class
// distribution. The returned slice must not be modified.
func (t *DecisionTree) PredictProba(x []float64) []float64 {
	i := 0
	for {
		n := &t.Nodes[i]
		if n.Feature < 0 {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Depth returns the length of the longest root-to-leaf path.
func (t *DecisionTree) Depth() int {
	var walk func(i int) int
	walk = func(i int) int {
		n := t.Nodes[i]
		if n.Feature < 0 {
			return 0
		}
		return 1 + max(walk(n.Left), walk(n.Right))
	}
	return walk(0)
}

type treeBuilder struct {
	rows        [][]float64
	nFeatures   int
	y           []int
	nClasses    int
	maxDepth    int
	minLeaf     int
	maxFeatures int
	rng         *rand.Rand
	nodes       []Node
}

type split struct {
	feature   int
	threshold float64
	score     float64
}

func (b *treeBuilder) build(samples []int, depth int) int {
	counts := make([]float64, b.nClasses)
	for _, s := range samples {
		counts[b.y[s]]++
	}

	n := float64(len(samples))
	value := make([]float64, b.nClasses)
	pure := false
	for k, c := range counts {
		value[k] = c / n
		if c == n {
			pure = true
		}
	}

	id := len(b.nodes)
	b.nodes = append(b.nodes, Node{Feature: -1, Value: value})

	if pure || len(samples) < 2*b.minLeaf || (b.maxDepth > 0 && depth >= b.maxDepth) {
		return id
	}

	best, ok := b.bestSplit(samples)
	if !ok {
		return id
	}

	// Partition in place: values <= threshold go left.
	nLeft := 0
	for i, s := range samples {
		if b.rows[s][best.feature] <= best.threshold {
			samples[i], samples[nLeft] = samples[nLeft], samples[i]
			nLeft++
		}
	}

	left := b.build(samples[:nLeft], depth+1)
	right := b.build(samples[nLeft:], depth+1)

	b.nodes[id].Feature = best.feature
	b.nodes[id].Threshold = best.threshold
	b.nodes[id].Left = left
	b.nodes[id].Right = right
	return id
}

// bestSplit draws features in random order and keeps searching until at
// least maxFeatures non-constant features were inspected and a valid
// split was found.
func (b *treeBuilder) bestSplit(samples []int) (split, bool) {
	order := b.rng.Perm(b.nFeatures)

	sorted := make([]int, len(samples))
	left := make([]float64, b.nClasses)
	right := make([]float64, b.nClasses)

	var best split
	found := false
	visited := 0

	for _, f := range order {
		if visited >= b.maxFeatures && found {
			break
		}

		copy(sorted, samples)
		slices.SortFunc(sorted, func(a, c int) int {
			if r := cmp.Compare(b.rows[a][f], b.rows[c][f]); r != 0 {
				return r
			}
			return cmp.Compare(a, c)
		})

		lo, hi := b.rows[sorted[0]][f], b.rows[sorted[len(sorted)-1]][f]
		if lo == hi {
			continue
		}
		visited++

		clear(left)
		clear(right)
		for _, s := range sorted {
			right[b.y[s]]++
		}

		n := len(sorted)
		for p := 0; p < n-1; p++ {
			k := b.y[sorted[p]]
			left[k]++
			right[k]--

			v, next := b.rows[sorted[p]][f], b.rows[sorted[p+1]][f]
			if v == next {
				continue
			}
			nL, nR := p+1, n-p-1
			if nL < b.minLeaf || nR < b.minLeaf {
				continue
			}

			// Maximizing this proxy minimizes weighted gini impurity.
			score := sumSquares(left)/float64(nL) + sumSquares(right)/float64(nR)
			if !found || score > best.score {
				threshold := v + (next-v)/2
				if threshold >= next {
					threshold = v
				}
				best = split{feature: f, threshold: threshold, score: score}
				found = true
			}
		}
	}

	return best, found
}

func sumSquares(counts []float64) float64 {
	s := 0.0
	for _, c := range counts {
		s += c * c
	}
	return s
}
