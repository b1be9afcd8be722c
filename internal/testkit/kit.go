// Package testkit provides deterministic fixtures for the support engine
// tests.
package testkit

import (
	"math/rand"
)

// Kit generates reproducible synthetic data from a fixed seed.
type Kit struct {
	rng *rand.Rand
}

// NewKit creates a kit seeded for reproducibility.
func NewKit(seed int64) *Kit {
	return &Kit{rng: rand.New(rand.NewSource(seed))}
}

// MultinomialCounts draws n observations into k categories with the given
// probabilities (uniform when probs is nil).
func (k *Kit) MultinomialCounts(n, categories int, probs []float64) []float64 {
	if probs == nil {
		probs = make([]float64, categories)
		for i := range probs {
			probs[i] = 1 / float64(categories)
		}
	}
	counts := make([]float64, categories)
	for i := 0; i < n; i++ {
		u := k.rng.Float64()
		acc := 0.0
		for c, p := range probs {
			acc += p
			if u < acc || c == categories-1 {
				counts[c]++
				break
			}
		}
	}
	return counts
}

// ContingencyTable draws an independent rows x cols table with n total
// observations and uniform marginals.
func (k *Kit) ContingencyTable(rows, cols, n int) [][]float64 {
	table := make([][]float64, rows)
	for i := range table {
		table[i] = make([]float64, cols)
	}
	for i := 0; i < n; i++ {
		table[k.rng.Intn(rows)][k.rng.Intn(cols)]++
	}
	return table
}

// GroupedNormal draws groups of normal observations with the given means,
// common standard deviation and per-group size. Returns the flat data slice
// and its group labels.
func (k *Kit) GroupedNormal(means []float64, sd float64, perGroup int) (data []float64, labels []int) {
	for g, mean := range means {
		for i := 0; i < perGroup; i++ {
			data = append(data, mean+sd*k.rng.NormFloat64())
			labels = append(labels, g+1)
		}
	}
	return data, labels
}
