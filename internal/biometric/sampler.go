// Package biometric provides the simulated biometric factor: sampling a
// feature vector for a user and salted hashing/verification of it.
package biometric

import (
	"hash/fnv"
	"math/rand"
)

// FeatureCount is the dimensionality of a biometric feature vector.
const FeatureCount = 128

// SampleProvider supplies a biometric reading for a user. In production
// this would be backed by real sensor hardware; the verification
// protocol does not care where the sample comes from.
type SampleProvider interface {
	// Sample returns a feature vector of FeatureCount values in [0, 1).
	Sample(username string) ([]float64, error)
}

// SimulatedSampler derives the feature vector deterministically from the
// username via a seeded PRNG, so the same user always produces the same
// reading. It stands in for a sensor in demos and tests; anyone who
// knows the username can reproduce the sample, so it provides no real
// second-factor security on its own.
type SimulatedSampler struct{}

// NewSimulatedSampler returns a deterministic SampleProvider.
func NewSimulatedSampler() *SimulatedSampler {
	return &SimulatedSampler{}
}

// Sample implements SampleProvider.
func (s *SimulatedSampler) Sample(username string) ([]float64, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(username))

	// math/rand is intentional here: the PRNG must be seedable so the
	// vector is reproducible per username. No secret depends on it.
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	features := make([]float64, FeatureCount)
	for i := range features {
		features[i] = rng.Float64()
	}
	return features, nil
}
