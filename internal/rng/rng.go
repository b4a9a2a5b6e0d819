// Package rng provides a cryptographically strong random number generator
// and the per-game outcome sources built on it.
package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"
)

// Service generates uniformly distributed random numbers from crypto/rand.
type Service struct {
	entropy io.Reader
	mu      sync.Mutex

	lastHealthCheck  time.Time
	samplesGenerated int64
}

// New creates a new RNG service using crypto/rand.
func New() *Service {
	return &Service{
		entropy:         rand.Reader,
		lastHealthCheck: time.Now(),
	}
}

// Int returns a random integer in range [0, max).
// Uses rejection sampling to eliminate modulo bias.
func (s *Service) Int(max int64) (int64, error) {
	if max <= 0 {
		return 0, fmt.Errorf("max must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Reject values at or above the threshold so the remainder is uniform.
	threshold := uint64(1<<63-1) - (uint64(1<<63-1) % uint64(max))

	for {
		buf := make([]byte, 8)
		if _, err := io.ReadFull(s.entropy, buf); err != nil {
			return 0, fmt.Errorf("failed to generate random int: %w", err)
		}

		n := binary.BigEndian.Uint64(buf) >> 1 // 63 bits, positive range

		if n < threshold {
			s.samplesGenerated++
			return int64(n % uint64(max)), nil
		}
	}
}

// IntRange returns a random integer in range [min, max].
func (s *Service) IntRange(min, max int64) (int64, error) {
	if min > max {
		return 0, fmt.Errorf("min cannot be greater than max")
	}

	n, err := s.Int(max - min + 1)
	if err != nil {
		return 0, err
	}
	return min + n, nil
}

// Shuffle performs a Fisher-Yates shuffle on a slice of integers.
func (s *Service) Shuffle(slice []int) error {
	for i := len(slice) - 1; i > 0; i-- {
		j, err := s.Int(int64(i + 1))
		if err != nil {
			return err
		}
		slice[i], slice[int(j)] = slice[int(j)], slice[i]
	}
	return nil
}

// HealthCheck verifies the entropy source still produces output and reports
// basic generation statistics.
func (s *Service) HealthCheck() (map[string]interface{}, error) {
	if _, err := s.Int(2); err != nil {
		return nil, fmt.Errorf("rng health check failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastHealthCheck = time.Now()

	return map[string]interface{}{
		"healthy":           true,
		"samples_generated": s.samplesGenerated,
		"last_check":        s.lastHealthCheck,
	}, nil
}
