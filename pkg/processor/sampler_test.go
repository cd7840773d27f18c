package processor

import "testing"

func TestFrameSamplerRate(t *testing.T) {
	// For every speed-up factor f, exactly 1 of every f raw frames is
	// fully processed.
	for factor := 1; factor <= 5; factor++ {
		s := frameSampler{skip: factor - 1}

		const rounds = 20
		processed := 0
		for i := 1; i <= factor*rounds; i++ {
			if s.Next() {
				processed++
				// Processed frames land on every factor-th capture.
				if i%factor != 0 {
					t.Errorf("factor %d: frame %d processed, want multiples of %d only", factor, i, factor)
				}
			}
		}
		if processed != rounds {
			t.Errorf("factor %d: processed %d of %d frames, want %d", factor, processed, factor*rounds, rounds)
		}
	}
}

func TestFrameSamplerNoSkip(t *testing.T) {
	s := frameSampler{skip: 0}
	for i := 0; i < 10; i++ {
		if !s.Next() {
			t.Fatalf("frame %d dropped with skip 0", i)
		}
	}
}
