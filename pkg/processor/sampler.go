package processor

// frameSampler implements the frame-skip policy: with skip s, 1 of
// every s+1 raw frames is fully processed.
type frameSampler struct {
	skip    int
	counter int
}

// Next records one raw capture and reports whether this frame should
// be fully processed. The counter only resets on a processed frame.
func (s *frameSampler) Next() bool {
	s.counter++
	if s.counter%(s.skip+1) != 0 {
		return false
	}
	s.counter = 0
	return true
}
