package processor

// saveTracker records which detection slots have already had their
// face crop persisted in the current contiguous detection-count run.
//
// Flags are matched to detections by position, not by face identity.
// Whenever the detection count changes the whole sequence resets to
// unsaved, even for faces that persist across frames. That loses saved
// status when the count merely fluctuates from detector noise, but
// doing better would need identity tracking, which this pipeline does
// not have.
type saveTracker struct {
	flags []bool
}

// Sync makes the flag sequence match the detection count. The flags
// are only preserved when the count is unchanged.
func (t *saveTracker) Sync(n int) {
	if len(t.flags) != n {
		t.flags = make([]bool, n)
	}
}

// Saved reports whether slot i has already been persisted.
func (t *saveTracker) Saved(i int) bool {
	return t.flags[i]
}

// Mark records that slot i has been persisted.
func (t *saveTracker) Mark(i int) {
	t.flags[i] = true
}

// Len returns the current number of tracked slots.
func (t *saveTracker) Len() int {
	return len(t.flags)
}
