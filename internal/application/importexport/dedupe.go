package importexport

// dedupState is the accumulator threaded through one import run. seen is
// seeded with the owner's stored numbers so the same pass catches both
// duplicates against storage and repeats inside the batch.
type dedupState struct {
	seen           map[string]struct{}
	accepted       []ContactRecord
	duplicateCount int
}

func newDedupState(existing []string) *dedupState {
	seen := make(map[string]struct{}, len(existing))
	for _, number := range existing {
		seen[number] = struct{}{}
	}
	return &dedupState{seen: seen}
}

func (s *dedupState) add(record ContactRecord) {
	if _, ok := s.seen[record.PhoneNumber]; ok {
		s.duplicateCount++
		return
	}
	s.seen[record.PhoneNumber] = struct{}{}
	s.accepted = append(s.accepted, record)
}

// Dedupe filters candidates against the existing canonical numbers.
// First occurrence wins; accepted order matches first appearance.
func Dedupe(candidates []ContactRecord, existing []string) ([]ContactRecord, int) {
	state := newDedupState(existing)
	for _, candidate := range candidates {
		state.add(candidate)
	}
	return state.accepted, state.duplicateCount
}
