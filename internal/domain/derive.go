package domain

// Derive classifies an item's completion from its evidence and required
// languages alone. The manual Status field plays no part; the two signals are
// kept independent so derivation can serve as an audit view.
//
// Precedence: an explicit block wins over everything; no evidence means not
// started; without a language gate any evidence completes the item; with a
// gate every required language must appear among the tagged evidence.
func Derive(it *ChecklistItem) DerivedStatus {
	if it.Blocked {
		return DerivedBlocked
	}
	if len(it.Evidence) == 0 {
		return DerivedNotStarted
	}
	if len(it.RequiredLanguages) == 0 {
		return DerivedCompleted
	}
	covered := EvidenceLanguages(it.Evidence)
	for _, lang := range it.RequiredLanguages {
		if !covered[lang] {
			return DerivedInProgress
		}
	}
	return DerivedCompleted
}
