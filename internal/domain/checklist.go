package domain

import "time"

// ChecklistItem is one trackable procedural obligation within a case phase.
//
// Title, Description, RequiredLanguages, Actions and the evidence baseline are
// catalog data and immutable after load. Status, Languages and Blocked are the
// user-facing override layer; they are the only fields restored from a
// persisted snapshot.
type ChecklistItem struct {
	ID          string
	Phase       Phase
	Title       string
	Description string

	// RequiredLanguages gates derivation. Empty means no language gating.
	RequiredLanguages []Language
	Languages         map[Language]LanguageStatus

	Actions  []ActionDefinition
	Evidence []Evidence

	Status  ItemStatus
	Blocked bool
	DueDate *time.Time
}

// Clone returns a deep copy so that callers can hand items to a UI surface
// without exposing session-internal state to mutation.
func (it *ChecklistItem) Clone() *ChecklistItem {
	cp := *it
	cp.RequiredLanguages = append([]Language(nil), it.RequiredLanguages...)
	if it.Languages != nil {
		cp.Languages = make(map[Language]LanguageStatus, len(it.Languages))
		for k, v := range it.Languages {
			cp.Languages[k] = v
		}
	}
	cp.Actions = append([]ActionDefinition(nil), it.Actions...)
	cp.Evidence = append([]Evidence(nil), it.Evidence...)
	return &cp
}

// AwaitingTranslation reports whether any required language's sub-status is
// awaiting.
func (it *ChecklistItem) AwaitingTranslation() bool {
	for _, lang := range it.RequiredLanguages {
		if it.Languages[lang] == LangAwaiting {
			return true
		}
	}
	return false
}

// Derived classifies the item from its evidence and language gate alone.
func (it *ChecklistItem) Derived() DerivedStatus {
	return Derive(it)
}

// ItemOverride is the persisted mutable slice of a checklist item.
type ItemOverride struct {
	Status    ItemStatus                  `json:"status"`
	Languages map[Language]LanguageStatus `json:"languages,omitempty"`
	Blocked   bool                        `json:"blocked,omitempty"`
}

// Snapshot maps item id to its persisted override for one case.
type Snapshot map[string]ItemOverride

// ApplyOverrides merges a snapshot onto catalog items. Only Status, Languages
// and Blocked are taken from the snapshot; catalog fields are left untouched.
// Language keys outside the item's required set are dropped. Items missing
// from the snapshot keep their catalog baseline. Pure: returns new items.
func ApplyOverrides(items []*ChecklistItem, snap Snapshot) []*ChecklistItem {
	merged := make([]*ChecklistItem, 0, len(items))
	for _, it := range items {
		cp := it.Clone()
		if ov, ok := snap[it.ID]; ok {
			if ov.Status != "" {
				cp.Status = ov.Status
			}
			if len(ov.Languages) > 0 {
				if cp.Languages == nil {
					cp.Languages = make(map[Language]LanguageStatus, len(ov.Languages))
				}
				for lang, st := range ov.Languages {
					if langRequired(cp.RequiredLanguages, lang) {
						cp.Languages[lang] = st
					}
				}
			}
			cp.Blocked = ov.Blocked
		}
		merged = append(merged, cp)
	}
	return merged
}

// Override extracts the persistable slice of an item.
func (it *ChecklistItem) Override() ItemOverride {
	ov := ItemOverride{Status: it.Status, Blocked: it.Blocked}
	if len(it.Languages) > 0 {
		ov.Languages = make(map[Language]LanguageStatus, len(it.Languages))
		for k, v := range it.Languages {
			ov.Languages[k] = v
		}
	}
	return ov
}

func langRequired(required []Language, lang Language) bool {
	for _, l := range required {
		if l == lang {
			return true
		}
	}
	return false
}
