package domain

// ActionPayload carries the kind-specific parameters of an action.
type ActionPayload struct {
	Language     Language `yaml:"language,omitempty"`
	LetterType   string   `yaml:"letter_type,omitempty"`
	Scope        string   `yaml:"scope,omitempty"`
	DocumentType string   `yaml:"document_type,omitempty"`
	EventType    string   `yaml:"event_type,omitempty"`
}

// ActionDefinition is a catalog entry describing an operation a user may
// trigger from a checklist item.
type ActionDefinition struct {
	ID      string        `yaml:"id"`
	Label   string        `yaml:"label"`
	Kind    ActionKind    `yaml:"kind"`
	Primary bool          `yaml:"primary,omitempty"`
	Payload ActionPayload `yaml:"payload,omitempty"`
}

// ActionRequest is a concrete invocation of an action definition.
type ActionRequest struct {
	ID      string
	Label   string
	Kind    ActionKind
	Payload ActionPayload
}

// Request converts a catalog definition into an executable request.
func (d ActionDefinition) Request() ActionRequest {
	return ActionRequest{ID: d.ID, Label: d.Label, Kind: d.Kind, Payload: d.Payload}
}

// PrimaryAction returns the first action flagged primary, or the first action
// if none is flagged. ok is false when the item has no actions.
func PrimaryAction(actions []ActionDefinition) (ActionDefinition, bool) {
	if len(actions) == 0 {
		return ActionDefinition{}, false
	}
	for _, a := range actions {
		if a.Primary {
			return a, true
		}
	}
	return actions[0], true
}
