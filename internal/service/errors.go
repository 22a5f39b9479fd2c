package service

import "errors"

// ErrItemNotFound is returned when a mutation names an item id the session
// does not hold. No partial mutation occurs.
var ErrItemNotFound = errors.New("checklist item not found")

// ErrInvalidAction is returned when an action request is missing payload
// fields its kind requires.
var ErrInvalidAction = errors.New("invalid action request")

// ErrDelegationFailed wraps collaborator failures during action execution.
// The session appends nothing when it is returned.
var ErrDelegationFailed = errors.New("action delegation failed")

// ErrLanguageNotRequired is returned when a language cycle names a language
// outside the item's required set.
var ErrLanguageNotRequired = errors.New("language not required for item")
