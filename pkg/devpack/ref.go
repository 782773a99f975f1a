package devpack

import (
	"encoding/json"
	"errors"
)

// RefKey is the reserved params key marking a forward reference on the wire.
// It is the only way to tell a reference apart from ordinary data once both
// have been serialized into the same loosely-typed params mapping.
const RefKey = "__devpack_ref__"

// ErrNotARef is returned when decoding a value that lacks the reference
// sentinel into an ActionRef.
var ErrNotARef = errors.New("value is not a devpack action reference")

// ActionRef is a placeholder for the eventual result of an earlier action.
// In memory the type itself is the tag; the sentinel key only exists at the
// wire boundary. Type mirrors the referenced action's kind so a reader knows
// what result shape to expect without looking the action up. Meta carries
// engine-specific projection hints (such as which result field to extract)
// and is opaque to this library.
type ActionRef struct {
	ID   string
	Type string `validate:"required"`
	Meta map[string]any
}

// wireRef mirrors the serialized shape of ActionRef.
type wireRef struct {
	Ref  bool           `json:"__devpack_ref__"`
	ID   string         `json:"id"`
	Type string         `json:"type"`
	Meta map[string]any `json:"meta,omitempty"`
}

func (r ActionRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireRef{Ref: true, ID: r.ID, Type: r.Type, Meta: r.Meta})
}

func (r *ActionRef) UnmarshalJSON(data []byte) error {
	var raw wireRef
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if !raw.Ref {
		return ErrNotARef
	}

	*r = ActionRef{ID: raw.ID, Type: raw.Type, Meta: raw.Meta}

	return nil
}
