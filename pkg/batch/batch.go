// Package batch collects actions emitted during a function run into one
// submission for the execution engine, and defensively validates the
// reference graph before it leaves the client.
package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/r3e-network/devpack-go/pkg/devpack"
	"github.com/r3e-network/devpack-go/pkg/registry"
)

var (
	ErrDuplicateID      = errors.New("duplicate action id")
	ErrUnresolvedRef    = errors.New("reference to an action without an id")
	ErrDanglingRef      = errors.New("reference to an unknown action id")
	ErrForwardRef       = errors.New("reference to an action declared later")
	ErrRefTypeMismatch  = errors.New("reference type does not match referenced action")
	ErrResponseMismatch = errors.New("response count does not match submitted actions")
)

// Batch accumulates actions in declaration order. Safe for concurrent use;
// each Add appends atomically, though callers coordinating references across
// goroutines must order their own Adds.
type Batch struct {
	mu       sync.Mutex
	actions  []devpack.Action
	registry *registry.Registry
}

func New() *Batch {
	return &Batch{registry: registry.Default}
}

// NewWithRegistry uses a custom kind registry, for engines extending the
// builtin vocabulary.
func NewWithRegistry(r *registry.Registry) *Batch {
	return &Batch{registry: r}
}

// Add appends an action and returns it as stored.
func (b *Batch) Add(action devpack.Action) devpack.Action {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.actions = append(b.actions, action)

	return action
}

// AddWithID assigns the given id to the action before appending, so the
// returned action can be referenced with AsResult.
func (b *Batch) AddWithID(id string, action devpack.Action) devpack.Action {
	action.ID = id

	return b.Add(action)
}

// EnsureIDs assigns generated ids to actions that lack one, making every
// action referenceable. The engine would otherwise assign ids itself.
func (b *Batch) EnsureIDs() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.actions {
		if b.actions[i].ID == "" {
			b.actions[i].ID = uuid.New().String()
		}
	}
}

// Actions returns the collected actions in declaration order.
func (b *Batch) Actions() []devpack.Action {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]devpack.Action, len(b.actions))
	copy(out, b.actions)

	return out
}

func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.actions)
}

// Validate runs the defensive checks the engine would otherwise fail on:
// unknown kinds, schema violations, duplicate ids, and unresolved, dangling
// or forward references. All findings are reported, joined.
func (b *Batch) Validate() error {
	return Validate(b.Actions(), b.registry)
}

// Validate checks a submission-ordered action sequence: per-action kind and
// params validation plus the reference graph checks of ValidateRefs.
func Validate(actions []devpack.Action, reg *registry.Registry) error {
	var errs []error

	for i, action := range actions {
		if err := reg.ValidateParams(action); err != nil {
			errs = append(errs, fmt.Errorf("action %d: %w", i, err))
		}
	}

	if err := ValidateRefs(actions); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ValidateRefs checks id uniqueness and the reference graph. The engine
// resolves references against already materialized results, so a reference
// must point at an action declared earlier; this ordering rule also makes
// reference cycles unrepresentable.
func ValidateRefs(actions []devpack.Action) error {
	var errs []error

	kindByID := make(map[string]string)
	declaredAt := make(map[string]int)

	for i, action := range actions {
		if action.ID != "" {
			if _, ok := kindByID[action.ID]; ok {
				errs = append(errs, fmt.Errorf("action %d: %w: %q", i, ErrDuplicateID, action.ID))
			}

			kindByID[action.ID] = action.Type
			declaredAt[action.ID] = i
		}
	}

	for i, action := range actions {
		for _, ref := range devpack.CollectRefs(action.Params) {
			errs = append(errs, validateRef(i, ref, kindByID, declaredAt)...)
		}
	}

	return errors.Join(errs...)
}

func validateRef(index int, ref *devpack.ActionRef, kindByID map[string]string, declaredAt map[string]int) []error {
	if ref.ID == "" {
		return []error{fmt.Errorf("action %d: %w (type %q)", index, ErrUnresolvedRef, ref.Type)}
	}

	kind, ok := kindByID[ref.ID]
	if !ok {
		return []error{fmt.Errorf("action %d: %w: %q", index, ErrDanglingRef, ref.ID)}
	}

	var errs []error

	if declaredAt[ref.ID] >= index {
		errs = append(errs, fmt.Errorf("action %d: %w: %q", index, ErrForwardRef, ref.ID))
	}

	if ref.Type != kind {
		errs = append(errs, fmt.Errorf("action %d: %w: ref says %q, action %q is %q",
			index, ErrRefTypeMismatch, ref.Type, ref.ID, kind))
	}

	return errs
}

// MarshalJSON emits the action sequence in declaration order.
func (b *Batch) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Actions())
}

// ParseResponses decodes an engine reply into response envelopes.
func ParseResponses(data []byte) ([]devpack.Response, error) {
	var responses []devpack.Response
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, err
	}

	return responses, nil
}

// DecodeResponses decodes an engine reply and enforces the
// one-response-per-action, order-preserving contract.
func (b *Batch) DecodeResponses(data []byte) ([]devpack.Response, error) {
	responses, err := ParseResponses(data)
	if err != nil {
		return nil, err
	}

	if len(responses) != b.Len() {
		return nil, fmt.Errorf("%w: got %d, submitted %d", ErrResponseMismatch, len(responses), b.Len())
	}

	return responses, nil
}
