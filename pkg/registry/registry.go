// Package registry holds the recognized action kind vocabulary and the
// client-side defensive validation of action params. The engine remains the
// authority on parameter semantics; validation here only anticipates the
// rejections the engine would issue anyway.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/r3e-network/devpack-go/pkg/devpack"
	"github.com/robfig/cron/v3"
	"github.com/xeipuuv/gojsonschema"
)

var (
	ErrUnknownKind   = errors.New("unknown action kind")
	ErrInvalidParams = errors.New("invalid action params")
)

// RegisteredKind describes one recognized action kind.
type RegisteredKind struct {
	Type        string      `json:"type"        validate:"required"`
	Name        string      `json:"name"        validate:"required"`
	Description string      `json:"description"`
	Schema      *JSONSchema `json:"schema,omitempty"`
}

type Registry struct {
	kinds map[string]*RegisteredKind
}

// Default is the registry preloaded with the builtin kind vocabulary.
var Default = NewRegistry()

func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string]*RegisteredKind)}
	registerBuiltinKinds(r)

	return r
}

func (r *Registry) Register(kind *RegisteredKind) {
	r.kinds[kind.Type] = kind
}

func (r *Registry) Lookup(kind string) (*RegisteredKind, error) {
	registered, ok := r.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return registered, nil
}

// Kinds returns the registered kind strings, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.kinds))
	for kind := range r.kinds {
		kinds = append(kinds, kind)
	}

	sort.Strings(kinds)

	return kinds
}

// ValidateParams checks an action's params against its kind schema. Params
// carrying action references (directly or nested) are exempt from schema
// constraints, since their resolved shape is only known to the engine.
func (r *Registry) ValidateParams(action devpack.Action) error {
	registered, err := r.Lookup(action.Type)
	if err != nil {
		return err
	}

	if registered.Schema == nil {
		return nil
	}

	refKeys := make(map[string]bool)
	data := make(map[string]any, len(action.Params))

	for key, value := range action.Params {
		if devpack.ContainsRef(value) {
			refKeys[key] = true

			continue
		}

		data[key] = value
	}

	if err := validateJSONSchema(data, registered.Schema.withoutKeys(refKeys)); err != nil {
		return fmt.Errorf("%w for %s: %w", ErrInvalidParams, action.Type, err)
	}

	return r.validateSchedule(action)
}

// validateSchedule parses a literal cron expression on automation.schedule
// actions, mirroring the engine's schedule validation.
func (r *Registry) validateSchedule(action devpack.Action) error {
	if action.Type != devpack.ActionAutomationSchedule {
		return nil
	}

	expr, ok := action.Params["schedule"].(string)
	if !ok {
		return nil
	}

	if _, err := cron.ParseStandard(expr); err != nil {
		return fmt.Errorf("%w for %s: invalid cron expression %q: %w",
			ErrInvalidParams, action.Type, expr, err)
	}

	return nil
}

func validateJSONSchema(data map[string]any, schema *JSONSchema) error {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	dataLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, dataLoader)
	if err != nil {
		return err
	}

	if !result.Valid() {
		descriptions := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			descriptions = append(descriptions, desc.String())
		}

		return errors.New(strings.Join(descriptions, "; "))
	}

	return nil
}
