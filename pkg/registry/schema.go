package registry

// JSONSchema describes the expected params shape of an action kind. It
// serializes to standard JSON Schema for validation.
type JSONSchema struct {
	Type        string               `json:"type,omitempty"`
	Title       string               `json:"title,omitempty"`
	Description string               `json:"description,omitempty"`
	Properties  map[string]*Property `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
	AnyOf       []*JSONSchema        `json:"anyOf,omitempty"`
}

// Property represents a JSON Schema property.
type Property struct {
	Type             string               `json:"type"`
	Description      string               `json:"description,omitempty"`
	Enum             []any                `json:"enum,omitempty"`
	Default          any                  `json:"default,omitempty"`
	Format           string               `json:"format,omitempty"`
	Minimum          *float64             `json:"minimum,omitempty"`
	ExclusiveMinimum *float64             `json:"exclusiveMinimum,omitempty"`
	MinLength        *int                 `json:"minLength,omitempty"`
	MaxLength        *int                 `json:"maxLength,omitempty"`
	Pattern          string               `json:"pattern,omitempty"`
	Items            *Property            `json:"items,omitempty"`
	Properties       map[string]*Property `json:"properties,omitempty"`
	Required         []string             `json:"required,omitempty"`
}

// withoutKeys returns a copy of the schema with the given top-level keys
// removed from properties and required lists, anyOf alternatives included.
// Used to skip constraints on params supplied as action references, whose
// shape is only known after the engine resolves them.
func (s *JSONSchema) withoutKeys(skip map[string]bool) *JSONSchema {
	if len(skip) == 0 {
		return s
	}

	out := &JSONSchema{
		Type:        s.Type,
		Title:       s.Title,
		Description: s.Description,
	}

	if s.Properties != nil {
		out.Properties = make(map[string]*Property, len(s.Properties))
		for name, prop := range s.Properties {
			if !skip[name] {
				out.Properties[name] = prop
			}
		}
	}

	for _, name := range s.Required {
		if !skip[name] {
			out.Required = append(out.Required, name)
		}
	}

	for _, alt := range s.AnyOf {
		out.AnyOf = append(out.AnyOf, alt.withoutKeys(skip))
	}

	return out
}
