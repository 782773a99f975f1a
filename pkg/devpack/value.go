package devpack

// AsRef reports whether a params value is an action reference, either as the
// in-memory *ActionRef type or as a decoded sentinel-tagged map.
func AsRef(value any) (*ActionRef, bool) {
	switch v := value.(type) {
	case *ActionRef:
		return v, true
	case ActionRef:
		return &v, true
	case map[string]any:
		flag, ok := v[RefKey].(bool)
		if !ok || !flag {
			return nil, false
		}

		ref := &ActionRef{}
		ref.ID, _ = v["id"].(string)
		ref.Type, _ = v["type"].(string)
		ref.Meta, _ = v["meta"].(map[string]any)

		return ref, true
	default:
		return nil, false
	}
}

// CollectRefs returns every reference reachable from the params mapping,
// including those nested inside composite values.
func CollectRefs(params map[string]any) []*ActionRef {
	var refs []*ActionRef
	for _, value := range params {
		refs = append(refs, collectValueRefs(value)...)
	}

	return refs
}

// ContainsRef reports whether any reference is reachable from the value.
func ContainsRef(value any) bool {
	return len(collectValueRefs(value)) > 0
}

func collectValueRefs(value any) []*ActionRef {
	if ref, ok := AsRef(value); ok {
		return []*ActionRef{ref}
	}

	var refs []*ActionRef

	switch v := value.(type) {
	case map[string]any:
		for _, nested := range v {
			refs = append(refs, collectValueRefs(nested)...)
		}
	case []any:
		for _, nested := range v {
			refs = append(refs, collectValueRefs(nested)...)
		}
	}

	return refs
}

// reifyValue rewrites sentinel-tagged maps into *ActionRef, recursing through
// nested maps and slices. Non-composite values pass through untouched.
func reifyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		if ref, ok := AsRef(v); ok {
			return ref
		}

		for key, nested := range v {
			v[key] = reifyValue(nested)
		}

		return v
	case []any:
		for i, nested := range v {
			v[i] = reifyValue(nested)
		}

		return v
	default:
		return value
	}
}
