package devpack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsResult_CopiesIDTypeAndMeta(t *testing.T) {
	action := CreateOracleRequest(map[string]any{"dataSourceId": "src-1"})
	action.ID = "X"

	meta := map[string]any{"field": "price"}
	ref := action.AsResult(meta)

	assert.Equal(t, "X", ref.ID)
	assert.Equal(t, ActionOracleCreate, ref.Type)
	assert.Equal(t, meta, ref.Meta)
}

func TestAsResult_WithoutID(t *testing.T) {
	ref := GenerateRandom(nil).AsResult(nil)

	assert.Empty(t, ref.ID)
	assert.Equal(t, ActionRandomGenerate, ref.Type)
	assert.Nil(t, ref.Meta)
}

func TestAsResult_DoesNotMutateSource(t *testing.T) {
	action := GenerateRandom(nil)
	action.ID = "r1"

	before := action
	_ = action.AsResult(map[string]any{"field": "value"})

	assert.Equal(t, before, action)
}

func TestActionRef_MarshalEmitsSentinel(t *testing.T) {
	data, err := json.Marshal(ActionRef{ID: "a1", Type: ActionOracleCreate})
	require.NoError(t, err)
	assert.JSONEq(t, `{"__devpack_ref__":true,"id":"a1","type":"oracle.createRequest"}`, string(data))
}

func TestActionRef_MarshalEmitsEmptyID(t *testing.T) {
	// Unlike Action.ID, a reference id is always on the wire, even empty.
	data, err := json.Marshal(ActionRef{Type: ActionRandomGenerate})
	require.NoError(t, err)
	assert.JSONEq(t, `{"__devpack_ref__":true,"id":"","type":"random.generate"}`, string(data))
}

func TestActionRef_UnmarshalRequiresSentinel(t *testing.T) {
	var ref ActionRef

	err := json.Unmarshal([]byte(`{"id":"a1","type":"oracle.createRequest"}`), &ref)
	require.ErrorIs(t, err, ErrNotARef)

	err = json.Unmarshal([]byte(`{"__devpack_ref__":false,"id":"a1","type":"oracle.createRequest"}`), &ref)
	require.ErrorIs(t, err, ErrNotARef)
}

func TestActionRef_RoundTrip(t *testing.T) {
	original := ActionRef{ID: "a1", Type: ActionOracleCreate, Meta: map[string]any{"field": "price"}}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded ActionRef
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestAsRef_DetectsRefsAndData(t *testing.T) {
	ref, ok := AsRef(&ActionRef{ID: "a1", Type: ActionOracleCreate})
	require.True(t, ok)
	assert.Equal(t, "a1", ref.ID)

	ref, ok = AsRef(map[string]any{RefKey: true, "id": "a2", "type": "random.generate"})
	require.True(t, ok)
	assert.Equal(t, "a2", ref.ID)

	_, ok = AsRef(map[string]any{"id": "a3"})
	assert.False(t, ok)

	_, ok = AsRef("plain string")
	assert.False(t, ok)
}

func TestCollectRefs_FindsNestedRefs(t *testing.T) {
	params := map[string]any{
		"direct": &ActionRef{ID: "a1", Type: ActionOracleCreate},
		"nested": map[string]any{
			"list": []any{&ActionRef{ID: "a2", Type: ActionRandomGenerate}, 42},
		},
		"plain": "value",
	}

	refs := CollectRefs(params)
	require.Len(t, refs, 2)

	ids := []string{refs[0].ID, refs[1].ID}
	assert.ElementsMatch(t, []string{"a1", "a2"}, ids)
}
