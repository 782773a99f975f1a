package devpack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactories_FixedTypeAndNoID(t *testing.T) {
	cases := map[string]struct {
		factory func(map[string]any) Action
		kind    string
	}{
		"ensure gas account":     {EnsureGasAccount, ActionGasBankEnsure},
		"withdraw gas":           {WithdrawGas, ActionGasBankWithdraw},
		"balance gas account":    {BalanceGasAccount, ActionGasBankBalance},
		"list gas transactions":  {ListGasTransactions, ActionGasBankListTx},
		"create oracle request":  {CreateOracleRequest, ActionOracleCreate},
		"record price snapshot":  {RecordPriceSnapshot, ActionPriceFeedSnapshot},
		"generate random":        {GenerateRandom, ActionRandomGenerate},
		"submit datafeed update": {SubmitDataFeedUpdate, ActionDataFeedSubmit},
		"publish stream frame":   {PublishDataStreamFrame, ActionDataStreamPublish},
		"create link delivery":   {CreateDataLinkDelivery, ActionDataLinkCreate},
		"register trigger":       {RegisterTrigger, ActionTriggersRegister},
		"schedule automation":    {ScheduleAutomation, ActionAutomationSchedule},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			action := tc.factory(nil)
			assert.Equal(t, tc.kind, action.Type)
			assert.Empty(t, action.ID)
			assert.NotNil(t, action.Params)
		})
	}
}

func TestGenerateRandom_InjectsDefaultLength(t *testing.T) {
	action := GenerateRandom(nil)
	assert.Equal(t, 32, action.Params["length"])

	action = GenerateRandom(map[string]any{"seed": "abc"})
	assert.Equal(t, 32, action.Params["length"])
	assert.Equal(t, "abc", action.Params["seed"])
}

func TestGenerateRandom_KeepsExplicitLength(t *testing.T) {
	action := GenerateRandom(map[string]any{"length": 64})
	assert.Equal(t, 64, action.Params["length"])

	// An explicit zero is a caller decision, not an absent key.
	action = GenerateRandom(map[string]any{"length": 0})
	assert.Equal(t, 0, action.Params["length"])
}

func TestAction_MarshalOmitsEmptyIDAndParams(t *testing.T) {
	data, err := json.Marshal(EnsureGasAccount(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"gasbank.ensureAccount"}`, string(data))
}

func TestAction_MarshalEmitsAssignedID(t *testing.T) {
	action := CreateOracleRequest(map[string]any{"dataSourceId": "src-1"})
	action.ID = "a1"

	data, err := json.Marshal(action)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a1","type":"oracle.createRequest","params":{"dataSourceId":"src-1"}}`, string(data))
}

func TestAction_EmbeddedResultReference(t *testing.T) {
	oracle := CreateOracleRequest(map[string]any{"pair": "ETH/USD"})
	oracle.ID = "a1"

	snapshot := RecordPriceSnapshot(map[string]any{
		"source": oracle.AsResult(map[string]any{"field": "price"}),
	})

	data, err := json.Marshal(snapshot)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "pricefeed.recordSnapshot",
		"params": {
			"source": {
				"__devpack_ref__": true,
				"id": "a1",
				"type": "oracle.createRequest",
				"meta": {"field": "price"}
			}
		}
	}`, string(data))
}

func TestAction_RoundTrip(t *testing.T) {
	original := RecordPriceSnapshot(map[string]any{
		"feedId": "eth-usd",
		"price":  2200.5,
		"source": &ActionRef{ID: "a1", Type: ActionOracleCreate, Meta: map[string]any{"field": "price"}},
	})
	original.ID = "b1"

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Action
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestAction_UnmarshalReifiesNestedRefs(t *testing.T) {
	raw := `{
		"type": "datalink.createDelivery",
		"params": {
			"channelId": "ch-1",
			"payload": {
				"inputs": [
					{"__devpack_ref__": true, "id": "r1", "type": "random.generate"},
					"literal"
				]
			}
		}
	}`

	var action Action
	require.NoError(t, json.Unmarshal([]byte(raw), &action))

	payload, ok := action.Params["payload"].(map[string]any)
	require.True(t, ok)
	inputs, ok := payload["inputs"].([]any)
	require.True(t, ok)
	require.Len(t, inputs, 2)

	ref, ok := inputs[0].(*ActionRef)
	require.True(t, ok)
	assert.Equal(t, "r1", ref.ID)
	assert.Equal(t, ActionRandomGenerate, ref.Type)
	assert.Nil(t, ref.Meta)
	assert.Equal(t, "literal", inputs[1])
}
