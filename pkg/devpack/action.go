// Package devpack builds action payloads for the service-layer devpack
// contract. It is a thin data model, not a transport client: the function
// runtime collects the emitted actions, the execution engine resolves any
// embedded result references and returns one response envelope per action.
package devpack

import (
	"encoding/json"

	"github.com/mitchellh/mapstructure"
)

// Action kind strings recognized by the execution engine.
const (
	ActionGasBankEnsure      = "gasbank.ensureAccount"
	ActionGasBankWithdraw    = "gasbank.withdraw"
	ActionGasBankBalance     = "gasbank.balance"
	ActionGasBankListTx      = "gasbank.listTransactions"
	ActionOracleCreate       = "oracle.createRequest"
	ActionPriceFeedSnapshot  = "pricefeed.recordSnapshot"
	ActionRandomGenerate     = "random.generate"
	ActionDataFeedSubmit     = "datafeeds.submitUpdate"
	ActionDataStreamPublish  = "datastreams.publishFrame"
	ActionDataLinkCreate     = "datalink.createDelivery"
	ActionTriggersRegister   = "triggers.register"
	ActionAutomationSchedule = "automation.schedule"
)

// Action is a typed command destined for remote execution. An empty ID means
// the engine assigns one; params values are either plain JSON-like data or
// *ActionRef placeholders standing in for an earlier action's result.
type Action struct {
	ID     string         `json:"id,omitempty"`
	Type   string         `json:"type"             validate:"required"`
	Params map[string]any `json:"params,omitempty"`
}

// AsResult derives a reference to the eventual result of the action, suitable
// for embedding as a params value of a later action in the same batch. The
// source action is not modified; the reference can be reused freely.
//
// An action without an assigned ID yields a reference with an empty id. The
// engine's fallback rule for such references is unconfirmed, so batch
// validation rejects them.
func (a Action) AsResult(meta map[string]any) *ActionRef {
	return &ActionRef{ID: a.ID, Type: a.Type, Meta: meta}
}

// DecodeParams decodes an action's params into out. Reference values decode
// only into *ActionRef fields; plain data decodes by field name.
func DecodeParams(action Action, out any) error {
	return mapstructure.Decode(action.Params, out)
}

// UnmarshalJSON decodes the wire form and reifies sentinel-tagged maps inside
// params back into *ActionRef values, at any nesting depth.
func (a *Action) UnmarshalJSON(data []byte) error {
	type plain Action

	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, value := range raw.Params {
		raw.Params[key] = reifyValue(value)
	}

	*a = Action(raw)

	return nil
}
