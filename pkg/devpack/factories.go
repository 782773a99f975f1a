package devpack

// kindDefaults lists parameters injected when absent, keyed by action kind.
// Defaults never override a caller-supplied value, explicit zero included.
var kindDefaults = map[string]map[string]any{
	ActionRandomGenerate: {"length": 32},
}

// New builds an action of the given kind. No schema checking happens here;
// required-parameter validation is the engine's job (see pkg/registry for
// the optional client-side counterpart).
func New(kind string, params map[string]any) Action {
	if params == nil {
		params = map[string]any{}
	}

	for key, value := range kindDefaults[kind] {
		if _, ok := params[key]; !ok {
			params[key] = value
		}
	}

	return Action{Type: kind, Params: params}
}

// EnsureGasAccount provisions (or fetches) the caller's gas account.
func EnsureGasAccount(params map[string]any) Action {
	return New(ActionGasBankEnsure, params)
}

// WithdrawGas withdraws gas to an external address.
func WithdrawGas(params map[string]any) Action {
	return New(ActionGasBankWithdraw, params)
}

// BalanceGasAccount queries a gas account balance.
func BalanceGasAccount(params map[string]any) Action {
	return New(ActionGasBankBalance, params)
}

// ListGasTransactions lists gas account transactions.
func ListGasTransactions(params map[string]any) Action {
	return New(ActionGasBankListTx, params)
}

// CreateOracleRequest creates an oracle data request.
func CreateOracleRequest(params map[string]any) Action {
	return New(ActionOracleCreate, params)
}

// RecordPriceSnapshot records a price feed snapshot.
func RecordPriceSnapshot(params map[string]any) Action {
	return New(ActionPriceFeedSnapshot, params)
}

// GenerateRandom requests verifiable random bytes. When the caller does not
// supply a length, 32 is injected.
func GenerateRandom(params map[string]any) Action {
	return New(ActionRandomGenerate, params)
}

// SubmitDataFeedUpdate submits a data feed round update.
func SubmitDataFeedUpdate(params map[string]any) Action {
	return New(ActionDataFeedSubmit, params)
}

// PublishDataStreamFrame publishes a frame to a data stream.
func PublishDataStreamFrame(params map[string]any) Action {
	return New(ActionDataStreamPublish, params)
}

// CreateDataLinkDelivery creates a cross-chain data delivery.
func CreateDataLinkDelivery(params map[string]any) Action {
	return New(ActionDataLinkCreate, params)
}

// RegisterTrigger registers an event trigger.
func RegisterTrigger(params map[string]any) Action {
	return New(ActionTriggersRegister, params)
}

// ScheduleAutomation schedules a recurring automation job.
func ScheduleAutomation(params map[string]any) Action {
	return New(ActionAutomationSchedule, params)
}
