package registry

import "github.com/r3e-network/devpack-go/pkg/devpack"

// gasAccountSelector matches the engine's "gasAccountId or wallet required"
// rule shared by every gas bank operation except account provisioning.
var gasAccountSelector = []*JSONSchema{
	{Required: []string{"gasAccountId"}},
	{Required: []string{"wallet"}},
}

func registerBuiltinKinds(r *Registry) {
	zero := 0.0
	one := 1.0

	r.Register(&RegisteredKind{
		Type:        devpack.ActionGasBankEnsure,
		Name:        "Ensure Gas Account",
		Description: "Provision or fetch the caller's gas account",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"wallet": {Type: "string", Description: "Wallet address to bind the account to"},
			},
		},
	})

	r.Register(&RegisteredKind{
		Type:        devpack.ActionGasBankWithdraw,
		Name:        "Withdraw Gas",
		Description: "Withdraw gas to an external address",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"gasAccountId": {Type: "string"},
				"wallet":       {Type: "string"},
				"amount":       {Type: "number", ExclusiveMinimum: &zero},
				"to":           {Type: "string", Description: "Destination address"},
			},
			Required: []string{"amount"},
			AnyOf:    gasAccountSelector,
		},
	})

	r.Register(&RegisteredKind{
		Type:        devpack.ActionGasBankBalance,
		Name:        "Gas Account Balance",
		Description: "Query a gas account balance",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"gasAccountId": {Type: "string"},
				"wallet":       {Type: "string"},
			},
			AnyOf: gasAccountSelector,
		},
	})

	r.Register(&RegisteredKind{
		Type:        devpack.ActionGasBankListTx,
		Name:        "List Gas Transactions",
		Description: "List gas account transactions, optionally filtered",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"gasAccountId": {Type: "string"},
				"wallet":       {Type: "string"},
				"status":       {Type: "string"},
				"type":         {Type: "string"},
				"limit":        {Type: "integer", Minimum: &one},
			},
			AnyOf: gasAccountSelector,
		},
	})

	r.Register(&RegisteredKind{
		Type:        devpack.ActionOracleCreate,
		Name:        "Create Oracle Request",
		Description: "Create an oracle data request against a registered data source",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"dataSourceId": {Type: "string"},
				"payload":      {Type: "string"},
			},
			Required: []string{"dataSourceId"},
		},
	})

	r.Register(&RegisteredKind{
		Type:        devpack.ActionPriceFeedSnapshot,
		Name:        "Record Price Snapshot",
		Description: "Record a price feed snapshot",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"feedId": {Type: "string"},
				"price":  {Type: "number"},
				"source": {Type: "string", Description: "Where the price was collected from"},
			},
			Required: []string{"feedId", "price"},
		},
	})

	r.Register(&RegisteredKind{
		Type:        devpack.ActionRandomGenerate,
		Name:        "Generate Random",
		Description: "Request verifiable random bytes",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"length": {Type: "integer", Default: 32},
			},
		},
	})

	r.Register(&RegisteredKind{
		Type:        devpack.ActionDataFeedSubmit,
		Name:        "Submit Data Feed Update",
		Description: "Submit a signed data feed round update",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"feedId":    {Type: "string"},
				"roundId":   {Type: "integer"},
				"price":     {Type: "string"},
				"signer":    {Type: "string"},
				"signature": {Type: "string"},
				"metadata":  {Type: "object"},
			},
			Required: []string{"feedId"},
		},
	})

	r.Register(&RegisteredKind{
		Type:        devpack.ActionDataStreamPublish,
		Name:        "Publish Data Stream Frame",
		Description: "Publish a frame to a data stream",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"streamId":  {Type: "string"},
				"sequence":  {Type: "integer"},
				"payload":   {Type: "object"},
				"status":    {Type: "string"},
				"latencyMs": {Type: "integer"},
				"metadata":  {Type: "object"},
			},
			Required: []string{"streamId"},
		},
	})

	r.Register(&RegisteredKind{
		Type:        devpack.ActionDataLinkCreate,
		Name:        "Create Data Link Delivery",
		Description: "Create a delivery on a data link channel",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"channelId": {Type: "string"},
				"payload":   {Type: "object"},
				"metadata":  {Type: "object"},
			},
			Required: []string{"channelId"},
		},
	})

	r.Register(&RegisteredKind{
		Type:        devpack.ActionTriggersRegister,
		Name:        "Register Trigger",
		Description: "Register an event trigger",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"name":   {Type: "string"},
				"kind":   {Type: "string"},
				"config": {Type: "object"},
			},
			Required: []string{"name"},
		},
	})

	r.Register(&RegisteredKind{
		Type:        devpack.ActionAutomationSchedule,
		Name:        "Schedule Automation",
		Description: "Schedule a recurring automation job",
		Schema: &JSONSchema{
			Type: "object",
			Properties: map[string]*Property{
				"name":        {Type: "string"},
				"schedule":    {Type: "string", Description: "Standard cron expression"},
				"description": {Type: "string"},
				"functionId":  {Type: "string"},
			},
			Required: []string{"name", "schedule"},
		},
	})
}
