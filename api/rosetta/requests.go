// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package rosetta

import (
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/response"
)

// Endpoints of the validation API, which are also used as metric labels.
const (
	EndpointNetworkList    = "/network/list"
	EndpointNetworkStatus  = "/network/status"
	EndpointNetworkOptions = "/network/options"
	EndpointBlock          = "/block"
	EndpointTransaction    = "/transaction"
	EndpointMempool        = "/mempool"
	EndpointEvents         = "/events"
	EndpointSearch         = "/search"
	EndpointError          = "/error"
	EndpointOperations     = "/construction/operations"
	EndpointParse          = "/construction/parse"
	EndpointIntent         = "/construction/intent"
	EndpointBalanceChanges = "/balance/changes"
	EndpointImbalances     = "/balance/imbalances"
)

// OperationsRequest contains operations submitted for construction, which have
// no status yet.
type OperationsRequest struct {
	Operations []*object.Operation `json:"operations"`
}

// ParseRequest contains the response of a /construction/parse call, along
// with whether the parsed transaction was signed.
type ParseRequest struct {
	Signed bool            `json:"signed"`
	Parse  *response.Parse `json:"parse"`
}

// IntentRequest contains the operations a client intended to submit, along
// with the operations and signers observed after parsing the transaction.
type IntentRequest struct {
	Intent         []*object.Operation      `json:"intent"`
	Observed       []*object.Operation      `json:"observed"`
	Payloads       []*object.SigningPayload `json:"payloads,omitempty"`
	Signers        []*identifier.Account    `json:"signers,omitempty"`
	ErrExtra       bool                     `json:"err_extra"`
	ConfirmSuccess bool                     `json:"confirm_success"`
}

// BalanceChangesRequest contains a block for which to compute the balance
// changes, and whether the block was removed from the chain.
type BalanceChangesRequest struct {
	Block   *object.Block `json:"block"`
	Removed bool          `json:"removed"`
}

// ImbalancesRequest contains a transaction to check for balance changes that
// are not exempt.
type ImbalancesRequest struct {
	Transaction *object.Transaction `json:"transaction"`
}
