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

package object

import (
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
)

// OperationStatus is a status an operation can have, along with whether it
// means the operation succeeded and affected balances.
type OperationStatus struct {
	Status     string `json:"status"`
	Successful bool   `json:"successful"`
}

// Version contains the version information of a Rosetta implementation.
type Version struct {
	RosettaVersion    string                 `json:"rosetta_version"`
	NodeVersion       string                 `json:"node_version"`
	MiddlewareVersion *string                `json:"middleware_version,omitempty"`
	Metadata          map[string]interface{} `json:"metadata,omitempty"`
}

// ExemptionType describes in which direction a live balance may deviate from
// the computed balance.
type ExemptionType string

// Supported balance exemption types.
const (
	ExemptionGreaterOrEqual ExemptionType = "greater_or_equal"
	ExemptionLessOrEqual    ExemptionType = "less_or_equal"
	ExemptionDynamic        ExemptionType = "dynamic"
)

// BalanceExemption indicates that the balance of a sub account or of a
// currency may change without a corresponding operation.
type BalanceExemption struct {
	SubAccountAddress *string              `json:"sub_account_address,omitempty"`
	Currency          *identifier.Currency `json:"currency,omitempty"`
	ExemptionType     ExemptionType        `json:"exemption_type"`
}

// Allow specifies which operation statuses, operation types and errors are
// supported by an implementation, along with its optional capabilities.
type Allow struct {
	OperationStatuses       []*OperationStatus  `json:"operation_statuses"`
	OperationTypes          []string            `json:"operation_types"`
	Errors                  []*Error            `json:"errors"`
	HistoricalBalanceLookup bool                `json:"historical_balance_lookup"`
	TimestampStartIndex     *int64              `json:"timestamp_start_index,omitempty"`
	CallMethods             []string            `json:"call_methods,omitempty"`
	BalanceExemptions       []*BalanceExemption `json:"balance_exemptions,omitempty"`
	MempoolCoins            bool                `json:"mempool_coins"`
}

// Peer is a peer of the node an implementation is connected to.
type Peer struct {
	PeerID   string                 `json:"peer_id"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// SyncStatus exposes how far a node is in the process of syncing.
type SyncStatus struct {
	CurrentIndex *int64  `json:"current_index,omitempty"`
	TargetIndex  *int64  `json:"target_index,omitempty"`
	Stage        *string `json:"stage,omitempty"`
	Synced       *bool   `json:"synced,omitempty"`
}
