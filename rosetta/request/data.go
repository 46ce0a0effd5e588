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

package request

import (
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
)

// Networks implements the request schema for /network/list.
// See https://www.rosetta-api.org/docs/NetworkApi.html#request
type Networks struct {
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Network implements the request schema for /network/status and
// /network/options, as well as /mempool.
// See https://www.rosetta-api.org/docs/NetworkApi.html#request-1
type Network struct {
	NetworkID *identifier.Network    `json:"network_identifier"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Balance implements the request schema for /account/balance.
// See https://www.rosetta-api.org/docs/AccountApi.html#request
type Balance struct {
	NetworkID  *identifier.Network      `json:"network_identifier"`
	AccountID  *identifier.Account      `json:"account_identifier"`
	BlockID    *identifier.PartialBlock `json:"block_identifier,omitempty"`
	Currencies []*identifier.Currency   `json:"currencies,omitempty"`
}

// Coins implements the request schema for /account/coins.
// See https://www.rosetta-api.org/docs/AccountApi.html#request-1
type Coins struct {
	NetworkID      *identifier.Network    `json:"network_identifier"`
	AccountID      *identifier.Account    `json:"account_identifier"`
	IncludeMempool bool                   `json:"include_mempool"`
	Currencies     []*identifier.Currency `json:"currencies,omitempty"`
}

// Block implements the request schema for /block.
// See https://www.rosetta-api.org/docs/BlockApi.html#request
type Block struct {
	NetworkID *identifier.Network      `json:"network_identifier"`
	BlockID   *identifier.PartialBlock `json:"block_identifier"`
}

// Transaction implements the request schema for /block/transaction.
// See https://www.rosetta-api.org/docs/BlockApi.html#request-1
type Transaction struct {
	NetworkID     *identifier.Network     `json:"network_identifier"`
	BlockID       *identifier.Block       `json:"block_identifier"`
	TransactionID *identifier.Transaction `json:"transaction_identifier"`
}

// MempoolTransaction implements the request schema for /mempool/transaction.
// See https://www.rosetta-api.org/docs/MempoolApi.html#request-1
type MempoolTransaction struct {
	NetworkID     *identifier.Network     `json:"network_identifier"`
	TransactionID *identifier.Transaction `json:"transaction_identifier"`
}

// Call implements the request schema for /call.
// See https://www.rosetta-api.org/docs/CallApi.html#request
type Call struct {
	NetworkID  *identifier.Network    `json:"network_identifier"`
	Method     string                 `json:"method"`
	Parameters map[string]interface{} `json:"parameters"`
}

// Events implements the request schema for /events/blocks.
// See https://www.rosetta-api.org/docs/EventsApi.html#request
type Events struct {
	NetworkID *identifier.Network `json:"network_identifier"`
	Offset    *int64              `json:"offset,omitempty"`
	Limit     *int64              `json:"limit,omitempty"`
}

// Operator is used by search requests to combine conditions.
type Operator string

// Supported search operators.
const (
	OperatorOr  Operator = "or"
	OperatorAnd Operator = "and"
)

// Search implements the request schema for /search/transactions.
// See https://www.rosetta-api.org/docs/SearchApi.html#request
type Search struct {
	NetworkID     *identifier.Network     `json:"network_identifier"`
	Operator      *Operator               `json:"operator,omitempty"`
	MaxBlock      *int64                  `json:"max_block,omitempty"`
	Offset        *int64                  `json:"offset,omitempty"`
	Limit         *int64                  `json:"limit,omitempty"`
	TransactionID *identifier.Transaction `json:"transaction_identifier,omitempty"`
	AccountID     *identifier.Account     `json:"account_identifier,omitempty"`
	CoinID        *identifier.Coin        `json:"coin_identifier,omitempty"`
	Currency      *identifier.Currency    `json:"currency,omitempty"`
	Status        *string                 `json:"status,omitempty"`
	Type          *string                 `json:"type,omitempty"`
	Address       *string                 `json:"address,omitempty"`
	Success       *bool                   `json:"success,omitempty"`
}
