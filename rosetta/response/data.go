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

package response

import (
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// Balance implements the response schema for /account/balance.
// See https://www.rosetta-api.org/docs/AccountApi.html#response
type Balance struct {
	BlockID  *identifier.Block      `json:"block_identifier"`
	Balances []*object.Amount       `json:"balances"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Coins implements the response schema for /account/coins.
// See https://www.rosetta-api.org/docs/AccountApi.html#response-1
type Coins struct {
	BlockID  *identifier.Block      `json:"block_identifier"`
	Coins    []*object.Coin         `json:"coins"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Block implements the response schema for /block.
// See https://www.rosetta-api.org/docs/BlockApi.html#response
type Block struct {
	Block             *object.Block             `json:"block,omitempty"`
	OtherTransactions []*identifier.Transaction `json:"other_transactions,omitempty"`
}

// Transaction implements the response schema for /block/transaction.
// See https://www.rosetta-api.org/docs/BlockApi.html#response-1
type Transaction struct {
	Transaction *object.Transaction `json:"transaction"`
}

// Mempool implements the response schema for /mempool.
// See https://www.rosetta-api.org/docs/MempoolApi.html#response
type Mempool struct {
	TransactionIDs []*identifier.Transaction `json:"transaction_identifiers"`
}

// Events implements the response schema for /events/blocks.
// See https://www.rosetta-api.org/docs/EventsApi.html#response
type Events struct {
	MaxSequence int64                `json:"max_sequence"`
	Events      []*object.BlockEvent `json:"events"`
}

// BlockTransaction is a transaction along with the block that contains it.
type BlockTransaction struct {
	BlockID     *identifier.Block   `json:"block_identifier"`
	Transaction *object.Transaction `json:"transaction"`
}

// Search implements the response schema for /search/transactions.
// See https://www.rosetta-api.org/docs/SearchApi.html#response
type Search struct {
	Transactions []*BlockTransaction `json:"transactions"`
	TotalCount   int64               `json:"total_count"`
	NextOffset   *int64              `json:"next_offset,omitempty"`
}

// Call implements the response schema for /call.
// See https://www.rosetta-api.org/docs/CallApi.html#response
type Call struct {
	Result     map[string]interface{} `json:"result"`
	Idempotent bool                   `json:"idempotent"`
}
