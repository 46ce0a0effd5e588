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

// Transaction contains an array of operations that are attributable to the same
// transaction identifier.
//
// Examples of metadata given in the Rosetta API documentation are "size" and
// "lockTime".
type Transaction struct {
	ID         identifier.Transaction `json:"transaction_identifier"`
	Operations []*Operation           `json:"operations"`
	Related    []*RelatedTransaction  `json:"related_transactions,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// Direction indicates the relationship between two related transactions.
type Direction string

// Supported directions for related transactions.
const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// RelatedTransaction links a transaction to another one, possibly on a
// different network, such as a cross-shard transfer.
type RelatedTransaction struct {
	NetworkID     *identifier.Network     `json:"network_identifier,omitempty"`
	TransactionID *identifier.Transaction `json:"transaction_identifier"`
	Direction     Direction               `json:"direction"`
}
