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
	"github.com/optakt/rosetta-asserter/rosetta/parser"
)

// ValidResponse is returned when a payload passed validation.
type ValidResponse struct {
	Valid bool `json:"valid"`
}

// BalanceChangesResponse contains the balance changes of a block.
type BalanceChangesResponse struct {
	BalanceChanges []*parser.BalanceChange `json:"balance_changes"`
}

// ImbalancesResponse contains the imbalances of a transaction.
type ImbalancesResponse struct {
	Imbalances []Imbalance `json:"imbalances"`
}

// Imbalance is a group of operations on the same account and currency whose
// amounts do not sum up to zero.
type Imbalance struct {
	Account    identifier.Account  `json:"account_identifier"`
	Currency   identifier.Currency `json:"currency"`
	Operations []int64             `json:"operation_indices"`
	NetBalance string              `json:"net_balance"`
}

func imbalances(groups []*parser.OperationGroup) []Imbalance {
	imbalances := make([]Imbalance, 0, len(groups))
	for _, group := range groups {
		imbalance := Imbalance{
			Account:    group.Account,
			Currency:   group.Currency,
			Operations: group.Operations,
			NetBalance: group.NetBalance.String(),
		}
		imbalances = append(imbalances, imbalance)
	}
	return imbalances
}
