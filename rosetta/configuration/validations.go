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

package configuration

// ChainAccount is the chain type of account-based networks. Payment and fee
// validations are only applied to account-based networks.
const ChainAccount = "account"

// AnyCount disables the operation count check of a validation.
const AnyCount = -1

// Validations configures stricter checks of the payment and fee operations
// of a transaction.
type Validations struct {
	Enabled          bool                `json:"enabled"`
	RelatedOpsExists bool                `json:"related_ops_exists"`
	ChainType        string              `json:"chain_type"`
	Payment          ValidationOperation `json:"payment"`
	Fee              ValidationOperation `json:"fee"`
}

// ValidationOperation names the operation type a validation applies to.
type ValidationOperation struct {
	Name      string         `json:"name"`
	Operation OperationCount `json:"operation"`
}

// OperationCount is the expected number of operations of a type within a
// transaction, and whether their amounts have to sum up to zero.
type OperationCount struct {
	Count         int64 `json:"count"`
	ShouldBalance bool  `json:"should_balance"`
}
