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

package identifier

// Account uniquely identifies an account within a network. All fields in the
// account identifier are utilized to determine uniqueness, including the
// metadata field, if populated.
type Account struct {
	Address    string                 `json:"address"`
	SubAccount *SubAccount            `json:"sub_account,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// SubAccount is used to track balances of an account that are not spendable
// in the same way as the main balance, such as staked or vesting funds.
type SubAccount struct {
	Address  string                 `json:"address"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
