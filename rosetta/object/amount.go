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

// Amount is some value of a currency. It is considered invalid to specify a
// value without a currency. The value is the integer amount in atomic units
// of the currency, encoded as a string so it can exceed 64 bits.
type Amount struct {
	Value    string                 `json:"value"`
	Currency *identifier.Currency   `json:"currency"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}
