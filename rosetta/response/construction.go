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

// Preprocess implements the response schema for /construction/preprocess.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-4
type Preprocess struct {
	Options            map[string]interface{} `json:"options,omitempty"`
	RequiredPublicKeys []*identifier.Account  `json:"required_public_keys,omitempty"`
}

// Metadata implements the response schema for /construction/metadata.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-2
type Metadata struct {
	Metadata     map[string]interface{} `json:"metadata"`
	SuggestedFee []*object.Amount       `json:"suggested_fee,omitempty"`
}

// TransactionID implements the response schema for /construction/hash and
// /construction/submit.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-6
type TransactionID struct {
	TransactionID *identifier.Transaction `json:"transaction_identifier"`
	Metadata      map[string]interface{}  `json:"metadata,omitempty"`
}

// Combine implements the response schema for /construction/combine.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response
type Combine struct {
	SignedTransaction string `json:"signed_transaction"`
}

// Derive implements the response schema for /construction/derive.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-1
type Derive struct {
	AccountID *identifier.Account    `json:"account_identifier,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Parse implements the response schema for /construction/parse.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-3
type Parse struct {
	Operations []*object.Operation    `json:"operations"`
	SignerIDs  []*identifier.Account  `json:"account_identifier_signers,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// Payloads implements the response schema for /construction/payloads.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#response-5
type Payloads struct {
	UnsignedTransaction string                   `json:"unsigned_transaction"`
	Payloads            []*object.SigningPayload `json:"payloads"`
}
