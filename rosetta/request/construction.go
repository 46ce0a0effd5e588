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
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// Derive implements the request schema for /construction/derive.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-1
type Derive struct {
	NetworkID *identifier.Network    `json:"network_identifier"`
	PublicKey *object.PublicKey      `json:"public_key"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Preprocess implements the request schema for /construction/preprocess.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-4
type Preprocess struct {
	NetworkID              *identifier.Network    `json:"network_identifier"`
	Operations             []*object.Operation    `json:"operations"`
	Metadata               map[string]interface{} `json:"metadata,omitempty"`
	MaxFee                 []*object.Amount       `json:"max_fee,omitempty"`
	SuggestedFeeMultiplier *float64               `json:"suggested_fee_multiplier,omitempty"`
}

// Metadata implements the request schema for /construction/metadata.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-2
type Metadata struct {
	NetworkID  *identifier.Network    `json:"network_identifier"`
	Options    map[string]interface{} `json:"options,omitempty"`
	PublicKeys []*object.PublicKey    `json:"public_keys,omitempty"`
}

// Payloads implements the request schema for /construction/payloads.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-5
type Payloads struct {
	NetworkID  *identifier.Network    `json:"network_identifier"`
	Operations []*object.Operation    `json:"operations"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	PublicKeys []*object.PublicKey    `json:"public_keys,omitempty"`
}

// Combine implements the request schema for /construction/combine.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request
type Combine struct {
	NetworkID           *identifier.Network `json:"network_identifier"`
	UnsignedTransaction string              `json:"unsigned_transaction"`
	Signatures          []*object.Signature `json:"signatures"`
}

// Parse implements the request schema for /construction/parse.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-3
type Parse struct {
	NetworkID   *identifier.Network `json:"network_identifier"`
	Signed      bool                `json:"signed"`
	Transaction string              `json:"transaction"`
}

// Hash implements the request schema for /construction/hash.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-6
type Hash struct {
	NetworkID         *identifier.Network `json:"network_identifier"`
	SignedTransaction string              `json:"signed_transaction"`
}

// Submit implements the request schema for /construction/submit.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#request-7
type Submit struct {
	NetworkID         *identifier.Network `json:"network_identifier"`
	SignedTransaction string              `json:"signed_transaction"`
}
