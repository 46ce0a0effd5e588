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

// CurveType is the type of cryptographic curve associated with a public key.
type CurveType string

// Supported curve types.
const (
	Secp256k1         CurveType = "secp256k1"
	Secp256k1Bip340   CurveType = "secp256k1_bip340"
	Secp256r1         CurveType = "secp256r1"
	Edwards25519      CurveType = "edwards25519"
	Tweedle           CurveType = "tweedle"
	Pallas            CurveType = "pallas"
	Bls12381Signature CurveType = "bls12381_bls_signature"
)

// SignatureType is the type of a cryptographic signature.
type SignatureType string

// Supported signature types.
const (
	Ecdsa           SignatureType = "ecdsa"
	EcdsaRecovery   SignatureType = "ecdsa_recovery"
	Ed25519         SignatureType = "ed25519"
	Schnorr1        SignatureType = "schnorr_1"
	SchnorrPoseidon SignatureType = "schnorr_poseidon"
	SchnorrBip340   SignatureType = "schnorr_bip340"
	BlsSignature    SignatureType = "bls12381_bls_signature"
)

// SigningPayload is signed by the client with the key of the given account.
type SigningPayload struct {
	AccountID     *identifier.Account `json:"account_identifier,omitempty"`
	HexBytes      string              `json:"hex_bytes"`
	SignatureType SignatureType       `json:"signature_type,omitempty"`
}

// PublicKey represents a public key used in a transaction signature.
type PublicKey struct {
	HexBytes  string    `json:"hex_bytes"`
	CurveType CurveType `json:"curve_type"`
}

// Signature contains the information about a transaction signature.
type Signature struct {
	SigningPayload *SigningPayload `json:"signing_payload"`
	PublicKey      *PublicKey      `json:"public_key"`
	SignatureType  SignatureType   `json:"signature_type"`
	HexBytes       string          `json:"hex_bytes"`
}
