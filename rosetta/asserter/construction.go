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

package asserter

import (
	"fmt"

	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/response"
)

// ConstructionPreprocessResponse ensures the accounts for which public keys
// are required are valid.
func ConstructionPreprocessResponse(preprocess *response.Preprocess) error {
	if preprocess == nil {
		return failure.New(ErrConstructionPreprocessResponseIsNil)
	}
	for i, account := range preprocess.RequiredPublicKeys {
		err := AccountIdentifier(account)
		if err != nil {
			return fmt.Errorf("invalid required public key account (index: %d): %w", i, err)
		}
	}
	return nil
}

// ConstructionMetadataResponse ensures the metadata is present and that the
// suggested fees are valid.
func ConstructionMetadataResponse(metadata *response.Metadata) error {
	if metadata == nil {
		return failure.New(ErrConstructionMetadataResponseIsNil)
	}
	if metadata.Metadata == nil {
		return failure.New(ErrConstructionMetadataResponseMetadataMissing)
	}
	if len(metadata.SuggestedFee) == 0 {
		return nil
	}
	err := AssertUniqueAmounts(metadata.SuggestedFee)
	if err != nil {
		return fmt.Errorf("invalid suggested fee: %w", err)
	}
	return nil
}

// TransactionIdentifierResponse ensures the returned transaction identifier
// is valid.
func TransactionIdentifierResponse(id *response.TransactionID) error {
	if id == nil {
		return failure.New(ErrTxIdentifierResponseIsNil)
	}
	return TransactionIdentifier(id.TransactionID)
}

// ConstructionCombineResponse ensures a signed transaction was returned.
func ConstructionCombineResponse(combine *response.Combine) error {
	if combine == nil {
		return failure.New(ErrConstructionCombineResponseIsNil)
	}
	if combine.SignedTransaction == "" {
		return failure.New(ErrSignedTxEmpty)
	}
	return nil
}

// ConstructionDeriveResponse ensures a valid account was derived.
func ConstructionDeriveResponse(derive *response.Derive) error {
	if derive == nil {
		return failure.New(ErrConstructionDeriveResponseIsNil)
	}
	err := AccountIdentifier(derive.AccountID)
	if err != nil {
		return fmt.Errorf("invalid derived account: %w", err)
	}
	return nil
}

// ConstructionParseResponse ensures the operations of a parsed transaction
// are valid construction operations, and that signers are only returned for
// signed transactions.
func (a *Asserter) ConstructionParseResponse(parse *response.Parse, signed bool) error {

	if !a.initialized() {
		return failure.New(ErrAsserterNotInitialized)
	}

	if parse == nil {
		return failure.New(ErrConstructionParseResponseIsNil)
	}

	if len(parse.Operations) == 0 {
		return failure.New(ErrConstructionParseResponseOperationsEmpty)
	}

	err := a.Operations(parse.Operations, true)
	if err != nil {
		return fmt.Errorf("invalid parsed operations: %w", err)
	}

	if signed && len(parse.SignerIDs) == 0 {
		return failure.New(ErrConstructionParseResponseSignersEmptyOnSignedTx)
	}

	if !signed && len(parse.SignerIDs) > 0 {
		return failure.New(ErrConstructionParseResponseSignersNonEmptyOnUnsignedTx)
	}

	if !signed {
		return nil
	}

	err = AccountArray("signers", parse.SignerIDs)
	if err != nil {
		return fmt.Errorf("invalid signers: %w", err)
	}

	return nil
}

// ConstructionPayloadsResponse ensures an unsigned transaction and valid
// signing payloads were returned.
func ConstructionPayloadsResponse(payloads *response.Payloads) error {
	if payloads == nil {
		return failure.New(ErrConstructionPayloadsResponseIsNil)
	}
	if payloads.UnsignedTransaction == "" {
		return failure.New(ErrUnsignedTxEmpty)
	}
	if len(payloads.Payloads) == 0 {
		return failure.New(ErrNoPayloadsProvided)
	}
	for i, payload := range payloads.Payloads {
		err := SigningPayload(payload)
		if err != nil {
			return fmt.Errorf("invalid signing payload (index: %d): %w", i, err)
		}
	}
	return nil
}

// PublicKey ensures a public key has non-zero bytes and a supported curve.
func PublicKey(key *object.PublicKey) error {
	if key == nil {
		return failure.New(ErrPublicKeyIsNil)
	}
	if key.HexBytes == "" {
		return failure.New(ErrPublicKeyBytesEmpty)
	}
	if hexZero(key.HexBytes) {
		return failure.New(ErrPublicKeyBytesZero)
	}
	return CurveType(key.CurveType)
}

// CurveType ensures the curve type is one of the supported curves.
func CurveType(curve object.CurveType) error {
	switch curve {
	case object.Secp256k1,
		object.Secp256k1Bip340,
		object.Secp256r1,
		object.Edwards25519,
		object.Tweedle,
		object.Pallas,
		object.Bls12381Signature:
		return nil
	default:
		return failure.New(ErrCurveTypeNotSupported, failure.WithString("curve_type", string(curve)))
	}
}

// SigningPayload ensures a signing payload has non-zero bytes, a valid
// account, if present, and a supported signature type, if present.
func SigningPayload(payload *object.SigningPayload) error {
	if payload == nil {
		return failure.New(ErrSigningPayloadIsNil)
	}
	if payload.HexBytes == "" {
		return failure.New(ErrSigningPayloadBytesEmpty)
	}
	if hexZero(payload.HexBytes) {
		return failure.New(ErrSigningPayloadBytesZero)
	}
	if payload.AccountID != nil {
		err := AccountIdentifier(payload.AccountID)
		if err != nil {
			return fmt.Errorf("invalid signing payload account: %w", err)
		}
	}
	if payload.SignatureType == "" {
		return nil
	}
	return SignatureType(payload.SignatureType)
}

// Signatures ensures there is at least one signature, and that each signature
// is valid and has the signature type requested by its payload.
func Signatures(signatures []*object.Signature) error {

	if len(signatures) == 0 {
		return failure.New(ErrSignaturesEmpty)
	}

	for i, signature := range signatures {
		if signature == nil {
			return failure.New(ErrSignatureIsNil, failure.WithInt("index", i))
		}

		err := SigningPayload(signature.SigningPayload)
		if err != nil {
			return fmt.Errorf("invalid signing payload (index: %d): %w", i, err)
		}

		err = PublicKey(signature.PublicKey)
		if err != nil {
			return fmt.Errorf("invalid public key (index: %d): %w", i, err)
		}

		err = SignatureType(signature.SignatureType)
		if err != nil {
			return fmt.Errorf("invalid signature type (index: %d): %w", i, err)
		}

		requested := signature.SigningPayload.SignatureType
		if requested != "" && requested != signature.SignatureType {
			return failure.New(ErrSignaturesReturnedSigMismatch,
				failure.WithInt("index", i),
				failure.WithString("requested", string(requested)),
				failure.WithString("returned", string(signature.SignatureType)),
			)
		}

		if signature.HexBytes == "" {
			return failure.New(ErrSignatureBytesEmpty, failure.WithInt("index", i))
		}

		if hexZero(signature.HexBytes) {
			return failure.New(ErrSignatureBytesZero, failure.WithInt("index", i))
		}
	}

	return nil
}

// SignatureType ensures the signature type is one of the supported types.
func SignatureType(signature object.SignatureType) error {
	switch signature {
	case object.Ecdsa,
		object.EcdsaRecovery,
		object.Ed25519,
		object.Schnorr1,
		object.SchnorrPoseidon,
		object.SchnorrBip340,
		object.BlsSignature:
		return nil
	default:
		return failure.New(ErrSignatureTypeNotSupported, failure.WithString("signature_type", string(signature)))
	}
}
