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

package parser

import (
	"fmt"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// ExpectedOperation ensures an observed operation has the same account,
// amount and type as the intended one.
func ExpectedOperation(intent *object.Operation, observed *object.Operation) error {

	if intent == nil || observed == nil {
		return failure.New(asserter.ErrOperationIsNil)
	}

	if !object.Equal(intent.AccountID, observed.AccountID) {
		return failure.New(ErrExpectedOperationAccountMismatch,
			failure.WithValue("expected", intent.AccountID),
			failure.WithValue("account", observed.AccountID),
		)
	}

	if !object.Equal(intent.Amount, observed.Amount) {
		return failure.New(ErrExpectedOperationAmountMismatch,
			failure.WithValue("expected", intent.Amount),
			failure.WithValue("amount", observed.Amount),
		)
	}

	if intent.Type != observed.Type {
		return failure.New(ErrExpectedOperationTypeMismatch,
			failure.WithString("expected", intent.Type),
			failure.WithString("type", observed.Type),
		)
	}

	return nil
}

// ExpectedOperations ensures every intended operation has a matching observed
// operation. Optionally, observed operations that match no intent are
// rejected, and matching operations are required to be successful.
func (p *Parser) ExpectedOperations(intent []*object.Operation, observed []*object.Operation, errExtra bool, confirmSuccess bool) error {

	for i, in := range intent {
		if in == nil {
			return failure.New(asserter.ErrOperationIsNil, failure.WithString("list", "intent"), failure.WithInt("index", i))
		}
	}
	for i, obs := range observed {
		if obs == nil {
			return failure.New(asserter.ErrOperationIsNil, failure.WithString("list", "observed"), failure.WithInt("index", i))
		}
	}

	matches := make([]bool, len(intent))
	var failed []int64
	for _, obs := range observed {

		found := false
		for i, in := range intent {

			if matches[i] {
				continue
			}

			if ExpectedOperation(in, obs) != nil {
				continue
			}

			if confirmSuccess {
				successful, err := p.asserter.OperationSuccessful(obs)
				if err != nil {
					return fmt.Errorf("could not check operation success: %w", err)
				}
				if !successful {
					failed = append(failed, obs.ID.Index)
					continue
				}
			}

			matches[i] = true
			found = true
			break
		}

		if !found && errExtra {
			return failure.New(ErrExpectedOperationsExtraOperation, failure.WithInt64("index", obs.ID.Index))
		}
	}

	var missing []int
	for i, match := range matches {
		if !match {
			missing = append(missing, i)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	if len(failed) > 0 {
		return failure.New(ErrExpectedOperationsMissing,
			failure.WithValue("missing", missing),
			failure.WithValue("unsuccessful", failed),
		)
	}

	return failure.New(ErrExpectedOperationsMissing, failure.WithValue("missing", missing))
}

// ExpectedSigners ensures the observed signers are exactly the accounts of the
// intended signing payloads. Accounts signing several payloads only need to
// be observed once.
func ExpectedSigners(intent []*object.SigningPayload, observed []*identifier.Account) error {

	intended := make(map[string]struct{}, len(intent))
	for i, payload := range intent {
		if payload == nil {
			return failure.New(asserter.ErrSigningPayloadIsNil, failure.WithInt("index", i))
		}
		intended[object.Key(payload.AccountID)] = struct{}{}
	}

	seen := make(map[string]struct{}, len(observed))
	var unmatched []string
	for _, signer := range observed {
		key := object.Key(signer)
		_, ok := intended[key]
		if !ok {
			unmatched = append(unmatched, signerAddress(signer))
			continue
		}
		seen[key] = struct{}{}
	}

	for _, payload := range intent {
		_, ok := seen[object.Key(payload.AccountID)]
		if !ok {
			return failure.New(ErrExpectedSignerMissing, failure.WithString("address", signerAddress(payload.AccountID)))
		}
	}

	if len(unmatched) > 0 {
		return failure.New(ErrExpectedSignerUnexpectedSigner, failure.WithStrings("addresses", unmatched...))
	}

	return nil
}

func signerAddress(account *identifier.Account) string {
	if account == nil {
		return ""
	}
	return account.Address
}
