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
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// Coin ensures a coin has a valid identifier and amount.
func Coin(coin *object.Coin) error {
	if coin == nil {
		return failure.New(ErrCoinIsNil)
	}
	err := CoinIdentifier(coin.CoinID)
	if err != nil {
		return fmt.Errorf("invalid coin identifier: %w", err)
	}
	err = Amount(coin.Amount)
	if err != nil {
		return fmt.Errorf("invalid coin amount: %w", err)
	}
	return nil
}

// Coins ensures all coins are valid and that no coin identifier is used
// twice.
func Coins(coins []*object.Coin) error {
	seen := make(map[string]struct{}, len(coins))
	for i, coin := range coins {
		err := Coin(coin)
		if err != nil {
			return fmt.Errorf("invalid coin (index: %d): %w", i, err)
		}
		_, ok := seen[coin.CoinID.Identifier]
		if ok {
			return failure.New(ErrCoinDuplicate, failure.WithString("coin", coin.CoinID.Identifier))
		}
		seen[coin.CoinID.Identifier] = struct{}{}
	}
	return nil
}

// CoinIdentifier ensures a coin identifier is not empty.
func CoinIdentifier(coin *identifier.Coin) error {
	if coin == nil {
		return failure.New(ErrCoinIdentifierIsNil)
	}
	if coin.Identifier == "" {
		return failure.New(ErrCoinIdentifierNotSet)
	}
	return nil
}

// CoinChange ensures a coin change has a valid coin identifier and action.
func CoinChange(change *object.CoinChange) error {
	if change == nil {
		return failure.New(ErrCoinChangeIsNil)
	}
	err := CoinIdentifier(change.CoinID)
	if err != nil {
		return err
	}
	return CoinAction(change.CoinAction)
}

// CoinAction ensures a coin action is either a creation or a spending.
func CoinAction(action object.CoinAction) error {
	switch action {
	case object.CoinCreated, object.CoinSpent:
		return nil
	default:
		return failure.New(ErrCoinActionInvalid, failure.WithString("action", string(action)))
	}
}
