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
	"github.com/optakt/rosetta-asserter/rosetta/response"
)

// ContainsCurrency returns whether the given currency is part of the given
// currencies, comparing all of their fields.
func ContainsCurrency(currencies []*identifier.Currency, currency *identifier.Currency) bool {
	key := object.Key(currency)
	for _, c := range currencies {
		if object.Key(c) == key {
			return true
		}
	}
	return false
}

// ContainsDuplicateCurrency returns the first currency that is present more
// than once in the given currencies, or nil if there is none.
func ContainsDuplicateCurrency(currencies []*identifier.Currency) *identifier.Currency {
	seen := make(map[string]struct{}, len(currencies))
	for _, currency := range currencies {
		key := object.Key(currency)
		_, ok := seen[key]
		if ok {
			return currency
		}
		seen[key] = struct{}{}
	}
	return nil
}

// AssertUniqueAmounts ensures that all amounts are valid and that no currency
// has more than one amount.
func AssertUniqueAmounts(amounts []*object.Amount) error {
	seen := make(map[string]struct{}, len(amounts))
	for i, amount := range amounts {
		err := Amount(amount)
		if err != nil {
			return fmt.Errorf("invalid amount (index: %d): %w", i, err)
		}
		key := object.Key(amount.Currency)
		_, ok := seen[key]
		if ok {
			return failure.New(ErrCurrencyUsedMultipleTimes, failure.WithString("symbol", amount.Currency.Symbol))
		}
		seen[key] = struct{}{}
	}
	return nil
}

// AccountBalanceResponse validates the balances of an account balance
// response, and ensures that the returned block matches the requested one.
func AccountBalanceResponse(requested *identifier.PartialBlock, balance *response.Balance) error {

	if balance == nil {
		return failure.New(ErrAccountBalanceResponseIsNil)
	}

	err := BlockIdentifier(balance.BlockID)
	if err != nil {
		return fmt.Errorf("invalid block identifier: %w", err)
	}

	err = AssertUniqueAmounts(balance.Balances)
	if err != nil {
		return fmt.Errorf("invalid balances: %w", err)
	}

	if requested == nil {
		return nil
	}

	if requested.Hash != nil && *requested.Hash != balance.BlockID.Hash {
		return failure.New(ErrReturnedBlockHashMismatch,
			failure.WithString("requested", *requested.Hash),
			failure.WithString("returned", balance.BlockID.Hash),
		)
	}

	if requested.Index != nil && *requested.Index != balance.BlockID.Index {
		return failure.New(ErrReturnedBlockIndexMismatch,
			failure.WithInt64("requested", *requested.Index),
			failure.WithInt64("returned", balance.BlockID.Index),
		)
	}

	return nil
}

// AccountCoinsResponse validates the block and coins of an account coins
// response.
func AccountCoinsResponse(coins *response.Coins) error {

	if coins == nil {
		return failure.New(ErrAccountCoinsResponseIsNil)
	}

	err := BlockIdentifier(coins.BlockID)
	if err != nil {
		return fmt.Errorf("invalid block identifier: %w", err)
	}

	err = Coins(coins.Coins)
	if err != nil {
		return fmt.Errorf("invalid coins: %w", err)
	}

	return nil
}
