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


package asserter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/testing/mocks"
)

func genericCoin(id string) *object.Coin {
	return &object.Coin{
		CoinID: &identifier.Coin{Identifier: id},
		Amount: mocks.GenericAmount("100"),
	}
}

func TestCoin(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, asserter.Coin(genericCoin("coin 0")))
	})

	t.Run("handles nil coin", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, asserter.Coin(nil), asserter.ErrCoinIsNil)
	})

	t.Run("handles missing identifier", func(t *testing.T) {
		t.Parallel()

		coin := genericCoin("coin 0")
		coin.CoinID = nil

		assert.ErrorIs(t, asserter.Coin(coin), asserter.ErrCoinIdentifierIsNil)
	})

	t.Run("handles empty identifier", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, asserter.Coin(genericCoin("")), asserter.ErrCoinIdentifierNotSet)
	})

	t.Run("handles invalid amount", func(t *testing.T) {
		t.Parallel()

		coin := genericCoin("coin 0")
		coin.Amount.Value = "1.5"

		assert.ErrorIs(t, asserter.Coin(coin), asserter.ErrAmountIsNotInt)
	})
}

func TestCoins(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, asserter.Coins([]*object.Coin{genericCoin("coin 0"), genericCoin("coin 1")}))
	})

	t.Run("empty coins are valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, asserter.Coins(nil))
	})

	t.Run("handles duplicate coin", func(t *testing.T) {
		t.Parallel()

		err := asserter.Coins([]*object.Coin{genericCoin("coin 0"), genericCoin("coin 0")})

		assert.ErrorIs(t, err, asserter.ErrCoinDuplicate)
	})

	t.Run("handles nil coin", func(t *testing.T) {
		t.Parallel()

		err := asserter.Coins([]*object.Coin{genericCoin("coin 0"), nil})

		assert.ErrorIs(t, err, asserter.ErrCoinIsNil)
	})
}
