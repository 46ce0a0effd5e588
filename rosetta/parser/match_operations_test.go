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

package parser_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/parser"
	"github.com/optakt/rosetta-asserter/testing/mocks"
)

func TestMatchOperations(t *testing.T) {
	transfer := func() *parser.Descriptions {
		return &parser.Descriptions{
			OperationDescriptions: []*parser.OperationDescription{
				{
					Account: &parser.AccountDescription{Exists: true},
					Amount:  &parser.AmountDescription{Exists: true, Sign: parser.NegativeAmountSign},
				},
				{
					Account: &parser.AccountDescription{Exists: true},
					Amount:  &parser.AmountDescription{Exists: true, Sign: parser.PositiveAmountSign},
				},
			},
			OppositeAmounts: [][]int{{0, 1}},
			ErrUnmatched:    true,
		}
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		ops := mocks.GenericOperations(2)

		matches, err := parser.MatchOperations(transfer(), []*object.Operation{ops[1], ops[0]})

		require.NoError(t, err)
		require.Len(t, matches, 2)
		op, amount := matches[0].First()
		assert.Equal(t, ops[0], op)
		assert.Equal(t, "-10", amount.String())
		op, amount = matches[1].First()
		assert.Equal(t, ops[1], op)
		assert.Equal(t, "10", amount.String())
	})

	t.Run("handles no operations", func(t *testing.T) {
		t.Parallel()

		_, err := parser.MatchOperations(transfer(), nil)

		assert.ErrorIs(t, err, parser.ErrMatchOperationsNoOperations)
	})

	t.Run("handles no descriptions", func(t *testing.T) {
		t.Parallel()

		_, err := parser.MatchOperations(&parser.Descriptions{}, mocks.GenericOperations(2))

		assert.ErrorIs(t, err, parser.ErrMatchOperationsDescriptionsMissing)
	})

	t.Run("handles unmatched operation", func(t *testing.T) {
		t.Parallel()

		_, err := parser.MatchOperations(transfer(), mocks.GenericOperations(3))

		assert.ErrorIs(t, err, parser.ErrMatchOperationsMatchNotFound)
	})

	t.Run("handles unmatched description", func(t *testing.T) {
		t.Parallel()

		ops := mocks.GenericOperations(2)

		_, err := parser.MatchOperations(transfer(), ops[:1])

		assert.ErrorIs(t, err, parser.ErrMatchOperationsDescriptionNotMatched)
	})

	t.Run("optional description may be unmatched", func(t *testing.T) {
		t.Parallel()

		descriptions := transfer()
		descriptions.OppositeAmounts = nil
		descriptions.OperationDescriptions[1].Optional = true
		ops := mocks.GenericOperations(2)

		matches, err := parser.MatchOperations(descriptions, ops[:1])

		require.NoError(t, err)
		assert.Nil(t, matches[1])
		op, amount := matches[1].First()
		assert.Nil(t, op)
		assert.Nil(t, amount)
	})

	t.Run("handles amounts that are not opposite", func(t *testing.T) {
		t.Parallel()

		ops := mocks.GenericOperations(2)
		ops[1].Amount.Value = "9"

		_, err := parser.MatchOperations(transfer(), ops)

		assert.ErrorIs(t, err, parser.ErrOppositeAmountsAbsValMismatch)
	})

	t.Run("equal amounts", func(t *testing.T) {
		t.Parallel()

		descriptions := transfer()
		descriptions.OppositeAmounts = nil
		descriptions.EqualAmounts = [][]int{{0, 1}}

		_, err := parser.MatchOperations(descriptions, mocks.GenericOperations(2))

		assert.ErrorIs(t, err, parser.ErrEqualAmountsNotEqual)
	})

	t.Run("equal addresses", func(t *testing.T) {
		t.Parallel()

		descriptions := transfer()
		descriptions.EqualAddresses = [][]int{{0, 1}}
		ops := mocks.GenericOperations(2)

		_, err := parser.MatchOperations(descriptions, ops)
		assert.ErrorIs(t, err, parser.ErrEqualAddressesAddrMismatch)

		ops[1].AccountID = ops[0].AccountID
		_, err = parser.MatchOperations(descriptions, ops)
		assert.NoError(t, err)
	})

	t.Run("repeats", func(t *testing.T) {
		t.Parallel()

		descriptions := transfer()
		descriptions.OppositeAmounts = nil
		descriptions.OperationDescriptions[1].AllowRepeats = true
		ops := mocks.GenericOperations(4)

		matches, err := parser.MatchOperations(descriptions, []*object.Operation{ops[0], ops[1], ops[3]})

		require.NoError(t, err)
		assert.Len(t, matches[1].Operations, 2)
	})

	t.Run("type and coin action", func(t *testing.T) {
		t.Parallel()

		descriptions := &parser.Descriptions{
			OperationDescriptions: []*parser.OperationDescription{
				{Type: mocks.GenericOperationTypes[0], CoinAction: object.CoinSpent},
			},
			ErrUnmatched: true,
		}
		op := mocks.GenericOperation(0, "-10")

		_, err := parser.MatchOperations(descriptions, []*object.Operation{op})
		assert.ErrorIs(t, err, parser.ErrMatchOperationsMatchNotFound)

		op.CoinChange = &object.CoinChange{CoinID: &mocks.GenericCoinID, CoinAction: object.CoinSpent}
		_, err = parser.MatchOperations(descriptions, []*object.Operation{op})
		assert.NoError(t, err)
	})

	t.Run("handles nil description", func(t *testing.T) {
		t.Parallel()

		descriptions := &parser.Descriptions{OperationDescriptions: []*parser.OperationDescription{nil}}

		assert.NotPanics(t, func() {
			_, err := parser.MatchOperations(descriptions, mocks.GenericOperations(2))
			assert.ErrorIs(t, err, parser.ErrMatchDescriptionIsNil)
		})
	})
}

func TestAccountMatch(t *testing.T) {
	t.Run("sub account requirements", func(t *testing.T) {
		t.Parallel()

		account := mocks.GenericAccount(0)
		description := parser.AccountDescription{Exists: true, SubAccountExists: true, SubAccountAddress: "staking"}

		assert.ErrorIs(t, parser.AccountMatch(&description, &account), parser.ErrAccountMatchSubAccountMissing)

		account.SubAccount = &identifier.SubAccount{Address: "vesting"}
		assert.ErrorIs(t, parser.AccountMatch(&description, &account), parser.ErrAccountMatchUnexpectedSubAccountAddr)

		account.SubAccount.Address = "staking"
		assert.NoError(t, parser.AccountMatch(&description, &account))

		description.SubAccountExists = false
		assert.ErrorIs(t, parser.AccountMatch(&description, &account), parser.ErrAccountMatchSubAccountPopulated)
	})

	t.Run("missing account", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, parser.AccountMatch(&parser.AccountDescription{Exists: true}, nil), parser.ErrAccountMatchAccountMissing)
		assert.NoError(t, parser.AccountMatch(&parser.AccountDescription{}, nil))
	})
}

func TestMetadataMatch(t *testing.T) {
	metadata := map[string]interface{}{
		"memo":  "hello",
		"nonce": float64(4),
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		descriptions := []*parser.MetadataDescription{
			{Key: "memo", ValueKind: reflect.String},
			{Key: "nonce", ValueKind: reflect.Float64},
		}

		assert.NoError(t, parser.MetadataMatch(descriptions, metadata))
	})

	t.Run("handles missing key", func(t *testing.T) {
		t.Parallel()

		descriptions := []*parser.MetadataDescription{{Key: "gas", ValueKind: reflect.Float64}}

		assert.ErrorIs(t, parser.MetadataMatch(descriptions, metadata), parser.ErrMetadataMatchKeyNotFound)
	})

	t.Run("handles wrong kind", func(t *testing.T) {
		t.Parallel()

		descriptions := []*parser.MetadataDescription{{Key: "memo", ValueKind: reflect.Map}}

		assert.ErrorIs(t, parser.MetadataMatch(descriptions, metadata), parser.ErrMetadataMatchKeyValueMismatch)
	})
}
