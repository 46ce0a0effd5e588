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
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/parser"
	"github.com/optakt/rosetta-asserter/testing/mocks"
)

func TestMatchGroups(t *testing.T) {
	group := func(address string, net int64) *parser.OperationGroup {
		return &parser.OperationGroup{
			Account:    identifier.Account{Address: address, Metadata: map[string]interface{}{"kind": "user"}},
			Currency:   mocks.GenericCurrency,
			Type:       mocks.GenericOperationTypes[0],
			Operations: []int64{0},
			NonZero:    1,
			NetBalance: big.NewInt(net),
		}
	}

	sender := &parser.MatchDescription{Amount: parser.AmountPredicate{Sign: parser.NegativeAmountSign, Currency: &mocks.GenericCurrency}}
	receiver := &parser.MatchDescription{Amount: parser.AmountPredicate{Sign: parser.PositiveAmountSign}}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		groups := []*parser.OperationGroup{group("A", -10), group("B", 10)}

		matched, err := parser.MatchGroups(groups, []*parser.MatchDescription{sender, receiver})

		require.NoError(t, err)
		require.Len(t, matched, 2)
		assert.Equal(t, []*parser.OperationGroup{groups[0]}, matched[0])
		assert.Equal(t, []*parser.OperationGroup{groups[1]}, matched[1])
	})

	t.Run("handles count mismatch without repeats", func(t *testing.T) {
		t.Parallel()

		groups := []*parser.OperationGroup{group("A", -10)}

		_, err := parser.MatchGroups(groups, []*parser.MatchDescription{sender, receiver})

		assert.ErrorIs(t, err, parser.ErrMatchIndexValidIndexOutOfRange)
	})

	t.Run("handles missing descriptions", func(t *testing.T) {
		t.Parallel()

		_, err := parser.MatchGroups([]*parser.OperationGroup{group("A", -10)}, nil)

		assert.ErrorIs(t, err, parser.ErrMatchOperationsDescriptionsMissing)
	})

	t.Run("handles sign mismatch", func(t *testing.T) {
		t.Parallel()

		groups := []*parser.OperationGroup{group("A", 10), group("B", 10)}

		_, err := parser.MatchGroups(groups, []*parser.MatchDescription{sender, receiver})

		assert.ErrorIs(t, err, parser.ErrExpectedOperationAmountMismatch)
	})

	t.Run("zero sign requires exact zero", func(t *testing.T) {
		t.Parallel()

		zero := &parser.MatchDescription{Amount: parser.AmountPredicate{Sign: parser.ZeroAmountSign}}

		_, err := parser.MatchGroups([]*parser.OperationGroup{group("A", 0)}, []*parser.MatchDescription{zero})
		assert.NoError(t, err)

		_, err = parser.MatchGroups([]*parser.OperationGroup{group("A", 1)}, []*parser.MatchDescription{zero})
		assert.ErrorIs(t, err, parser.ErrExpectedOperationAmountMismatch)
	})

	t.Run("handles currency mismatch", func(t *testing.T) {
		t.Parallel()

		other := group("A", -10)
		other.Currency = mocks.GenericOtherCurrency
		groups := []*parser.OperationGroup{other, group("B", 10)}

		_, err := parser.MatchGroups(groups, []*parser.MatchDescription{sender, receiver})

		assert.ErrorIs(t, err, parser.ErrExpectedOperationCurrencyMismatch)
	})

	t.Run("handles type mismatch", func(t *testing.T) {
		t.Parallel()

		fee := &parser.MatchDescription{Type: mocks.GenericOperationTypes[1]}

		_, err := parser.MatchGroups([]*parser.OperationGroup{group("A", -1)}, []*parser.MatchDescription{fee})

		assert.ErrorIs(t, err, parser.ErrExpectedOperationTypeMismatch)
	})

	t.Run("metadata predicates", func(t *testing.T) {
		t.Parallel()

		present := &parser.MatchDescription{Metadata: []parser.MetadataPredicate{{Key: "kind"}}}
		equal := &parser.MatchDescription{Metadata: []parser.MetadataPredicate{{Key: "kind", Value: "user"}}}
		different := &parser.MatchDescription{Metadata: []parser.MetadataPredicate{{Key: "kind", Value: "contract"}}}
		missing := &parser.MatchDescription{Metadata: []parser.MetadataPredicate{{Key: "owner"}}}
		groups := []*parser.OperationGroup{group("A", 0)}

		_, err := parser.MatchGroups(groups, []*parser.MatchDescription{present})
		assert.NoError(t, err)
		_, err = parser.MatchGroups(groups, []*parser.MatchDescription{equal})
		assert.NoError(t, err)
		_, err = parser.MatchGroups(groups, []*parser.MatchDescription{different})
		assert.ErrorIs(t, err, parser.ErrExpectedOperationMetadataMismatch)
		_, err = parser.MatchGroups(groups, []*parser.MatchDescription{missing})
		assert.ErrorIs(t, err, parser.ErrExpectedOperationMetadataMismatch)
	})

	t.Run("same account constraint", func(t *testing.T) {
		t.Parallel()

		refund := &parser.MatchDescription{Account: parser.SameAsGroup(0), Amount: parser.AmountPredicate{Sign: parser.PositiveAmountSign}}
		descriptions := []*parser.MatchDescription{sender, receiver, refund}

		_, err := parser.MatchGroups([]*parser.OperationGroup{group("A", -10), group("B", 8), group("A", 2)}, descriptions)
		assert.NoError(t, err)

		_, err = parser.MatchGroups([]*parser.OperationGroup{group("A", -10), group("B", 8), group("C", 2)}, descriptions)
		assert.ErrorIs(t, err, parser.ErrExpectedOperationAccountMismatch)
	})

	t.Run("same account constraint without group available", func(t *testing.T) {
		t.Parallel()

		repeated := &parser.MatchDescription{AllowRepeats: true, Amount: parser.AmountPredicate{Sign: parser.PositiveAmountSign}}
		refund := &parser.MatchDescription{Account: parser.SameAsGroup(0), Amount: parser.AmountPredicate{Sign: parser.PositiveAmountSign}}

		_, err := parser.MatchGroups([]*parser.OperationGroup{group("A", -10)}, []*parser.MatchDescription{sender, repeated, refund})

		assert.ErrorIs(t, err, parser.ErrAccountMatchAccountMissing)
	})

	t.Run("exact account constraint", func(t *testing.T) {
		t.Parallel()

		account := identifier.Account{Address: "A", Metadata: map[string]interface{}{"kind": "user"}}
		exact := &parser.MatchDescription{Account: parser.AccountConstraint{Rule: parser.ExactAccount, Account: &account}}

		_, err := parser.MatchGroups([]*parser.OperationGroup{group("A", 0)}, []*parser.MatchDescription{exact})
		assert.NoError(t, err)

		_, err = parser.MatchGroups([]*parser.OperationGroup{group("B", 0)}, []*parser.MatchDescription{exact})
		assert.ErrorIs(t, err, parser.ErrExpectedOperationAccountMismatch)
	})

	t.Run("repeats match zero or more groups", func(t *testing.T) {
		t.Parallel()

		receivers := &parser.MatchDescription{AllowRepeats: true, Amount: parser.AmountPredicate{Sign: parser.PositiveAmountSign}}
		descriptions := []*parser.MatchDescription{sender, receivers}

		matched, err := parser.MatchGroups([]*parser.OperationGroup{group("A", -10), group("B", 5), group("C", 5)}, descriptions)
		require.NoError(t, err)
		assert.Len(t, matched[1], 2)

		matched, err = parser.MatchGroups([]*parser.OperationGroup{group("A", -10)}, descriptions)
		require.NoError(t, err)
		assert.Empty(t, matched[1])
	})

	t.Run("handles leftover groups", func(t *testing.T) {
		t.Parallel()

		receivers := &parser.MatchDescription{AllowRepeats: true, Amount: parser.AmountPredicate{Sign: parser.PositiveAmountSign}}

		_, err := parser.MatchGroups([]*parser.OperationGroup{group("A", -10), group("B", 5), group("C", -5)}, []*parser.MatchDescription{sender, receivers})

		assert.ErrorIs(t, err, parser.ErrMatchOperationsMatchNotFound)
	})

	t.Run("handles unmatched description with repeats elsewhere", func(t *testing.T) {
		t.Parallel()

		receivers := &parser.MatchDescription{AllowRepeats: true, Amount: parser.AmountPredicate{Sign: parser.PositiveAmountSign}}

		_, err := parser.MatchGroups([]*parser.OperationGroup{group("B", 5)}, []*parser.MatchDescription{receivers, sender})

		assert.ErrorIs(t, err, parser.ErrMatchOperationsDescriptionNotMatched)
	})

	t.Run("handles nil description", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			_, err := parser.MatchGroups(nil, []*parser.MatchDescription{nil})
			assert.ErrorIs(t, err, parser.ErrMatchDescriptionIsNil)
		})
	})

	t.Run("handles nil group", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			_, err := parser.MatchGroups([]*parser.OperationGroup{nil}, []*parser.MatchDescription{sender})
			assert.ErrorIs(t, err, parser.ErrMatchGroupIsNil)
		})
	})
}
