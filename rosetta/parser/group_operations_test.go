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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/parser"
	"github.com/optakt/rosetta-asserter/testing/mocks"
)

func TestGroupBalances(t *testing.T) {
	accountA := identifier.Account{Address: "A"}
	accountB := identifier.Account{Address: "B"}

	operation := func(index int64, account *identifier.Account, value string) *object.Operation {
		op := mocks.GenericOperation(int(index), value)
		op.AccountID = account
		return op
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		tx := object.Transaction{
			ID: mocks.GenericTransactionID,
			Operations: []*object.Operation{
				operation(0, &accountA, "50"),
				operation(1, &accountA, "-20"),
				operation(2, &accountB, "20"),
			},
		}

		groups, err := parser.GroupBalances(&tx)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, accountA, groups[0].Account)
		assert.Equal(t, "30", groups[0].NetBalance.String())
		assert.Equal(t, []int64{0, 1}, groups[0].Operations)
		assert.Equal(t, 2, groups[0].NonZero)
		assert.Equal(t, accountB, groups[1].Account)
		assert.Equal(t, "20", groups[1].NetBalance.String())
		assert.Equal(t, []int64{2}, groups[1].Operations)
	})

	t.Run("groups by currency", func(t *testing.T) {
		t.Parallel()

		other := operation(1, &accountA, "10")
		other.Amount.Currency = &mocks.GenericOtherCurrency
		tx := object.Transaction{
			Operations: []*object.Operation{
				operation(0, &accountA, "10"),
				other,
			},
		}

		groups, err := parser.GroupBalances(&tx)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, mocks.GenericCurrency, groups[0].Currency)
		assert.Equal(t, mocks.GenericOtherCurrency, groups[1].Currency)
	})

	t.Run("groups by sub account", func(t *testing.T) {
		t.Parallel()

		sub := accountA
		sub.SubAccount = &identifier.SubAccount{Address: "staking"}
		tx := object.Transaction{
			Operations: []*object.Operation{
				operation(0, &accountA, "10"),
				operation(1, &sub, "10"),
			},
		}

		groups, err := parser.GroupBalances(&tx)

		require.NoError(t, err)
		assert.Len(t, groups, 2)
	})

	t.Run("skips operations without account or amount", func(t *testing.T) {
		t.Parallel()

		noAccount := operation(1, nil, "10")
		noAmount := operation(2, &accountA, "10")
		noAmount.Amount = nil
		tx := object.Transaction{
			Operations: []*object.Operation{
				operation(0, &accountA, "0"),
				noAccount,
				noAmount,
			},
		}

		groups, err := parser.GroupBalances(&tx)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, []int64{0}, groups[0].Operations)
		assert.Equal(t, 0, groups[0].NonZero)
	})

	t.Run("sums values beyond 64 bits", func(t *testing.T) {
		t.Parallel()

		tx := object.Transaction{
			Operations: []*object.Operation{
				operation(0, &accountA, "18446744073709551615"),
				operation(1, &accountA, "18446744073709551615"),
			},
		}

		groups, err := parser.GroupBalances(&tx)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "36893488147419103230", groups[0].NetBalance.String())
	})

	t.Run("clears type of mixed groups", func(t *testing.T) {
		t.Parallel()

		fee := operation(1, &accountA, "-1")
		fee.Type = mocks.GenericOperationTypes[1]
		tx := object.Transaction{
			Operations: []*object.Operation{
				operation(0, &accountA, "-10"),
				fee,
				operation(2, &accountB, "10"),
			},
		}

		groups, err := parser.GroupBalances(&tx)

		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Empty(t, groups[0].Type)
		assert.Equal(t, mocks.GenericOperationTypes[0], groups[1].Type)
	})

	t.Run("handles invalid amount", func(t *testing.T) {
		t.Parallel()

		tx := object.Transaction{
			Operations: []*object.Operation{
				operation(0, &accountA, "1.5"),
			},
		}

		_, err := parser.GroupBalances(&tx)

		assert.Error(t, err)
	})
}

func TestGroupOperations(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		ops := mocks.GenericOperations(5)
		ops[1].RelatedIDs = []identifier.Operation{{Index: 0}}
		ops[4].RelatedIDs = []identifier.Operation{{Index: 2}}
		ops[3].Amount = nil
		tx := object.Transaction{Operations: ops}

		groups := parser.GroupOperations(&tx)

		require.Len(t, groups, 3)
		assert.Equal(t, []*object.Operation{ops[0], ops[1]}, groups[0].Operations)
		assert.Equal(t, []*object.Operation{ops[2], ops[4]}, groups[1].Operations)
		assert.Equal(t, []*object.Operation{ops[3]}, groups[2].Operations)
		assert.Equal(t, mocks.GenericOperationTypes[0], groups[0].Type)
		assert.Len(t, groups[0].Currencies, 1)
		assert.False(t, groups[0].NilAmountPresent)
		assert.True(t, groups[2].NilAmountPresent)
	})

	t.Run("transitive relations", func(t *testing.T) {
		t.Parallel()

		ops := mocks.GenericOperations(4)
		ops[2].RelatedIDs = []identifier.Operation{{Index: 0}}
		ops[3].RelatedIDs = []identifier.Operation{{Index: 1}, {Index: 2}}
		ops[3].Type = mocks.GenericOperationTypes[1]
		tx := object.Transaction{Operations: ops}

		groups := parser.GroupOperations(&tx)

		require.Len(t, groups, 1)
		assert.Equal(t, ops, groups[0].Operations)
		assert.Empty(t, groups[0].Type)
	})

	t.Run("nil transaction", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, parser.GroupOperations(nil))
	})
}
