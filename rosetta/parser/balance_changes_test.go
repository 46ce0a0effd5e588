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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/parser"
	"github.com/optakt/rosetta-asserter/testing/mocks"
)

func TestParser_BalanceChanges(t *testing.T) {
	accountA := identifier.Account{Address: "A"}
	accountB := identifier.Account{Address: "B"}

	operation := func(index int, account *identifier.Account, value string) *object.Operation {
		op := mocks.GenericOperation(index, value)
		op.AccountID = account
		return op
	}

	block := func() *object.Block {
		failed := operation(2, &accountA, "-1000")
		failed.Status = &mocks.GenericStatusFailure
		noAmount := operation(3, &accountB, "0")
		noAmount.Amount = nil
		block := mocks.GenericBlock()
		block.Transactions = []*object.Transaction{
			{
				ID: identifier.Transaction{Hash: "tx 1"},
				Operations: []*object.Operation{
					operation(0, &accountA, "-10"),
					operation(1, &accountB, "10"),
					failed,
					noAmount,
				},
			},
			{
				ID: identifier.Transaction{Hash: "tx 2"},
				Operations: []*object.Operation{
					operation(0, &accountA, "-5"),
					operation(1, &accountB, "5"),
				},
			},
		}
		return block
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)

		changes, err := p.BalanceChanges(context.Background(), block(), false)

		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, &accountA, changes[0].Account)
		assert.Equal(t, "-15", changes[0].Difference)
		assert.Equal(t, &mocks.GenericBlockID, changes[0].Block)
		assert.Equal(t, &accountB, changes[1].Account)
		assert.Equal(t, "15", changes[1].Difference)
	})

	t.Run("removed block negates changes", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)

		changes, err := p.BalanceChanges(context.Background(), block(), true)

		require.NoError(t, err)
		require.Len(t, changes, 2)
		assert.Equal(t, "15", changes[0].Difference)
		assert.Equal(t, "-15", changes[1].Difference)
	})

	t.Run("exempt operations are skipped", func(t *testing.T) {
		t.Parallel()

		exempt := func(op *object.Operation) bool {
			return op.AccountID.Address == accountB.Address
		}
		p := parser.New(mocks.BaselineAsserter(t), exempt, nil)

		changes, err := p.BalanceChanges(context.Background(), block(), false)

		require.NoError(t, err)
		require.Len(t, changes, 1)
		assert.Equal(t, &accountA, changes[0].Account)
	})

	t.Run("handles missing status", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)
		b := block()
		b.Transactions[0].Operations[0].Status = nil

		_, err := p.BalanceChanges(context.Background(), b, false)

		assert.ErrorIs(t, err, asserter.ErrOperationStatusMissing)
	})

	t.Run("handles canceled context", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.BalanceChanges(ctx, block(), false)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestParser_Imbalances(t *testing.T) {
	t.Run("balanced transaction", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)
		tx := mocks.GenericTransaction(2)
		tx.Operations[1].AccountID = tx.Operations[0].AccountID

		imbalances, err := p.Imbalances(tx)

		require.NoError(t, err)
		assert.Empty(t, imbalances)
	})

	t.Run("unbalanced groups", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)

		imbalances, err := p.Imbalances(mocks.GenericTransaction(2))

		require.NoError(t, err)
		require.Len(t, imbalances, 2)
		assert.Equal(t, "-10", imbalances[0].NetBalance.String())
		assert.Equal(t, "10", imbalances[1].NetBalance.String())
	})

	t.Run("exempt groups are not imbalances", func(t *testing.T) {
		t.Parallel()

		exemption := object.BalanceExemption{Currency: &mocks.GenericCurrency, ExemptionType: object.ExemptionGreaterOrEqual}
		p := parser.New(mocks.BaselineAsserter(t), nil, []*object.BalanceExemption{&exemption})

		imbalances, err := p.Imbalances(mocks.GenericTransaction(2))

		require.NoError(t, err)
		require.Len(t, imbalances, 1)
		assert.Equal(t, "-10", imbalances[0].NetBalance.String())
	})
}
