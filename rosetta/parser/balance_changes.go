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
	"context"
	"fmt"
	"math/big"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// BalanceChange is the sum of all changes to the balance of an account in a
// currency within a block.
type BalanceChange struct {
	Account    *identifier.Account  `json:"account_identifier,omitempty"`
	Currency   *identifier.Currency `json:"currency,omitempty"`
	Block      *identifier.Block    `json:"block_identifier,omitempty"`
	Difference string               `json:"difference"`
}

// skipOperation returns whether an operation should be left out of balance
// computations. Unsuccessful operations, operations without an amount and
// operations exempted by the exempt function are skipped.
func (p *Parser) skipOperation(operation *object.Operation) (bool, error) {

	successful, err := p.asserter.OperationSuccessful(operation)
	if err != nil {
		return false, fmt.Errorf("could not check operation success: %w", err)
	}
	if !successful {
		return true, nil
	}

	if operation.AccountID == nil || operation.Amount == nil {
		return true, nil
	}

	if p.exempt != nil && p.exempt(operation) {
		return true, nil
	}

	return false, nil
}

// BalanceChanges returns the balance changes caused by the given block, summed
// up per account and currency, in the order in which they first appear. When
// the block is being removed from the chain, the opposite of each change is
// returned.
func (p *Parser) BalanceChanges(ctx context.Context, block *object.Block, removed bool) ([]*BalanceChange, error) {

	if block == nil {
		return nil, nil
	}

	var changes []*BalanceChange
	sums := make(map[string]*big.Int)
	lookup := make(map[string]*BalanceChange)
	for _, transaction := range block.Transactions {

		err := ctx.Err()
		if err != nil {
			return nil, err
		}

		if transaction == nil {
			continue
		}

		for i, operation := range transaction.Operations {

			skip, err := p.skipOperation(operation)
			if err != nil {
				return nil, fmt.Errorf("could not check operation (transaction: %s, index: %d): %w", transaction.ID.Hash, i, err)
			}
			if skip {
				continue
			}

			value, err := asserter.AmountValue(operation.Amount)
			if err != nil {
				return nil, fmt.Errorf("invalid amount (transaction: %s, index: %d): %w", transaction.ID.Hash, operation.ID.Index, err)
			}
			if removed {
				value.Neg(value)
			}

			key := object.Key(operation.AccountID) + "/" + object.Key(operation.Amount.Currency)
			sum, ok := sums[key]
			if ok {
				sum.Add(sum, value)
				continue
			}

			blockID := block.ID
			change := BalanceChange{
				Account:  operation.AccountID,
				Currency: operation.Amount.Currency,
				Block:    &blockID,
			}
			sums[key] = value
			lookup[key] = &change
			changes = append(changes, &change)
		}
	}

	for key, change := range lookup {
		change.Difference = sums[key].String()
	}

	return changes, nil
}

// Imbalances returns the groups of successful operations of a transaction
// whose net balance is not zero and not covered by any balance exemption.
func (p *Parser) Imbalances(transaction *object.Transaction) ([]*OperationGroup, error) {

	if transaction == nil {
		return nil, nil
	}

	var operations []*object.Operation
	for i, operation := range transaction.Operations {
		skip, err := p.skipOperation(operation)
		if err != nil {
			return nil, fmt.Errorf("could not check operation (index: %d): %w", i, err)
		}
		if skip {
			continue
		}
		operations = append(operations, operation)
	}

	groups, err := groupBalances(operations)
	if err != nil {
		return nil, fmt.Errorf("could not group operations: %w", err)
	}

	var imbalances []*OperationGroup
	for _, group := range groups {
		if group.NetBalance.Sign() == 0 {
			continue
		}
		account := group.Account
		currency := group.Currency
		if p.Exempt(&account, &currency, group.NetBalance.String()) != nil {
			continue
		}
		imbalances = append(imbalances, group)
	}

	return imbalances, nil
}
