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
	"math/big"
	"sort"

	"github.com/gammazero/deque"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// OperationGroup is the set of operations of a transaction that affect the
// balance of the same account in the same currency.
type OperationGroup struct {
	Account    identifier.Account
	Currency   identifier.Currency
	Type       string
	Operations []int64
	NonZero    int
	NetBalance *big.Int
}

// GroupBalances partitions the operations of a transaction by account and
// currency, summing up their amounts. Operations without an account or an
// amount are not part of any group. Groups are returned in the order in which
// their first operation appears. If all operations of a group share the same
// type, it is set as the type of the group.
func GroupBalances(transaction *object.Transaction) ([]*OperationGroup, error) {
	if transaction == nil {
		return nil, nil
	}
	return groupBalances(transaction.Operations)
}

func groupBalances(operations []*object.Operation) ([]*OperationGroup, error) {

	var groups []*OperationGroup
	lookup := make(map[string]*OperationGroup)
	for _, operation := range operations {

		if operation == nil || operation.AccountID == nil || operation.Amount == nil || operation.Amount.Currency == nil {
			continue
		}

		value, err := asserter.AmountValue(operation.Amount)
		if err != nil {
			return nil, fmt.Errorf("invalid amount (index: %d): %w", operation.ID.Index, err)
		}

		key := object.Key(operation.AccountID) + "/" + object.Key(operation.Amount.Currency)
		group, ok := lookup[key]
		if !ok {
			group = &OperationGroup{
				Account:    *operation.AccountID,
				Currency:   *operation.Amount.Currency,
				Type:       operation.Type,
				NetBalance: big.NewInt(0),
			}
			lookup[key] = group
			groups = append(groups, group)
		}

		if group.Type != operation.Type {
			group.Type = ""
		}
		group.Operations = append(group.Operations, operation.ID.Index)
		if value.Sign() != 0 {
			group.NonZero++
		}
		group.NetBalance.Add(group.NetBalance, value)
	}

	return groups, nil
}

// RelatedGroup is a set of operations that are connected through their related
// operations. If all operations share the same type, it is set as the type of
// the group.
type RelatedGroup struct {
	Type             string
	Operations       []*object.Operation
	Currencies       []*identifier.Currency
	NilAmountPresent bool
}

func (r *RelatedGroup) add(operation *object.Operation) {

	if r.Type != operation.Type {
		r.Type = ""
	}

	r.Operations = append(r.Operations, operation)

	if operation.Amount == nil {
		r.NilAmountPresent = true
		return
	}

	if !asserter.ContainsCurrency(r.Currencies, operation.Amount.Currency) {
		r.Currencies = append(r.Currencies, operation.Amount.Currency)
	}
}

// GroupOperations partitions the operations of a transaction into groups of
// operations that are related to each other, directly or transitively. Groups
// are sorted by the index of their first operation, and the operations within
// a group are sorted by index. Operations are expected to have been validated,
// so their indexes match their positions.
func GroupOperations(transaction *object.Transaction) []*RelatedGroup {

	if transaction == nil {
		return nil
	}

	operations := transaction.Operations
	edges := make(map[int64][]int64, len(operations))
	for _, operation := range operations {
		for _, related := range operation.RelatedIDs {
			edges[operation.ID.Index] = append(edges[operation.ID.Index], related.Index)
			edges[related.Index] = append(edges[related.Index], operation.ID.Index)
		}
	}

	byIndex := make(map[int64]*object.Operation, len(operations))
	for _, operation := range operations {
		byIndex[operation.ID.Index] = operation
	}

	visited := make(map[int64]bool, len(operations))
	var groups []*RelatedGroup
	for _, operation := range operations {

		start := operation.ID.Index
		if visited[start] {
			continue
		}
		visited[start] = true

		var members []*object.Operation
		queue := deque.New()
		queue.PushBack(start)
		for queue.Len() > 0 {
			index := queue.PopFront().(int64)
			member, ok := byIndex[index]
			if ok {
				members = append(members, member)
			}
			for _, next := range edges[index] {
				if visited[next] {
					continue
				}
				visited[next] = true
				queue.PushBack(next)
			}
		}

		sort.Slice(members, func(i, j int) bool {
			return members[i].ID.Index < members[j].ID.Index
		})

		group := RelatedGroup{Type: members[0].Type}
		for _, member := range members {
			group.add(member)
		}
		groups = append(groups, &group)
	}

	return groups
}
