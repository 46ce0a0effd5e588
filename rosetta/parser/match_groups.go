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

	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// AccountRule is the kind of constraint a match description puts on the
// account of a group.
type AccountRule int

// Supported account rules.
const (
	AnyAccount AccountRule = iota
	SameAccount
	ExactAccount
)

// AccountConstraint constrains the account of the group matched by a
// description. With the same account rule, the account has to be equal to the
// account of the first group matched by the description at index Group. With
// the exact account rule, it has to be equal to Account.
type AccountConstraint struct {
	Rule    AccountRule
	Group   int
	Account *identifier.Account
}

// SameAsGroup returns a constraint requiring the account of the group matched
// by the description at the given index.
func SameAsGroup(index int) AccountConstraint {
	return AccountConstraint{Rule: SameAccount, Group: index}
}

// AmountPredicate constrains the net balance of a group. A nil currency
// matches any currency.
type AmountPredicate struct {
	Sign     AmountSign
	Currency *identifier.Currency
}

// MetadataPredicate requires a key to be present in the metadata of the
// account of a group. If Value is not nil, the value for the key has to be
// equal to it.
type MetadataPredicate struct {
	Key   string
	Value interface{}
}

// MatchDescription describes an operation group. An empty type matches groups
// of any type. A description that allows repeats matches zero or more
// consecutive groups.
type MatchDescription struct {
	Type         string
	Account      AccountConstraint
	Amount       AmountPredicate
	Metadata     []MetadataPredicate
	AllowRepeats bool
}

// MatchGroups aligns the given groups with the given descriptions, in order.
// Each description without repeats matches exactly one group, while each
// description with repeats matches as many consecutive groups as it can. On
// success, the groups matched by each description are returned, in the order
// of the descriptions.
func MatchGroups(groups []*OperationGroup, descriptions []*MatchDescription) ([][]*OperationGroup, error) {

	if len(descriptions) == 0 {
		return nil, failure.New(ErrMatchOperationsDescriptionsMissing)
	}

	for i, group := range groups {
		if group == nil {
			return nil, failure.New(ErrMatchGroupIsNil, failure.WithInt("index", i))
		}
	}

	repeats := false
	for i, description := range descriptions {
		if description == nil {
			return nil, failure.New(ErrMatchDescriptionIsNil, failure.WithInt("index", i))
		}
		if description.AllowRepeats {
			repeats = true
		}
	}

	if !repeats && len(groups) != len(descriptions) {
		return nil, failure.New(ErrMatchIndexValidIndexOutOfRange,
			failure.WithInt("groups", len(groups)),
			failure.WithInt("descriptions", len(descriptions)),
		)
	}

	matched := make([][]*OperationGroup, len(descriptions))
	next := 0
	for i, description := range descriptions {

		if description.AllowRepeats {
			for next < len(groups) && groupMatch(description, groups[next], matched, i) == nil {
				matched[i] = append(matched[i], groups[next])
				next++
			}
			continue
		}

		if next >= len(groups) {
			if description.Account.Rule == SameAccount {
				return nil, failure.New(ErrAccountMatchAccountMissing,
					failure.WithInt("description", i),
					failure.WithInt("group", description.Account.Group),
				)
			}
			return nil, failure.New(ErrMatchOperationsDescriptionNotMatched, failure.WithInt("description", i))
		}

		err := groupMatch(description, groups[next], matched, i)
		if err != nil {
			return nil, fmt.Errorf("could not match group (description: %d, group: %d): %w", i, next, err)
		}

		matched[i] = append(matched[i], groups[next])
		next++
	}

	if next < len(groups) {
		return nil, failure.New(ErrMatchOperationsMatchNotFound, failure.WithInt("group", next))
	}

	return matched, nil
}

// groupMatch checks a single group against the description at the given
// index, using the groups matched by earlier descriptions for account
// constraints.
func groupMatch(description *MatchDescription, group *OperationGroup, matched [][]*OperationGroup, index int) error {

	err := accountConstraintMatch(description.Account, &group.Account, matched, index)
	if err != nil {
		return err
	}

	if description.Type != "" && description.Type != group.Type {
		return failure.New(ErrExpectedOperationTypeMismatch,
			failure.WithString("expected", description.Type),
			failure.WithString("type", group.Type),
		)
	}

	if !description.Amount.Sign.Match(group.NetBalance) {
		return failure.New(ErrExpectedOperationAmountMismatch,
			failure.WithString("expected", description.Amount.Sign.String()),
			failure.WithString("net_balance", group.NetBalance.String()),
		)
	}

	if description.Amount.Currency != nil && !object.Equal(description.Amount.Currency, &group.Currency) {
		return failure.New(ErrExpectedOperationCurrencyMismatch,
			failure.WithString("expected", description.Amount.Currency.Symbol),
			failure.WithString("currency", group.Currency.Symbol),
		)
	}

	for _, predicate := range description.Metadata {
		value, ok := group.Account.Metadata[predicate.Key]
		if !ok {
			return failure.New(ErrExpectedOperationMetadataMismatch, failure.WithString("key", predicate.Key))
		}
		if predicate.Value != nil && !object.Equal(predicate.Value, value) {
			return failure.New(ErrExpectedOperationMetadataMismatch,
				failure.WithString("key", predicate.Key),
				failure.WithValue("expected", predicate.Value),
				failure.WithValue("value", value),
			)
		}
	}

	return nil
}

func accountConstraintMatch(constraint AccountConstraint, account *identifier.Account, matched [][]*OperationGroup, index int) error {

	switch constraint.Rule {

	case AnyAccount:
		return nil

	case ExactAccount:
		if !object.Equal(constraint.Account, account) {
			return failure.New(ErrExpectedOperationAccountMismatch, failure.WithString("address", account.Address))
		}
		return nil

	case SameAccount:
		if constraint.Group < 0 || constraint.Group >= index {
			return failure.New(ErrMatchIndexValidIndexOutOfRange,
				failure.WithInt("description", index),
				failure.WithInt("group", constraint.Group),
			)
		}
		previous := matched[constraint.Group]
		if len(previous) == 0 {
			return failure.New(ErrAccountMatchAccountMissing,
				failure.WithInt("description", index),
				failure.WithInt("group", constraint.Group),
			)
		}
		if !object.Equal(&previous[0].Account, account) {
			return failure.New(ErrExpectedOperationAccountMismatch,
				failure.WithString("expected", previous[0].Account.Address),
				failure.WithString("address", account.Address),
			)
		}
		return nil

	default:
		return failure.New(ErrExpectedOperationAccountMismatch, failure.WithInt("rule", int(constraint.Rule)))
	}
}
