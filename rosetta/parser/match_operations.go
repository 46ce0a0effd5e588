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
	"reflect"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// AmountSign is the sign an amount is expected to have.
type AmountSign int

// Supported amount signs.
const (
	AnyAmountSign AmountSign = iota
	NegativeAmountSign
	PositiveAmountSign
	PositiveOrZeroAmountSign
	NegativeOrZeroAmountSign
	ZeroAmountSign
)

// oppositesLength is the only number of matches that can be compared as
// opposites.
const oppositesLength = 2

// Match returns whether the given value has the sign.
func (s AmountSign) Match(value *big.Int) bool {
	if s == AnyAmountSign {
		return true
	}
	if value == nil {
		return false
	}
	switch s {
	case NegativeAmountSign:
		return value.Sign() < 0
	case PositiveAmountSign:
		return value.Sign() > 0
	case PositiveOrZeroAmountSign:
		return value.Sign() >= 0
	case NegativeOrZeroAmountSign:
		return value.Sign() <= 0
	case ZeroAmountSign:
		return value.Sign() == 0
	default:
		return false
	}
}

func (s AmountSign) String() string {
	switch s {
	case AnyAmountSign:
		return "any"
	case NegativeAmountSign:
		return "negative"
	case PositiveAmountSign:
		return "positive"
	case PositiveOrZeroAmountSign:
		return "positive or zero"
	case NegativeOrZeroAmountSign:
		return "negative or zero"
	case ZeroAmountSign:
		return "zero"
	default:
		return "invalid"
	}
}

// MetadataDescription requires a metadata key to be present, with a value of
// the given kind.
type MetadataDescription struct {
	Key       string
	ValueKind reflect.Kind
}

// AccountDescription describes the account of an operation.
type AccountDescription struct {
	Exists                 bool
	SubAccountExists       bool
	SubAccountAddress      string
	SubAccountMetadataKeys []*MetadataDescription
}

// AmountDescription describes the amount of an operation.
type AmountDescription struct {
	Exists   bool
	Sign     AmountSign
	Currency *identifier.Currency
}

// OperationDescription describes an operation. An empty type matches any type,
// and an empty coin action means that the coin change is not checked.
type OperationDescription struct {
	Account      *AccountDescription
	Amount       *AmountDescription
	Metadata     []*MetadataDescription
	Type         string
	AllowRepeats bool
	Optional     bool
	CoinAction   object.CoinAction
}

// Descriptions contains the operation descriptions to match, along with
// requirements that apply across the matched operations. The requirements
// refer to operation descriptions by their index.
type Descriptions struct {
	OperationDescriptions []*OperationDescription
	EqualAmounts          [][]int
	OppositeAmounts       [][]int
	OppositeOrZeroAmounts [][]int
	EqualAddresses        [][]int
	ErrUnmatched          bool
}

// Match contains the operations matched to a description, along with their
// amounts. Amounts has the same length as Operations, with nil entries for
// operations without an amount.
type Match struct {
	Operations []*object.Operation
	Amounts    []*big.Int
}

// First returns the first matched operation and its amount, which is useful
// for descriptions that do not allow repeats.
func (m *Match) First() (*object.Operation, *big.Int) {
	if m == nil || len(m.Operations) == 0 {
		return nil, nil
	}
	return m.Operations[0], m.Amounts[0]
}

// MetadataMatch ensures the given metadata has all of the described keys, with
// values of the described kinds.
func MetadataMatch(descriptions []*MetadataDescription, metadata map[string]interface{}) error {
	for _, description := range descriptions {
		value, ok := metadata[description.Key]
		if !ok {
			return failure.New(ErrMetadataMatchKeyNotFound, failure.WithString("key", description.Key))
		}
		kind := reflect.Invalid
		if value != nil {
			kind = reflect.TypeOf(value).Kind()
		}
		if kind != description.ValueKind {
			return failure.New(ErrMetadataMatchKeyValueMismatch,
				failure.WithString("key", description.Key),
				failure.WithString("expected", description.ValueKind.String()),
				failure.WithString("kind", kind.String()),
			)
		}
	}
	return nil
}

// AccountMatch ensures the given account matches the description.
func AccountMatch(description *AccountDescription, account *identifier.Account) error {

	if description == nil {
		return nil
	}

	if account == nil {
		if description.Exists {
			return failure.New(ErrAccountMatchAccountMissing)
		}
		return nil
	}

	if account.SubAccount == nil {
		if description.SubAccountExists {
			return failure.New(ErrAccountMatchSubAccountMissing)
		}
		return nil
	}

	if !description.SubAccountExists {
		return failure.New(ErrAccountMatchSubAccountPopulated)
	}

	if description.SubAccountAddress != "" && account.SubAccount.Address != description.SubAccountAddress {
		return failure.New(ErrAccountMatchUnexpectedSubAccountAddr,
			failure.WithString("expected", description.SubAccountAddress),
			failure.WithString("address", account.SubAccount.Address),
		)
	}

	err := MetadataMatch(description.SubAccountMetadataKeys, account.SubAccount.Metadata)
	if err != nil {
		return fmt.Errorf("account metadata keys mismatch: %w", err)
	}

	return nil
}

// AmountMatch ensures the given amount matches the description.
func AmountMatch(description *AmountDescription, amount *object.Amount) error {

	if description == nil {
		return nil
	}

	if amount == nil {
		if description.Exists {
			return failure.New(ErrAmountMatchAmountMissing)
		}
		return nil
	}

	if !description.Exists {
		return failure.New(ErrAmountMatchAmountPopulated)
	}

	value, err := asserter.AmountValue(amount)
	if err != nil {
		return err
	}

	if !description.Sign.Match(value) {
		return failure.New(ErrAmountMatchUnexpectedSign,
			failure.WithString("expected", description.Sign.String()),
			failure.WithString("value", amount.Value),
		)
	}

	if description.Currency == nil {
		return nil
	}

	if !object.Equal(description.Currency, amount.Currency) {
		return failure.New(ErrAmountMatchUnexpectedCurrency,
			failure.WithValue("expected", description.Currency),
			failure.WithValue("currency", amount.Currency),
		)
	}

	return nil
}

// CoinActionMatch ensures the coin change has the required action.
func CoinActionMatch(required object.CoinAction, change *object.CoinChange) error {

	if required == "" {
		return nil
	}

	if change == nil {
		return failure.New(ErrCoinActionMatchCoinChangeIsNil, failure.WithString("expected", string(required)))
	}

	if change.CoinAction != required {
		return failure.New(ErrCoinActionMatchUnexpectedCoinAction,
			failure.WithString("expected", string(required)),
			failure.WithString("action", string(change.CoinAction)),
		)
	}

	return nil
}

// operationMatch adds the operation to the first description it matches that
// is not matched yet, or allows repeats. It returns whether such a
// description was found.
func operationMatch(operation *object.Operation, descriptions []*OperationDescription, matches []*Match) bool {

	for i, description := range descriptions {

		if matches[i] != nil && !description.AllowRepeats {
			continue
		}
		if description.Type != "" && description.Type != operation.Type {
			continue
		}
		if AccountMatch(description.Account, operation.AccountID) != nil {
			continue
		}
		if AmountMatch(description.Amount, operation.Amount) != nil {
			continue
		}
		if MetadataMatch(description.Metadata, operation.Metadata) != nil {
			continue
		}
		if CoinActionMatch(description.CoinAction, operation.CoinChange) != nil {
			continue
		}

		var value *big.Int
		if operation.Amount != nil {
			v, err := asserter.AmountValue(operation.Amount)
			if err != nil {
				continue
			}
			value = v
		}

		if matches[i] == nil {
			matches[i] = &Match{}
		}
		matches[i].Operations = append(matches[i].Operations, operation)
		matches[i].Amounts = append(matches[i].Amounts, value)

		return true
	}

	return false
}

// EqualAmounts ensures all given operations have the same amount.
func EqualAmounts(operations []*object.Operation) error {

	if len(operations) == 0 {
		return failure.New(ErrEqualAmountsNoOperations)
	}

	base, err := asserter.AmountValue(operations[0].Amount)
	if err != nil {
		return err
	}

	for _, operation := range operations[1:] {
		value, err := asserter.AmountValue(operation.Amount)
		if err != nil {
			return err
		}
		if base.Cmp(value) != 0 {
			return failure.New(ErrEqualAmountsNotEqual,
				failure.WithString("expected", base.String()),
				failure.WithString("value", value.String()),
			)
		}
	}

	return nil
}

// OppositeAmounts ensures two operations have amounts of opposite signs and
// equal absolute values.
func OppositeAmounts(a *object.Operation, b *object.Operation) error {
	return oppositeAmounts(a, b, false)
}

// OppositeOrZeroAmounts ensures two operations either both have zero amounts,
// or opposite amounts.
func OppositeOrZeroAmounts(a *object.Operation, b *object.Operation) error {
	return oppositeAmounts(a, b, true)
}

func oppositeAmounts(a *object.Operation, b *object.Operation, zero bool) error {

	aValue, err := asserter.AmountValue(a.Amount)
	if err != nil {
		return err
	}
	bValue, err := asserter.AmountValue(b.Amount)
	if err != nil {
		return err
	}

	if zero && aValue.Sign() == 0 && bValue.Sign() == 0 {
		return nil
	}

	if aValue.Sign() == bValue.Sign() {
		return failure.New(ErrOppositeAmountsSameSign,
			failure.WithString("first", aValue.String()),
			failure.WithString("second", bValue.String()),
		)
	}

	if new(big.Int).Abs(aValue).Cmp(new(big.Int).Abs(bValue)) != 0 {
		return failure.New(ErrOppositeAmountsAbsValMismatch,
			failure.WithString("first", aValue.String()),
			failure.WithString("second", bValue.String()),
		)
	}

	return nil
}

// EqualAddresses ensures all given operations have an account with the same
// address. At least two operations are needed.
func EqualAddresses(operations []*object.Operation) error {

	if len(operations) <= 1 {
		return failure.New(ErrEqualAddressesTooFewOperations, failure.WithInt("count", len(operations)))
	}

	base := ""
	for _, operation := range operations {
		if operation.AccountID == nil {
			return failure.New(ErrEqualAddressesAccountIsNil, failure.WithInt64("index", operation.ID.Index))
		}
		if base == "" {
			base = operation.AccountID.Address
			continue
		}
		if operation.AccountID.Address != base {
			return failure.New(ErrEqualAddressesAddrMismatch,
				failure.WithString("expected", base),
				failure.WithString("address", operation.AccountID.Address),
			)
		}
	}

	return nil
}

func matchIndexValid(matches []*Match, index int) error {
	if index < 0 || index >= len(matches) {
		return failure.New(ErrMatchIndexValidIndexOutOfRange, failure.WithInt("index", index))
	}
	if matches[index] == nil {
		return failure.New(ErrMatchIndexValidIndexIsNil, failure.WithInt("index", index))
	}
	return nil
}

func checkOperations(batches [][]int, matches []*Match, valid func([]*object.Operation) error) error {
	for _, batch := range batches {
		var operations []*object.Operation
		for _, index := range batch {
			err := matchIndexValid(matches, index)
			if err != nil {
				return fmt.Errorf("invalid match index: %w", err)
			}
			operations = append(operations, matches[index].Operations...)
		}
		err := valid(operations)
		if err != nil {
			return err
		}
	}
	return nil
}

func compareOppositeMatches(pairs [][]int, matches []*Match, check func(*object.Operation, *object.Operation) error) error {
	for _, pair := range pairs {

		if len(pair) != oppositesLength {
			return failure.New(ErrOppositeAmountsInvalidLength, failure.WithInt("count", len(pair)))
		}

		for _, index := range pair {
			err := matchIndexValid(matches, index)
			if err != nil {
				return fmt.Errorf("invalid match index: %w", err)
			}
			err = EqualAmounts(matches[index].Operations)
			if err != nil {
				return fmt.Errorf("amounts of match not equal (index: %d): %w", index, err)
			}
		}

		// All amounts within a match are equal, so comparing the first
		// operation of each match is enough.
		err := check(matches[pair[0]].Operations[0], matches[pair[1]].Operations[0])
		if err != nil {
			return err
		}
	}
	return nil
}

func comparisonMatch(descriptions *Descriptions, matches []*Match) error {

	err := checkOperations(descriptions.EqualAmounts, matches, EqualAmounts)
	if err != nil {
		return fmt.Errorf("operation amounts not equal: %w", err)
	}

	err = checkOperations(descriptions.EqualAddresses, matches, EqualAddresses)
	if err != nil {
		return fmt.Errorf("operation addresses not equal: %w", err)
	}

	err = compareOppositeMatches(descriptions.OppositeAmounts, matches, OppositeAmounts)
	if err != nil {
		return fmt.Errorf("operation amounts not opposite: %w", err)
	}

	err = compareOppositeMatches(descriptions.OppositeOrZeroAmounts, matches, OppositeOrZeroAmounts)
	if err != nil {
		return fmt.Errorf("operation amounts not opposite or zero: %w", err)
	}

	return nil
}

// MatchOperations matches the given operations to the given descriptions. On
// success, the matches are returned in the order of the descriptions, with nil
// entries for optional descriptions that were not matched.
func MatchOperations(descriptions *Descriptions, operations []*object.Operation) ([]*Match, error) {

	if len(operations) == 0 {
		return nil, failure.New(ErrMatchOperationsNoOperations)
	}

	if descriptions == nil || len(descriptions.OperationDescriptions) == 0 {
		return nil, failure.New(ErrMatchOperationsDescriptionsMissing)
	}

	for i, description := range descriptions.OperationDescriptions {
		if description == nil {
			return nil, failure.New(ErrMatchDescriptionIsNil, failure.WithInt("index", i))
		}
	}

	matches := make([]*Match, len(descriptions.OperationDescriptions))
	for i, operation := range operations {
		if operation == nil {
			return nil, failure.New(asserter.ErrOperationIsNil, failure.WithInt("index", i))
		}
		found := operationMatch(operation, descriptions.OperationDescriptions, matches)
		if !found && descriptions.ErrUnmatched {
			return nil, failure.New(ErrMatchOperationsMatchNotFound, failure.WithInt("index", i))
		}
	}

	for i, match := range matches {
		if match == nil && !descriptions.OperationDescriptions[i].Optional {
			return nil, failure.New(ErrMatchOperationsDescriptionNotMatched, failure.WithInt("index", i))
		}
	}

	err := comparisonMatch(descriptions, matches)
	if err != nil {
		return nil, fmt.Errorf("group descriptions not met: %w", err)
	}

	return matches, nil
}
