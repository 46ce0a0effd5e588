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
	"math/big"
	"regexp"

	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// Block timestamps have to be between 2000-01-01 and 2040-01-01, expressed in
// milliseconds since the Unix epoch.
const (
	MinUnixEpoch = 946713600000
	MaxUnixEpoch = 2209017600000
)

// amountPattern matches signed integers without leading zeros or a plus sign.
var amountPattern = regexp.MustCompile(`^(-?[1-9][0-9]*|0)$`)

// Currency ensures a currency has a symbol and non-negative decimals.
func Currency(currency *identifier.Currency) error {
	if currency == nil {
		return failure.New(ErrAmountCurrencyIsNil)
	}
	if currency.Symbol == "" {
		return failure.New(ErrAmountCurrencySymbolEmpty)
	}
	if currency.Decimals < 0 {
		return failure.New(ErrAmountCurrencyHasNegDecimals,
			failure.WithString("symbol", currency.Symbol),
			failure.WithInt64("decimals", int64(currency.Decimals)),
		)
	}
	return nil
}

// Amount ensures an amount has an integer value and a valid currency.
func Amount(amount *object.Amount) error {
	if amount == nil || amount.Value == "" {
		return failure.New(ErrAmountValueMissing)
	}
	if !amountPattern.MatchString(amount.Value) {
		return failure.New(ErrAmountIsNotInt, failure.WithString("value", amount.Value))
	}
	err := Currency(amount.Currency)
	if err != nil {
		return fmt.Errorf("invalid amount currency: %w", err)
	}
	return nil
}

// AmountValue returns the value of an amount as an arbitrary-precision integer.
func AmountValue(amount *object.Amount) (*big.Int, error) {
	if amount == nil || amount.Value == "" {
		return nil, failure.New(ErrAmountValueMissing)
	}
	if !amountPattern.MatchString(amount.Value) {
		return nil, failure.New(ErrAmountIsNotInt, failure.WithString("value", amount.Value))
	}
	value, ok := new(big.Int).SetString(amount.Value, 10)
	if !ok {
		return nil, failure.New(ErrAmountIsNotInt, failure.WithString("value", amount.Value))
	}
	return value, nil
}

// OperationIdentifier ensures an operation identifier has the index expected
// at its position within the operations of a transaction.
func OperationIdentifier(id *identifier.Operation, index int64) error {
	if id == nil {
		return failure.New(ErrOperationIdentifierIndexIsNil)
	}
	if id.Index != index {
		return failure.New(ErrOperationIdentifierIndexOutOfOrder,
			failure.WithInt64("index", id.Index),
			failure.WithInt64("expected", index),
		)
	}
	if id.NetworkIndex != nil && *id.NetworkIndex < 0 {
		return failure.New(ErrOperationIdentifierNetworkIndexInvalid, failure.WithInt64("network_index", *id.NetworkIndex))
	}
	return nil
}

// AccountIdentifier ensures an account identifier has an address, and that
// its sub account has one too, if present.
func AccountIdentifier(account *identifier.Account) error {
	if account == nil {
		return failure.New(ErrAccountIsNil)
	}
	if account.Address == "" {
		return failure.New(ErrAccountAddrMissing)
	}
	if account.SubAccount != nil && account.SubAccount.Address == "" {
		return failure.New(ErrAccountSubAccountAddrMissing, failure.WithString("address", account.Address))
	}
	return nil
}

// AccountAndAmount ensures that an operation which has an amount also has an
// account, and that both are valid.
func AccountAndAmount(account *identifier.Account, amount *object.Amount) error {
	if amount == nil {
		if account == nil {
			return nil
		}
		return AccountIdentifier(account)
	}
	if account == nil {
		return failure.New(ErrAccountNotProvidedForAmount, failure.WithString("value", amount.Value))
	}
	err := AccountIdentifier(account)
	if err != nil {
		return fmt.Errorf("invalid account: %w", err)
	}
	err = Amount(amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	return nil
}

// BlockIdentifier ensures a block identifier has a hash and a non-negative
// index.
func BlockIdentifier(block *identifier.Block) error {
	if block == nil {
		return failure.New(ErrBlockIdentifierIsNil)
	}
	if block.Hash == "" {
		return failure.New(ErrBlockIdentifierHashMissing, failure.WithInt64("index", block.Index))
	}
	if block.Index < 0 {
		return failure.New(ErrBlockIdentifierIndexIsNeg,
			failure.WithString("hash", block.Hash),
			failure.WithInt64("index", block.Index),
		)
	}
	return nil
}

// PartialBlockIdentifier ensures that a partial block identifier has at least
// one of a non-empty hash or a non-negative index.
func PartialBlockIdentifier(block *identifier.PartialBlock) error {
	if block == nil {
		return failure.New(ErrPartialBlockIdentifierIsNil)
	}
	if block.Hash != nil && *block.Hash != "" {
		return nil
	}
	if block.Index != nil && *block.Index >= 0 {
		return nil
	}
	return failure.New(ErrPartialBlockIdentifierFieldsNotSet)
}

// TransactionIdentifier ensures a transaction identifier has a hash.
func TransactionIdentifier(tx *identifier.Transaction) error {
	if tx == nil {
		return failure.New(ErrTxIdentifierIsNil)
	}
	if tx.Hash == "" {
		return failure.New(ErrTxIdentifierHashMissing)
	}
	return nil
}

// Timestamp ensures a block timestamp is within a sensible range.
func Timestamp(timestamp int64) error {
	if timestamp < MinUnixEpoch {
		return failure.New(ErrTimestampBeforeMin, failure.WithInt64("timestamp", timestamp))
	}
	if timestamp > MaxUnixEpoch {
		return failure.New(ErrTimestampAfterMax, failure.WithInt64("timestamp", timestamp))
	}
	return nil
}

// Direction ensures the direction of a related transaction is known.
func Direction(direction object.Direction) error {
	switch direction {
	case object.Forward, object.Backward:
		return nil
	default:
		return failure.New(ErrInvalidDirection, failure.WithString("direction", string(direction)))
	}
}

// OperationStatus ensures the status of an operation is one of the allowed
// statuses. Operations that are validated in construction mode are not
// confirmed yet, so they must not have a status at all.
func (a *Asserter) OperationStatus(status *string, construction bool) error {

	if !a.initialized() {
		return failure.New(ErrAsserterNotInitialized)
	}

	if status == nil || *status == "" {
		if construction {
			return nil
		}
		return failure.New(ErrOperationStatusMissing)
	}

	if construction {
		return failure.New(ErrOperationStatusNotEmptyForConstruction, failure.WithString("status", *status))
	}

	if a.response == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	_, ok := a.response.operationStatusMap[*status]
	if !ok {
		return failure.New(ErrOperationStatusInvalid, failure.WithString("status", *status))
	}

	return nil
}

// OperationType ensures the type of an operation is one of the allowed types.
func (a *Asserter) OperationType(typ string) error {

	if !a.initialized() {
		return failure.New(ErrAsserterNotInitialized)
	}

	_, ok := a.typeSet[typ]
	if !ok {
		return failure.New(ErrOperationTypeInvalid, failure.WithString("type", typ))
	}

	return nil
}

// Operation ensures an operation has the expected index, an allowed type and
// status, a valid account and amount, and a valid coin change.
func (a *Asserter) Operation(operation *object.Operation, index int64, construction bool) error {

	if !a.initialized() {
		return failure.New(ErrAsserterNotInitialized)
	}

	if operation == nil {
		return failure.New(ErrOperationIsNil, failure.WithInt64("index", index))
	}

	err := OperationIdentifier(&operation.ID, index)
	if err != nil {
		return fmt.Errorf("invalid operation identifier: %w", err)
	}

	err = a.OperationType(operation.Type)
	if err != nil {
		return fmt.Errorf("invalid operation type: %w", err)
	}

	err = a.OperationStatus(operation.Status, construction)
	if err != nil {
		return fmt.Errorf("invalid operation status: %w", err)
	}

	err = AccountAndAmount(operation.AccountID, operation.Amount)
	if err != nil {
		return err
	}

	if operation.CoinChange == nil {
		return nil
	}

	err = CoinChange(operation.CoinChange)
	if err != nil {
		return fmt.Errorf("invalid coin change: %w", err)
	}

	return nil
}

// RelatedOperations ensures that an operation only relates to operations
// that precede it, and that it does not list any of them twice.
func RelatedOperations(operation *object.Operation) error {

	if operation == nil {
		return failure.New(ErrOperationIsNil)
	}

	seen := make(map[int64]struct{}, len(operation.RelatedIDs))
	for _, related := range operation.RelatedIDs {
		if related.Index >= operation.ID.Index {
			return failure.New(ErrRelatedOperationIndexOutOfOrder,
				failure.WithInt64("index", operation.ID.Index),
				failure.WithInt64("related", related.Index),
			)
		}
		_, ok := seen[related.Index]
		if ok {
			return failure.New(ErrRelatedOperationIndexDuplicate,
				failure.WithInt64("index", operation.ID.Index),
				failure.WithInt64("related", related.Index),
			)
		}
		seen[related.Index] = struct{}{}
	}

	return nil
}

// Operations validates the given operations in order, stopping at the first
// invalid one. The index of each operation has to match its position in the
// slice. Once all operations are valid on their own, their relations are
// validated, followed by the payment and fee validations, if enabled.
func (a *Asserter) Operations(operations []*object.Operation, construction bool) error {

	if !a.initialized() {
		return failure.New(ErrAsserterNotInitialized)
	}

	if len(operations) == 0 {
		if construction {
			return failure.New(ErrNoOperationsForConstruction)
		}
		return failure.New(ErrNoOperationsForTransaction)
	}

	for i, operation := range operations {
		err := a.Operation(operation, int64(i), construction)
		if err != nil {
			return fmt.Errorf("invalid operation (index: %d): %w", i, err)
		}
	}

	for i, operation := range operations {
		err := RelatedOperations(operation)
		if err != nil {
			return fmt.Errorf("invalid related operations (index: %d): %w", i, err)
		}
	}

	err := a.validatePaymentAndFee(operations)
	if err != nil {
		return fmt.Errorf("invalid payment or fee: %w", err)
	}

	return nil
}

// Transaction validates the identifier, the operations and the related
// transactions of a transaction.
func (a *Asserter) Transaction(transaction *object.Transaction, construction bool) error {

	if !a.initialized() {
		return failure.New(ErrAsserterNotInitialized)
	}

	if transaction == nil {
		return failure.New(ErrTxIsNil)
	}

	err := TransactionIdentifier(&transaction.ID)
	if err != nil {
		return fmt.Errorf("invalid transaction identifier: %w", err)
	}

	err = a.Operations(transaction.Operations, construction)
	if err != nil {
		return fmt.Errorf("invalid operations (transaction: %s): %w", transaction.ID.Hash, err)
	}

	err = RelatedTransactions(transaction.Related)
	if err != nil {
		return fmt.Errorf("invalid related transactions (transaction: %s): %w", transaction.ID.Hash, err)
	}

	return nil
}

// RelatedTransactions ensures related transactions are valid and unique.
func RelatedTransactions(related []*object.RelatedTransaction) error {

	seen := make(map[string]struct{}, len(related))
	for i, rel := range related {
		if rel == nil {
			return failure.New(ErrTxIdentifierIsNil, failure.WithInt("index", i))
		}

		key := object.Key(rel)
		_, ok := seen[key]
		if ok {
			return failure.New(ErrDuplicateRelatedTransaction, failure.WithInt("index", i))
		}
		seen[key] = struct{}{}

		if rel.NetworkID != nil {
			err := NetworkIdentifier(rel.NetworkID)
			if err != nil {
				return fmt.Errorf("invalid network identifier (index: %d): %w", i, err)
			}
		}

		err := TransactionIdentifier(rel.TransactionID)
		if err != nil {
			return fmt.Errorf("invalid transaction identifier (index: %d): %w", i, err)
		}

		err = Direction(rel.Direction)
		if err != nil {
			return fmt.Errorf("invalid direction (index: %d): %w", i, err)
		}
	}

	return nil
}

// Block validates a block, along with all of its transactions. The checks
// against the parent block are skipped for the genesis block, and the
// timestamp is only checked from the configured timestamp start index on.
func (a *Asserter) Block(block *object.Block) error {

	if a == nil || a.response == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if block == nil {
		return failure.New(ErrBlockIsNil)
	}

	err := BlockIdentifier(&block.ID)
	if err != nil {
		return fmt.Errorf("invalid block identifier: %w", err)
	}

	err = BlockIdentifier(&block.ParentID)
	if err != nil {
		return fmt.Errorf("invalid parent block identifier: %w", err)
	}

	if block.ID.Index != a.response.genesisBlock.Index {
		if block.ID.Hash == block.ParentID.Hash {
			return failure.New(ErrBlockHashEqualsParentBlockHash,
				failure.WithString("hash", block.ID.Hash),
			)
		}
		if block.ID.Index <= block.ParentID.Index {
			return failure.New(ErrBlockIndexPrecedesParentBlockIndex,
				failure.WithInt64("index", block.ID.Index),
				failure.WithInt64("parent", block.ParentID.Index),
			)
		}
	}

	if a.response.timestampStartIndex <= block.ID.Index {
		err = Timestamp(block.Timestamp)
		if err != nil {
			return fmt.Errorf("invalid block timestamp (index: %d): %w", block.ID.Index, err)
		}
	}

	for _, transaction := range block.Transactions {
		err = a.Transaction(transaction, false)
		if err != nil {
			return fmt.Errorf("invalid transaction (block: %d): %w", block.ID.Index, err)
		}
	}

	return nil
}

// MempoolTransactions ensures that all transaction identifiers returned for
// the mempool are valid. It does not inspect the transactions themselves.
func (a *Asserter) MempoolTransactions(transactions []*identifier.Transaction) error {

	if !a.initialized() {
		return failure.New(ErrAsserterNotInitialized)
	}

	for i, transaction := range transactions {
		err := TransactionIdentifier(transaction)
		if err != nil {
			return fmt.Errorf("invalid mempool transaction (index: %d): %w", i, err)
		}
	}

	return nil
}
