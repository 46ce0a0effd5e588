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

package mocks

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/optakt/rosetta-asserter/rosetta/configuration"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/response"
)

// Global variables that can be used for testing. They are non-nil valid values for the types commonly needed
// to test asserter and parser components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericHeight = int64(42)

	GenericTimestamp = int64(1_600_000_000_000)

	GenericNetwork = identifier.Network{
		Blockchain: "bitcoin",
		Network:    "mainnet",
	}

	GenericGenesisID = identifier.Block{
		Index: 0,
		Hash:  "block 0",
	}

	GenericBlockID = identifier.Block{
		Index: GenericHeight,
		Hash:  fmt.Sprintf("block %d", GenericHeight),
	}

	GenericParentID = identifier.Block{
		Index: GenericHeight - 1,
		Hash:  fmt.Sprintf("block %d", GenericHeight-1),
	}

	GenericCurrency = identifier.Currency{
		Symbol:   "BTC",
		Decimals: 8,
	}

	GenericOtherCurrency = identifier.Currency{
		Symbol:   "ETH",
		Decimals: 18,
	}

	GenericTransactionID = identifier.Transaction{
		Hash: "transaction 0",
	}

	GenericCoinID = identifier.Coin{
		Identifier: "coin 0",
	}

	GenericOperationTypes = []string{"TRANSFER", "FEE"}

	GenericCallMethods = []string{"eth_call", "eth_getBlockByNumber"}

	GenericStatusSuccess = "SUCCESS"

	GenericStatusFailure = "FAILURE"

	GenericStatuses = []*object.OperationStatus{
		{Status: GenericStatusSuccess, Successful: true},
		{Status: GenericStatusFailure, Successful: false},
	}

	GenericErrors = []*object.Error{
		{Code: 1, Message: "internal error", Retriable: true},
		{Code: 2, Message: "invalid request", Retriable: false},
	}

	GenericVersion = &object.Version{
		RosettaVersion: "1.4.10",
		NodeVersion:    "1.0.0",
	}

	GenericPublicKey = &object.PublicKey{
		HexBytes:  "03aabbccdd",
		CurveType: object.Secp256k1,
	}
)

// GenericAccount returns a deterministic account identifier for the given index.
func GenericAccount(index int) identifier.Account {
	return identifier.Account{Address: "account " + strconv.Itoa(index)}
}

// GenericAmount returns an amount of the generic currency with the given value.
func GenericAmount(value string) *object.Amount {
	currency := GenericCurrency
	return &object.Amount{
		Value:    value,
		Currency: &currency,
	}
}

// GenericOperations returns a balanced set of transfer operations, where every even
// operation debits an account and every odd operation credits the next one.
func GenericOperations(number int) []*object.Operation {
	var operations []*object.Operation
	for i := 0; i < number; i++ {
		value := "-10"
		if i%2 == 1 {
			value = "10"
		}
		operations = append(operations, GenericOperation(i, value))
	}
	return operations
}

// GenericOperation returns a successful transfer operation at the given index.
func GenericOperation(index int, value string) *object.Operation {
	status := GenericStatusSuccess
	account := GenericAccount(index)
	return &object.Operation{
		ID:        identifier.Operation{Index: int64(index)},
		Type:      GenericOperationTypes[0],
		Status:    &status,
		AccountID: &account,
		Amount:    GenericAmount(value),
	}
}

// GenericTransaction returns a valid transaction with the given number of operations.
func GenericTransaction(number int) *object.Transaction {
	return &object.Transaction{
		ID:         GenericTransactionID,
		Operations: GenericOperations(number),
	}
}

// GenericBlock returns a valid block at the generic height.
func GenericBlock() *object.Block {
	return &object.Block{
		ID:           GenericBlockID,
		ParentID:     GenericParentID,
		Timestamp:    GenericTimestamp,
		Transactions: []*object.Transaction{GenericTransaction(2)},
	}
}

// GenericNetworkStatus returns a network status response for the generic network.
func GenericNetworkStatus() *response.Status {
	current := GenericBlockID
	genesis := GenericGenesisID
	return &response.Status{
		CurrentBlockID:        &current,
		CurrentBlockTimestamp: GenericTimestamp,
		GenesisBlockID:        &genesis,
	}
}

// GenericNetworkOptions returns a network options response allowing the generic
// operation types, statuses and errors.
func GenericNetworkOptions() *response.Options {
	return &response.Options{
		Version: GenericVersion,
		Allow: &object.Allow{
			OperationStatuses: GenericStatuses,
			OperationTypes:    GenericOperationTypes,
			Errors:            GenericErrors,
		},
	}
}

// GenericValidations returns validations expecting a payment made of two balanced
// transfer operations and no fee.
func GenericValidations() *configuration.Validations {
	return &configuration.Validations{
		Enabled:   true,
		ChainType: configuration.ChainAccount,
		Payment: configuration.ValidationOperation{
			Name: GenericOperationTypes[0],
			Operation: configuration.OperationCount{
				Count:         2,
				ShouldBalance: true,
			},
		},
		Fee: configuration.ValidationOperation{
			Name: GenericOperationTypes[1],
			Operation: configuration.OperationCount{
				Count:         0,
				ShouldBalance: false,
			},
		},
	}
}
