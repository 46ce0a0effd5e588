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

package rosetta

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/response"
)

// Tags of the request validation failures.
const (
	blockMissing       = "block_missing"
	transactionMissing = "transaction_missing"
	operationsEmpty    = "operations_empty"
	parseMissing       = "parse_missing"
	intentEmpty        = "intent_empty"
)

// Field names are only used when dealing with plain `error` values, but they
// are mandatory arguments for the `ReportError` method of the validator.
const (
	blockField       = "block"
	transactionField = "transaction"
	operationsField  = "operations"
	parseField       = "parse"
	intentField      = "intent"
)

var (
	ErrInvalidValidation  = errors.New("invalid use of request validation")
	ErrBlockMissing       = errors.New("block is missing")
	ErrTransactionMissing = errors.New("transaction is missing")
	ErrOperationsEmpty    = errors.New("operations are empty")
	ErrParseMissing       = errors.New("parse response is missing")
	ErrIntentEmpty        = errors.New("intended operations are empty")
)

func newRequestValidator() *validator.Validate {

	v := validator.New()

	// We register a single type per validator, so we can safely perform type
	// assertion of the provided `validator.StructLevel` to the correct type.
	v.RegisterStructValidation(blockValidator, response.Block{})
	v.RegisterStructValidation(transactionValidator, response.Transaction{})
	v.RegisterStructValidation(operationsValidator, OperationsRequest{})
	v.RegisterStructValidation(parseValidator, ParseRequest{})
	v.RegisterStructValidation(intentValidator, IntentRequest{})
	v.RegisterStructValidation(balanceChangesValidator, BalanceChangesRequest{})
	v.RegisterStructValidation(imbalancesValidator, ImbalancesRequest{})

	return v
}

// request checks that the decoded request has the fields required to run the
// validation at all. It returns the first problem encountered.
func (v *Validation) request(req interface{}) error {

	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	// InvalidValidationError is returned by the validation library in cases of
	// invalid usage, such as passing a non-struct to `validate.Struct()`.
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrInvalidValidation, invalid.Error())
	}

	errs := err.(validator.ValidationErrors)
	field := failure.WithString("field", errs[0].Field())
	switch errs[0].Tag() {
	case blockMissing:
		return failure.New(ErrBlockMissing, field)
	case transactionMissing:
		return failure.New(ErrTransactionMissing, field)
	case operationsEmpty:
		return failure.New(ErrOperationsEmpty, field)
	case parseMissing:
		return failure.New(ErrParseMissing, field)
	case intentEmpty:
		return failure.New(ErrIntentEmpty, field)
	default:
		return fmt.Errorf("unknown validation failure (tag: %s)", errs[0].Tag())
	}
}

func blockValidator(sl validator.StructLevel) {
	res := sl.Current().Interface().(response.Block)
	if res.Block == nil {
		sl.ReportError(res.Block, blockField, blockField, blockMissing, "")
	}
}

func transactionValidator(sl validator.StructLevel) {
	res := sl.Current().Interface().(response.Transaction)
	if res.Transaction == nil {
		sl.ReportError(res.Transaction, transactionField, transactionField, transactionMissing, "")
	}
}

func operationsValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(OperationsRequest)
	if len(req.Operations) == 0 {
		sl.ReportError(req.Operations, operationsField, operationsField, operationsEmpty, "")
	}
}

func parseValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(ParseRequest)
	if req.Parse == nil {
		sl.ReportError(req.Parse, parseField, parseField, parseMissing, "")
	}
}

func intentValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(IntentRequest)
	if len(req.Intent) == 0 {
		sl.ReportError(req.Intent, intentField, intentField, intentEmpty, "")
	}
}

func balanceChangesValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(BalanceChangesRequest)
	if req.Block == nil {
		sl.ReportError(req.Block, blockField, blockField, blockMissing, "")
	}
}

func imbalancesValidator(sl validator.StructLevel) {
	req := sl.Current().Interface().(ImbalancesRequest)
	if req.Transaction == nil {
		sl.ReportError(req.Transaction, transactionField, transactionField, transactionMissing, "")
	}
}
