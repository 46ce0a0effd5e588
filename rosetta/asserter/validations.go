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
	"math/big"

	"github.com/optakt/rosetta-asserter/rosetta/configuration"
	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// validatePaymentAndFee applies the optional payment and fee validations to
// the operations of a transaction.
func (a *Asserter) validatePaymentAndFee(operations []*object.Operation) error {

	v := a.validations
	if !v.Enabled {
		return nil
	}

	paymentTotal := big.NewInt(0)
	feeTotal := big.NewInt(0)
	paymentCount := int64(0)
	feeCount := int64(0)
	relatedExist := false
	for _, operation := range operations {

		if len(operation.RelatedIDs) > 0 {
			relatedExist = true
		}

		switch operation.Type {

		case v.Payment.Name:
			value, err := AmountValue(operation.Amount)
			if err != nil {
				return err
			}
			paymentTotal.Add(paymentTotal, value)
			paymentCount++

		case v.Fee.Name:
			if len(operation.RelatedIDs) > 0 {
				return failure.New(ErrRelatedOperationInFeeNotAllowed, failure.WithInt64("index", operation.ID.Index))
			}
			value, err := AmountValue(operation.Amount)
			if err != nil {
				return err
			}
			if value.Sign() >= 0 {
				return failure.New(ErrFeeAmountNotNegative,
					failure.WithInt64("index", operation.ID.Index),
					failure.WithString("value", operation.Amount.Value),
				)
			}
			feeTotal.Add(feeTotal, value)
			feeCount++
		}
	}

	if v.RelatedOpsExists && !relatedExist {
		return failure.New(ErrRelatedOperationMissing)
	}

	if v.ChainType != configuration.ChainAccount {
		return nil
	}

	if v.Payment.Operation.Count != configuration.AnyCount && v.Payment.Operation.Count != paymentCount {
		return failure.New(ErrPaymentCountMismatch,
			failure.WithInt64("expected", v.Payment.Operation.Count),
			failure.WithInt64("count", paymentCount),
		)
	}

	if v.Payment.Operation.ShouldBalance && paymentTotal.Sign() != 0 {
		return failure.New(ErrPaymentAmountNotBalancing, failure.WithString("total", paymentTotal.String()))
	}

	if v.Fee.Operation.Count != configuration.AnyCount && v.Fee.Operation.Count != feeCount {
		return failure.New(ErrFeeCountMismatch,
			failure.WithInt64("expected", v.Fee.Operation.Count),
			failure.WithInt64("count", feeCount),
		)
	}

	if v.Fee.Operation.ShouldBalance && feeTotal.Sign() != 0 {
		return failure.New(ErrFeeAmountNotBalancing, failure.WithString("total", feeTotal.String()))
	}

	return nil
}
