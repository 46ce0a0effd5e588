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
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/optakt/rosetta-asserter/rosetta/parser"
)

// Operations validates operations a client wants to construct a transaction
// with. Such operations must not have a status yet.
func (v *Validation) Operations(ctx echo.Context) error {

	var req OperationsRequest
	err := ctx.Bind(&req)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointOperations, &req, func() error {
		return v.asserter.Operations(req.Operations, true)
	})
}

// Parse validates a response of the /construction/parse endpoint.
// See https://www.rosetta-api.org/docs/ConstructionApi.html#constructionparse
func (v *Validation) Parse(ctx echo.Context) error {

	var req ParseRequest
	err := ctx.Bind(&req)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointParse, &req, func() error {
		return v.asserter.ConstructionParseResponse(req.Parse, req.Signed)
	})
}

// Intent checks that the operations of a parsed transaction match the
// operations the client intended, and that the transaction is signed by the
// accounts of the signing payloads.
func (v *Validation) Intent(ctx echo.Context) error {

	var req IntentRequest
	err := ctx.Bind(&req)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointIntent, &req, func() error {
		err := v.parser.ExpectedOperations(req.Intent, req.Observed, req.ErrExtra, req.ConfirmSuccess)
		if err != nil {
			return fmt.Errorf("observed operations do not match intent: %w", err)
		}
		if len(req.Payloads) == 0 {
			return nil
		}
		err = parser.ExpectedSigners(req.Payloads, req.Signers)
		if err != nil {
			return fmt.Errorf("observed signers do not match intent: %w", err)
		}
		return nil
	})
}
