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
	"net/http"

	"github.com/labstack/echo/v4"
)

// BalanceChanges computes the balance changes of a valid block, which a client
// can use to reconcile the balances of the accounts it tracks.
func (v *Validation) BalanceChanges(ctx echo.Context) error {

	var req BalanceChangesRequest
	err := ctx.Bind(&req)
	if err != nil {
		return v.unpackError(err)
	}

	err = v.request(&req)
	if err != nil {
		v.metrics.Malformed(EndpointBalanceChanges)
		return echo.NewHTTPError(v.codes.badRequest, InvalidFormat(err))
	}

	err = v.asserter.Block(req.Block)
	if err != nil {
		return v.reject(EndpointBalanceChanges, fmt.Errorf("could not validate block: %w", err))
	}

	changes, err := v.parser.BalanceChanges(ctx.Request().Context(), req.Block, req.Removed)
	if err != nil {
		return v.reject(EndpointBalanceChanges, fmt.Errorf("could not compute balance changes: %w", err))
	}

	v.metrics.Valid(EndpointBalanceChanges)

	res := BalanceChangesResponse{
		BalanceChanges: changes,
	}

	return ctx.JSON(http.StatusOK, res)
}

// Imbalances returns the accounts whose balance changes by a non-zero amount
// in a valid transaction, without being covered by a balance exemption.
func (v *Validation) Imbalances(ctx echo.Context) error {

	var req ImbalancesRequest
	err := ctx.Bind(&req)
	if err != nil {
		return v.unpackError(err)
	}

	err = v.request(&req)
	if err != nil {
		v.metrics.Malformed(EndpointImbalances)
		return echo.NewHTTPError(v.codes.badRequest, InvalidFormat(err))
	}

	err = v.asserter.Transaction(req.Transaction, false)
	if err != nil {
		return v.reject(EndpointImbalances, fmt.Errorf("could not validate transaction: %w", err))
	}

	groups, err := v.parser.Imbalances(req.Transaction)
	if err != nil {
		return v.reject(EndpointImbalances, fmt.Errorf("could not compute imbalances: %w", err))
	}

	v.metrics.Valid(EndpointImbalances)

	res := ImbalancesResponse{
		Imbalances: imbalances(groups),
	}

	return ctx.JSON(http.StatusOK, res)
}
