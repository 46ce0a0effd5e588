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
	"github.com/labstack/echo/v4"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/response"
)

// Block validates a response of the /block endpoint.
// See https://www.rosetta-api.org/docs/BlockApi.html#block
func (v *Validation) Block(ctx echo.Context) error {

	var res response.Block
	err := ctx.Bind(&res)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointBlock, &res, func() error {
		return v.asserter.Block(res.Block)
	})
}

// Transaction validates a response of the /block/transaction endpoint.
// See https://www.rosetta-api.org/docs/BlockApi.html#blocktransaction
func (v *Validation) Transaction(ctx echo.Context) error {

	var res response.Transaction
	err := ctx.Bind(&res)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointTransaction, &res, func() error {
		return v.asserter.Transaction(res.Transaction, false)
	})
}

// Mempool validates a response of the /mempool endpoint.
// See https://www.rosetta-api.org/docs/MempoolApi.html#mempool
func (v *Validation) Mempool(ctx echo.Context) error {

	var res response.Mempool
	err := ctx.Bind(&res)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointMempool, &res, func() error {
		return v.asserter.MempoolTransactions(res.TransactionIDs)
	})
}

// Events validates a response of the /events/blocks endpoint.
// See https://www.rosetta-api.org/docs/EventsApi.html#eventsblocks
func (v *Validation) Events(ctx echo.Context) error {

	var res response.Events
	err := ctx.Bind(&res)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointEvents, &res, func() error {
		return asserter.EventsBlocksResponse(&res)
	})
}

// Search validates a response of the /search/transactions endpoint.
// See https://www.rosetta-api.org/docs/SearchApi.html#searchtransactions
func (v *Validation) Search(ctx echo.Context) error {

	var res response.Search
	err := ctx.Bind(&res)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointSearch, &res, func() error {
		return v.asserter.SearchTransactionsResponse(&res)
	})
}
