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
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/response"
)

// NetworkList validates a response of the /network/list endpoint.
// See https://www.rosetta-api.org/docs/NetworkApi.html#networklist
func (v *Validation) NetworkList(ctx echo.Context) error {

	var res response.Networks
	err := ctx.Bind(&res)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointNetworkList, &res, func() error {
		return asserter.NetworkListResponse(&res)
	})
}

// NetworkStatus validates a response of the /network/status endpoint.
// See https://www.rosetta-api.org/docs/NetworkApi.html#networkstatus
func (v *Validation) NetworkStatus(ctx echo.Context) error {

	var res response.Status
	err := ctx.Bind(&res)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointNetworkStatus, &res, func() error {
		return asserter.NetworkStatusResponse(&res)
	})
}

// NetworkOptions validates a response of the /network/options endpoint.
// See https://www.rosetta-api.org/docs/NetworkApi.html#networkoptions
func (v *Validation) NetworkOptions(ctx echo.Context) error {

	var res response.Options
	err := ctx.Bind(&res)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointNetworkOptions, &res, func() error {
		return asserter.NetworkOptionsResponse(&res)
	})
}

// Error validates an error returned by a node, which has to be one of the
// errors the network advertises.
func (v *Validation) Error(ctx echo.Context) error {

	var res object.Error
	err := ctx.Bind(&res)
	if err != nil {
		return v.unpackError(err)
	}

	return v.verify(ctx, EndpointError, &res, func() error {
		return v.asserter.Error(&res)
	})
}
