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

	"github.com/labstack/echo/v4"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/configuration"
	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/parser"
)

// Error represents an error as defined by the Rosetta API specification. It
// contains an error definition, which has an error code, error message and
// retriable flag that never change, as well as a description and a list of
// details to provide more granular error information.
// See: https://www.rosetta-api.org/docs/api_objects.html#error
type Error struct {
	configuration.ErrorDefinition
	Description string                 `json:"description"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// definitions maps the categories of validation errors to the error
// definitions returned to clients.
var definitions = map[string]configuration.ErrorDefinition{
	"account balance error": configuration.ErrorInvalidAccount,
	"block error":           configuration.ErrorInvalidBlock,
	"coin error":            configuration.ErrorInvalidCoin,
	"construction error":    configuration.ErrorInvalidConstruction,
	"network error":         configuration.ErrorInvalidNetwork,
	"server error":          configuration.ErrorInvalidFormat,
	"events error":          configuration.ErrorInvalidEvents,
	"search error":          configuration.ErrorInvalidSearch,
	"error error":           configuration.ErrorInvalidError,
	"utility error":         configuration.ErrorInvalidFormat,
	"intent error":          configuration.ErrorInvalidIntent,
	"match error":           configuration.ErrorInvalidOperations,
}

// Category returns the category of a validation error, as returned by the
// asserter or the parser. Unknown errors have an empty category.
func Category(err error) string {
	ok, category := asserter.Err(err)
	if ok {
		return category
	}
	ok, category = parser.Err(err)
	if ok {
		return category
	}
	return ""
}

func RosettaError(definition configuration.ErrorDefinition, err error) Error {
	details := make(map[string]interface{})
	var fail failure.Failure
	if errors.As(err, &fail) {
		fail.Description.Fields.Iterate(func(key string, val interface{}) {
			details[key] = val
		})
	}
	e := Error{
		ErrorDefinition: definition,
		Description:     err.Error(),
		Details:         details,
	}
	return e
}

func Internal(err error) Error {
	return RosettaError(configuration.ErrorInternal, err)
}

func InvalidEncoding(err error) Error {
	return RosettaError(configuration.ErrorInvalidEncoding, err)
}

func InvalidFormat(err error) Error {
	return RosettaError(configuration.ErrorInvalidFormat, err)
}

// Invalid converts a validation error into the error of its category.
func Invalid(err error) Error {
	definition, ok := definitions[Category(err)]
	if !ok {
		return Internal(err)
	}
	return RosettaError(definition, err)
}

func (v *Validation) unpackError(err error) error {
	return echo.NewHTTPError(v.codes.badRequest, InvalidEncoding(err))
}
