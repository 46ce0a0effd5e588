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

package configuration

import (
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// ErrorDefinition is the static part of an error returned by the validation
// service. It is advertised as is, without description or details.
type ErrorDefinition struct {
	Code      int32  `json:"code"`
	Message   string `json:"message"`
	Retriable bool   `json:"retriable"`
}

// Object returns the definition as an error object of the Rosetta API.
func (e ErrorDefinition) Object() *object.Error {
	err := object.Error{
		Code:      e.Code,
		Message:   e.Message,
		Retriable: e.Retriable,
	}
	return &err
}

var (
	ErrorInternal            = ErrorDefinition{Code: 1, Message: "internal error", Retriable: false}
	ErrorInvalidEncoding     = ErrorDefinition{Code: 2, Message: "invalid request encoding", Retriable: false}
	ErrorInvalidFormat       = ErrorDefinition{Code: 3, Message: "invalid request format", Retriable: false}
	ErrorInvalidNetwork      = ErrorDefinition{Code: 4, Message: "invalid network identifier", Retriable: false}
	ErrorInvalidAccount      = ErrorDefinition{Code: 5, Message: "invalid account identifier", Retriable: false}
	ErrorInvalidCurrency     = ErrorDefinition{Code: 6, Message: "invalid currency identifier", Retriable: false}
	ErrorInvalidBlock        = ErrorDefinition{Code: 7, Message: "invalid block", Retriable: false}
	ErrorInvalidTransaction  = ErrorDefinition{Code: 8, Message: "invalid transaction", Retriable: false}
	ErrorInvalidOperations   = ErrorDefinition{Code: 9, Message: "invalid operations", Retriable: false}
	ErrorInvalidCoin         = ErrorDefinition{Code: 10, Message: "invalid coin", Retriable: false}
	ErrorInvalidError        = ErrorDefinition{Code: 11, Message: "invalid error", Retriable: false}
	ErrorInvalidConstruction = ErrorDefinition{Code: 12, Message: "invalid construction payload", Retriable: false}
	ErrorInvalidEvents       = ErrorDefinition{Code: 13, Message: "invalid block events", Retriable: false}
	ErrorInvalidSearch       = ErrorDefinition{Code: 14, Message: "invalid search result", Retriable: false}
	ErrorInvalidIntent       = ErrorDefinition{Code: 15, Message: "invalid transaction intent", Retriable: false}
)

// Errors lists all errors the validation service can return.
var Errors = []ErrorDefinition{
	ErrorInternal,
	ErrorInvalidEncoding,
	ErrorInvalidFormat,
	ErrorInvalidNetwork,
	ErrorInvalidAccount,
	ErrorInvalidCurrency,
	ErrorInvalidBlock,
	ErrorInvalidTransaction,
	ErrorInvalidOperations,
	ErrorInvalidCoin,
	ErrorInvalidError,
	ErrorInvalidConstruction,
	ErrorInvalidEvents,
	ErrorInvalidSearch,
	ErrorInvalidIntent,
}
