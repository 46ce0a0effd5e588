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
	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// Error ensures an error object has a non-negative code and a message, and
// that its description is not empty, if present.
func Error(err *object.Error) error {
	if err == nil {
		return failure.New(ErrErrorIsNil)
	}
	if err.Code < 0 {
		return failure.New(ErrErrorCodeIsNeg, failure.WithInt64("code", int64(err.Code)))
	}
	if err.Message == "" {
		return failure.New(ErrErrorMessageMissing, failure.WithInt64("code", int64(err.Code)))
	}
	if err.Description != nil && *err.Description == "" {
		return failure.New(ErrErrorDescriptionEmpty, failure.WithInt64("code", int64(err.Code)))
	}
	return nil
}

// Error ensures that an error returned by a node is consistent with the errors
// it advertised in its network options: the code has to be known, and the
// message and retriable flag have to match the advertised ones.
func (a *Asserter) Error(err *object.Error) error {

	if a == nil || a.response == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	e := Error(err)
	if e != nil {
		return e
	}

	expected, ok := a.response.errorTypeMap[err.Code]
	if !ok {
		return failure.New(ErrErrorUnexpectedCode, failure.WithInt64("code", int64(err.Code)))
	}

	if expected.Message != err.Message {
		return failure.New(ErrErrorMessageMismatch,
			failure.WithInt64("code", int64(err.Code)),
			failure.WithString("expected", expected.Message),
			failure.WithString("message", err.Message),
		)
	}

	if expected.Retriable != err.Retriable {
		return failure.New(ErrErrorRetriableMismatch,
			failure.WithInt64("code", int64(err.Code)),
			failure.WithBool("expected", expected.Retriable),
			failure.WithBool("retriable", err.Retriable),
		)
	}

	return nil
}
