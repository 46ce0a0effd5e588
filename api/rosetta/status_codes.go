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
	"net/http"
)

// The Rosetta API specification expects every error returned from the Rosetta
// API to be a HTTP status code 500 (internal server error). By default, we
// return meaningful HTTP status codes where appropriate instead.
type statusCodes struct {
	badRequest          int
	unprocessableEntity int
	internalServerError int
}

func newStatusCodes(smart bool) statusCodes {
	if !smart {
		return statusCodes{
			badRequest:          http.StatusInternalServerError,
			unprocessableEntity: http.StatusInternalServerError,
			internalServerError: http.StatusInternalServerError,
		}
	}
	return statusCodes{
		badRequest:          http.StatusBadRequest,
		unprocessableEntity: http.StatusUnprocessableEntity,
		internalServerError: http.StatusInternalServerError,
	}
}
