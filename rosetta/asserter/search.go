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
	"fmt"

	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/response"
)

// SearchTransactionsResponse ensures the offset and count of a search result
// are not negative, and that the returned transactions are valid.
func (a *Asserter) SearchTransactionsResponse(search *response.Search) error {

	if !a.initialized() {
		return failure.New(ErrAsserterNotInitialized)
	}

	if search == nil {
		return failure.New(ErrSearchResponseIsNil)
	}

	if search.NextOffset != nil && *search.NextOffset < 0 {
		return failure.New(ErrNextOffsetInvalid, failure.WithInt64("next_offset", *search.NextOffset))
	}

	if search.TotalCount < 0 {
		return failure.New(ErrTotalCountInvalid, failure.WithInt64("total_count", search.TotalCount))
	}

	for i, result := range search.Transactions {
		if result == nil {
			return failure.New(ErrBlockTransactionIsNil, failure.WithInt("index", i))
		}
		err := BlockIdentifier(result.BlockID)
		if err != nil {
			return fmt.Errorf("invalid block identifier (index: %d): %w", i, err)
		}
		err = a.Transaction(result.Transaction, false)
		if err != nil {
			return fmt.Errorf("invalid transaction (index: %d): %w", i, err)
		}
	}

	return nil
}
