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

package failure_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/testing/mocks"
)

func TestFailure(t *testing.T) {
	t.Run("wraps sentinel error", func(t *testing.T) {
		t.Parallel()

		err := failure.New(mocks.GenericError, failure.WithString("hash", "abc"))

		assert.ErrorIs(t, err, mocks.GenericError)
		assert.Equal(t, mocks.GenericError, errors.Unwrap(err))
		assert.Equal(t, "dummy error (hash: abc)", err.Error())
	})

	t.Run("survives additional wrapping", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("could not validate block: %w", failure.New(mocks.GenericError))

		assert.ErrorIs(t, err, mocks.GenericError)

		var fail failure.Failure
		assert.ErrorAs(t, err, &fail)
		assert.Equal(t, mocks.GenericError.Error(), fail.Description.Text)
	})
}
