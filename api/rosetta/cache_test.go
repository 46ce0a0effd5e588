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

package rosetta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-asserter/api/rosetta"
	"github.com/optakt/rosetta-asserter/testing/mocks"
)

func TestVerdicts_Check(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		verdicts, err := rosetta.NewVerdicts(1_000_000)
		require.NoError(t, err)

		calls := 0
		check := func() error {
			calls++
			return mocks.GenericError
		}

		hit, err := verdicts.Check(rosetta.EndpointBlock, mocks.GenericBlock(), check)
		assert.False(t, hit)
		assert.ErrorIs(t, err, mocks.GenericError)

		verdicts.Wait()

		hit, err = verdicts.Check(rosetta.EndpointBlock, mocks.GenericBlock(), check)
		assert.True(t, hit)
		assert.ErrorIs(t, err, mocks.GenericError)
		assert.Equal(t, 1, calls)
	})

	t.Run("keys depend on endpoint", func(t *testing.T) {
		t.Parallel()

		verdicts, err := rosetta.NewVerdicts(1_000_000)
		require.NoError(t, err)

		_, _ = verdicts.Check(rosetta.EndpointBlock, mocks.GenericBlock(), func() error { return nil })
		verdicts.Wait()

		hit, err := verdicts.Check(rosetta.EndpointTransaction, mocks.GenericBlock(), func() error { return mocks.GenericError })
		assert.False(t, hit)
		assert.Error(t, err)
	})

	t.Run("disabled cache", func(t *testing.T) {
		t.Parallel()

		verdicts, err := rosetta.NewVerdicts(0)
		require.NoError(t, err)

		calls := 0
		check := func() error {
			calls++
			return nil
		}

		for i := 0; i < 3; i++ {
			hit, err := verdicts.Check(rosetta.EndpointBlock, mocks.GenericBlock(), check)
			assert.False(t, hit)
			assert.NoError(t, err)
		}
		verdicts.Wait()

		assert.Equal(t, 3, calls)
	})
}
