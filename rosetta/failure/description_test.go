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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/testing/mocks"
)

func TestDescription(t *testing.T) {
	descBody := "test"
	index := 84
	network := mocks.GenericNetwork.Network
	symbols := []string{"BTC", "ETH"}

	t.Run("full description with fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(
			descBody,
			failure.WithErr(mocks.GenericError),
			failure.WithInt64("height", mocks.GenericHeight),
			failure.WithValue("block", mocks.GenericBlockID),
			failure.WithInt("index", index),
			failure.WithBool("retriable", true),
			failure.WithString("network", network),
			failure.WithStrings("symbols", symbols...),
		)

		assert.Equal(t, desc.Text, descBody)
		assert.NotEqual(t, desc.String(), descBody)
		assert.Contains(t, desc.Fields.String(), mocks.GenericError.Error())
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("height: %v", mocks.GenericHeight))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("block: %v", mocks.GenericBlockID))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("index: %v", index))
		assert.Contains(t, desc.Fields.String(), "retriable: true")
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("network: %v", network))
		assert.Contains(t, desc.Fields.String(), fmt.Sprintf("symbols: %v", symbols))
	})

	t.Run("no fields", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(descBody)

		assert.Equal(t, desc.Text, descBody)
		assert.Equal(t, desc.String(), descBody)
	})

	t.Run("iterates fields in order", func(t *testing.T) {
		t.Parallel()

		desc := failure.NewDescription(
			descBody,
			failure.WithString("first", "a"),
			failure.WithString("second", "b"),
		)

		var keys []string
		desc.Fields.Iterate(func(key string, _ interface{}) {
			keys = append(keys, key)
		})

		assert.Equal(t, []string{"first", "second"}, keys)
	})
}
