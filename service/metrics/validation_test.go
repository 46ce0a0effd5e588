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

package metrics_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-asserter/service/metrics"
)

func TestValidation(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		reg := prometheus.NewRegistry()
		m := metrics.NewValidation(reg)

		m.Valid("/block")
		m.Valid("/block")
		m.Invalid("/block", "block error")
		m.Malformed("/transaction")
		m.Cached("/block")

		expected := `
# HELP rosetta_validation_valid_payloads number of payloads that passed validation
# TYPE rosetta_validation_valid_payloads counter
rosetta_validation_valid_payloads{endpoint="/block"} 2
# HELP rosetta_validation_invalid_payloads number of payloads that failed validation
# TYPE rosetta_validation_invalid_payloads counter
rosetta_validation_invalid_payloads{category="block error",endpoint="/block"} 1
`
		err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
			"rosetta_validation_valid_payloads",
			"rosetta_validation_invalid_payloads",
		)
		assert.NoError(t, err)

		count, err := testutil.GatherAndCount(reg)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("separate registries", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			metrics.NewValidation(prometheus.NewRegistry())
			metrics.NewValidation(prometheus.NewRegistry())
		})
	})
}
