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

package mocks

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
)

// BaselineAsserter returns a client-side asserter for the generic network, which
// allows the generic operation types, statuses and errors.
func BaselineAsserter(t *testing.T) *asserter.Asserter {
	t.Helper()

	network := GenericNetwork
	genesis := GenericGenesisID
	a, err := asserter.NewClientWithOptions(
		&network,
		&genesis,
		GenericOperationTypes,
		GenericStatuses,
		GenericErrors,
		nil,
		nil,
	)
	require.NoError(t, err)

	return a
}

// BaselineServer returns a server-side asserter supporting the generic network
// and call methods, with historical balance lookups and mempool coins enabled.
func BaselineServer(t *testing.T) *asserter.Asserter {
	t.Helper()

	network := GenericNetwork
	a, err := asserter.NewServer(
		GenericOperationTypes,
		true,
		[]*identifier.Network{&network},
		GenericCallMethods,
		true,
		nil,
	)
	require.NoError(t, err)

	return a
}
