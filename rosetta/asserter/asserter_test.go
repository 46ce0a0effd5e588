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

package asserter_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/testing/mocks"
)

func TestNewClientWithOptions(t *testing.T) {
	network := mocks.GenericNetwork
	genesis := mocks.GenericGenesisID

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		a, err := asserter.NewClientWithOptions(&network, &genesis, mocks.GenericOperationTypes, mocks.GenericStatuses, mocks.GenericErrors, nil, nil)

		require.NoError(t, err)
		assert.NotNil(t, a)
	})

	t.Run("handles invalid network", func(t *testing.T) {
		t.Parallel()

		invalid := identifier.Network{Blockchain: "bitcoin"}
		_, err := asserter.NewClientWithOptions(&invalid, &genesis, mocks.GenericOperationTypes, mocks.GenericStatuses, mocks.GenericErrors, nil, nil)

		assert.ErrorIs(t, err, asserter.ErrNetworkIdentifierNetworkMissing)
	})

	t.Run("handles duplicate statuses", func(t *testing.T) {
		t.Parallel()

		statuses := []*object.OperationStatus{
			{Status: "SUCCESS", Successful: true},
			{Status: "SUCCESS", Successful: false},
		}
		_, err := asserter.NewClientWithOptions(&network, &genesis, mocks.GenericOperationTypes, statuses, mocks.GenericErrors, nil, nil)

		assert.ErrorIs(t, err, asserter.ErrStringArrayDuplicateString)
	})

	t.Run("handles missing successful status", func(t *testing.T) {
		t.Parallel()

		statuses := []*object.OperationStatus{
			{Status: "FAILURE", Successful: false},
		}
		_, err := asserter.NewClientWithOptions(&network, &genesis, mocks.GenericOperationTypes, statuses, mocks.GenericErrors, nil, nil)

		assert.ErrorIs(t, err, asserter.ErrNoSuccessfulAllowedOperationStatuses)
	})

	t.Run("handles duplicate error codes", func(t *testing.T) {
		t.Parallel()

		errs := []*object.Error{
			{Code: 1, Message: "first"},
			{Code: 1, Message: "second"},
		}
		_, err := asserter.NewClientWithOptions(&network, &genesis, mocks.GenericOperationTypes, mocks.GenericStatuses, errs, nil, nil)

		assert.ErrorIs(t, err, asserter.ErrErrorCodeUsedMultipleTimes)
	})

	t.Run("handles duplicate operation types", func(t *testing.T) {
		t.Parallel()

		types := []string{"TRANSFER", "TRANSFER"}
		_, err := asserter.NewClientWithOptions(&network, &genesis, types, mocks.GenericStatuses, mocks.GenericErrors, nil, nil)

		assert.ErrorIs(t, err, asserter.ErrStringArrayDuplicateString)
	})

	t.Run("handles negative timestamp start index", func(t *testing.T) {
		t.Parallel()

		start := int64(-1)
		_, err := asserter.NewClientWithOptions(&network, &genesis, mocks.GenericOperationTypes, mocks.GenericStatuses, mocks.GenericErrors, &start, nil)

		assert.ErrorIs(t, err, asserter.ErrTimestampStartIndexInvalid)
	})

	t.Run("does not share slices with caller", func(t *testing.T) {
		t.Parallel()

		types := []string{"TRANSFER"}
		a, err := asserter.NewClientWithOptions(&network, &genesis, types, mocks.GenericStatuses, mocks.GenericErrors, nil, nil)
		require.NoError(t, err)

		types[0] = "MINT"

		assert.NoError(t, a.OperationType("TRANSFER"))
		assert.ErrorIs(t, a.OperationType("MINT"), asserter.ErrOperationTypeInvalid)
	})

	t.Run("does not share network or errors with caller", func(t *testing.T) {
		t.Parallel()

		network := mocks.GenericNetwork
		network.SubNetwork = &identifier.SubNetwork{Network: "shard-1", Metadata: map[string]interface{}{"producer": "alice"}}
		description := "node is unreachable"
		errs := []*object.Error{{Code: 1, Message: "unavailable", Description: &description}}

		a, err := asserter.NewClientWithOptions(&network, &genesis, mocks.GenericOperationTypes, mocks.GenericStatuses, errs, nil, nil)
		require.NoError(t, err)

		network.SubNetwork.Network = "shard-2"
		network.SubNetwork.Metadata["producer"] = "bob"
		description = "changed"
		errs[0].Message = "changed"

		cfg, err := a.ClientConfiguration()
		require.NoError(t, err)
		require.NotNil(t, cfg.NetworkID.SubNetwork)
		assert.Equal(t, "shard-1", cfg.NetworkID.SubNetwork.Network)
		assert.Equal(t, "alice", cfg.NetworkID.SubNetwork.Metadata["producer"])
		require.Len(t, cfg.AllowedErrors, 1)
		assert.Equal(t, "unavailable", cfg.AllowedErrors[0].Message)
		require.NotNil(t, cfg.AllowedErrors[0].Description)
		assert.Equal(t, "node is unreachable", *cfg.AllowedErrors[0].Description)

		// Modifying the returned configuration leaves the asserter untouched.
		cfg.NetworkID.SubNetwork.Network = "shard-3"
		again, err := a.ClientConfiguration()
		require.NoError(t, err)
		assert.Equal(t, "shard-1", again.NetworkID.SubNetwork.Network)
	})
}

func TestNewClientWithResponses(t *testing.T) {
	network := mocks.GenericNetwork

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		a, err := asserter.NewClientWithResponses(&network, mocks.GenericNetworkStatus(), mocks.GenericNetworkOptions(), nil)

		require.NoError(t, err)
		assert.NoError(t, a.Block(mocks.GenericBlock()))
	})

	t.Run("handles missing status", func(t *testing.T) {
		t.Parallel()

		_, err := asserter.NewClientWithResponses(&network, nil, mocks.GenericNetworkOptions(), nil)

		assert.ErrorIs(t, err, asserter.ErrNetworkStatusResponseIsNil)
	})

	t.Run("handles missing allow", func(t *testing.T) {
		t.Parallel()

		options := mocks.GenericNetworkOptions()
		options.Allow = nil
		_, err := asserter.NewClientWithResponses(&network, mocks.GenericNetworkStatus(), options, nil)

		assert.ErrorIs(t, err, asserter.ErrAllowIsNil)
	})
}

func TestNewClientWithFile(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		a := mocks.BaselineAsserter(t)
		cfg, err := a.ClientConfiguration()
		require.NoError(t, err)

		data, err := json.Marshal(cfg)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "asserter.json")
		err = os.WriteFile(path, data, 0600)
		require.NoError(t, err)

		loaded, err := asserter.NewClientWithFile(path)
		require.NoError(t, err)

		got, err := loaded.ClientConfiguration()
		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	})

	t.Run("handles missing file", func(t *testing.T) {
		t.Parallel()

		_, err := asserter.NewClientWithFile(filepath.Join(t.TempDir(), "missing.json"))

		assert.Error(t, err)
	})

	t.Run("handles invalid file content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "asserter.json")
		err := os.WriteFile(path, []byte(`{"network_identifier": 42}`), 0600)
		require.NoError(t, err)

		_, err = asserter.NewClientWithFile(path)

		assert.Error(t, err)
	})
}

func TestNewServer(t *testing.T) {
	network := mocks.GenericNetwork

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		a, err := asserter.NewServer(mocks.GenericOperationTypes, true, []*identifier.Network{&network}, mocks.GenericCallMethods, false, nil)

		require.NoError(t, err)
		assert.NotNil(t, a)
	})

	t.Run("handles no supported networks", func(t *testing.T) {
		t.Parallel()

		_, err := asserter.NewServer(mocks.GenericOperationTypes, true, nil, mocks.GenericCallMethods, false, nil)

		assert.ErrorIs(t, err, asserter.ErrNoSupportedNetworks)
	})

	t.Run("handles duplicate supported networks", func(t *testing.T) {
		t.Parallel()

		duplicate := mocks.GenericNetwork
		_, err := asserter.NewServer(mocks.GenericOperationTypes, true, []*identifier.Network{&network, &duplicate}, nil, false, nil)

		assert.ErrorIs(t, err, asserter.ErrSupportedNetworksDuplicate)
	})

	t.Run("networks differing by sub network are not duplicates", func(t *testing.T) {
		t.Parallel()

		sub := mocks.GenericNetwork
		sub.SubNetwork = &identifier.SubNetwork{Network: "shard 1"}
		_, err := asserter.NewServer(mocks.GenericOperationTypes, true, []*identifier.Network{&network, &sub}, nil, false, nil)

		assert.NoError(t, err)
	})

	t.Run("handles duplicate call methods", func(t *testing.T) {
		t.Parallel()

		methods := []string{"eth_call", "eth_call"}
		_, err := asserter.NewServer(mocks.GenericOperationTypes, true, []*identifier.Network{&network}, methods, false, nil)

		assert.ErrorIs(t, err, asserter.ErrCallMethodDuplicate)
	})

	t.Run("handles empty call method", func(t *testing.T) {
		t.Parallel()

		methods := []string{""}
		_, err := asserter.NewServer(mocks.GenericOperationTypes, true, []*identifier.Network{&network}, methods, false, nil)

		assert.ErrorIs(t, err, asserter.ErrCallMethodEmpty)
	})

	t.Run("does not share sub networks with caller", func(t *testing.T) {
		t.Parallel()

		sharded := mocks.GenericNetwork
		sharded.SubNetwork = &identifier.SubNetwork{Network: "shard-1"}

		a, err := asserter.NewServer(mocks.GenericOperationTypes, true, []*identifier.Network{&sharded}, nil, false, nil)
		require.NoError(t, err)

		sharded.SubNetwork.Network = "shard-2"

		requested := mocks.GenericNetwork
		requested.SubNetwork = &identifier.SubNetwork{Network: "shard-1"}
		assert.NoError(t, a.SupportedNetwork(&requested))
	})
}

func TestAsserter_OperationSuccessful(t *testing.T) {
	a := mocks.BaselineAsserter(t)

	t.Run("successful status", func(t *testing.T) {
		t.Parallel()

		ok, err := a.OperationSuccessful(mocks.GenericOperation(0, "10"))

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("failed status", func(t *testing.T) {
		t.Parallel()

		op := mocks.GenericOperation(0, "10")
		op.Status = &mocks.GenericStatusFailure
		ok, err := a.OperationSuccessful(op)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("handles unknown status", func(t *testing.T) {
		t.Parallel()

		op := mocks.GenericOperation(0, "10")
		status := "PENDING"
		op.Status = &status
		_, err := a.OperationSuccessful(op)

		assert.ErrorIs(t, err, asserter.ErrOperationStatusInvalid)
	})

	t.Run("handles server asserter", func(t *testing.T) {
		t.Parallel()

		_, err := mocks.BaselineServer(t).OperationSuccessful(mocks.GenericOperation(0, "10"))

		assert.ErrorIs(t, err, asserter.ErrAsserterNotInitialized)
	})
}

func TestAsserter_NotInitialized(t *testing.T) {
	var a *asserter.Asserter
	empty := &asserter.Asserter{}

	t.Run("nil asserter", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, a.Transaction(mocks.GenericTransaction(2), false), asserter.ErrAsserterNotInitialized)
		assert.ErrorIs(t, a.Block(mocks.GenericBlock()), asserter.ErrAsserterNotInitialized)
		assert.ErrorIs(t, a.Error(mocks.GenericErrors[0]), asserter.ErrAsserterNotInitialized)
	})

	t.Run("zero value asserter", func(t *testing.T) {
		t.Parallel()

		assert.ErrorIs(t, empty.Transaction(mocks.GenericTransaction(2), false), asserter.ErrAsserterNotInitialized)
		assert.ErrorIs(t, empty.MempoolTransactions(nil), asserter.ErrAsserterNotInitialized)
		_, err := empty.ClientConfiguration()
		assert.ErrorIs(t, err, asserter.ErrAsserterNotInitialized)
	})
}
