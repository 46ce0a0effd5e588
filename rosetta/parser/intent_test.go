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

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/parser"
	"github.com/optakt/rosetta-asserter/testing/mocks"
)

func TestExpectedOperation(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		intent := mocks.GenericOperation(0, "-10")
		observed := mocks.GenericOperation(0, "-10")
		observed.ID.Index = 3
		observed.Metadata = map[string]interface{}{"ignored": true}

		assert.NoError(t, parser.ExpectedOperation(intent, observed))
	})

	t.Run("handles account mismatch", func(t *testing.T) {
		t.Parallel()

		err := parser.ExpectedOperation(mocks.GenericOperation(0, "-10"), mocks.GenericOperation(1, "-10"))

		assert.ErrorIs(t, err, parser.ErrExpectedOperationAccountMismatch)
	})

	t.Run("handles amount mismatch", func(t *testing.T) {
		t.Parallel()

		err := parser.ExpectedOperation(mocks.GenericOperation(0, "-10"), mocks.GenericOperation(0, "-11"))

		assert.ErrorIs(t, err, parser.ErrExpectedOperationAmountMismatch)
	})

	t.Run("handles type mismatch", func(t *testing.T) {
		t.Parallel()

		observed := mocks.GenericOperation(0, "-10")
		observed.Type = mocks.GenericOperationTypes[1]

		err := parser.ExpectedOperation(mocks.GenericOperation(0, "-10"), observed)

		assert.ErrorIs(t, err, parser.ErrExpectedOperationTypeMismatch)
	})

	t.Run("handles nil operation", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			err := parser.ExpectedOperation(mocks.GenericOperation(0, "-10"), nil)
			assert.ErrorIs(t, err, asserter.ErrOperationIsNil)
		})
	})
}

func TestParser_ExpectedOperations(t *testing.T) {
	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)
		intent := mocks.GenericOperations(2)
		observed := []*object.Operation{
			mocks.GenericOperation(1, "10"),
			mocks.GenericOperation(0, "-10"),
		}

		err := p.ExpectedOperations(intent, observed, true, true)

		assert.NoError(t, err)
	})

	t.Run("tolerates extra operation when allowed", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)
		intent := mocks.GenericOperations(2)
		observed := append(mocks.GenericOperations(2), mocks.GenericOperation(2, "-1"))

		err := p.ExpectedOperations(intent, observed, false, false)

		assert.NoError(t, err)
	})

	t.Run("handles extra operation", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)
		intent := mocks.GenericOperations(2)
		observed := append(mocks.GenericOperations(2), mocks.GenericOperation(2, "-1"))

		err := p.ExpectedOperations(intent, observed, true, false)

		assert.ErrorIs(t, err, parser.ErrExpectedOperationsExtraOperation)
	})

	t.Run("handles missing operation", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)
		intent := mocks.GenericOperations(2)
		observed := mocks.GenericOperations(1)

		err := p.ExpectedOperations(intent, observed, true, false)

		assert.ErrorIs(t, err, parser.ErrExpectedOperationsMissing)
	})

	t.Run("handles unsuccessful operation", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)
		intent := mocks.GenericOperations(2)
		observed := mocks.GenericOperations(2)
		observed[1].Status = &mocks.GenericStatusFailure

		err := p.ExpectedOperations(intent, observed, false, false)
		require.NoError(t, err)

		err = p.ExpectedOperations(intent, observed, false, true)
		assert.ErrorIs(t, err, parser.ErrExpectedOperationsMissing)
	})

	t.Run("handles unknown status", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)
		intent := mocks.GenericOperations(1)
		observed := mocks.GenericOperations(1)
		status := "PENDING"
		observed[0].Status = &status

		err := p.ExpectedOperations(intent, observed, false, true)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, parser.ErrExpectedOperationsMissing)
	})

	t.Run("handles nil observed operation", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)

		assert.NotPanics(t, func() {
			err := p.ExpectedOperations(mocks.GenericOperations(2), []*object.Operation{nil}, false, false)
			assert.ErrorIs(t, err, asserter.ErrOperationIsNil)
		})
	})

	t.Run("handles nil intended operation", func(t *testing.T) {
		t.Parallel()

		p := parser.New(mocks.BaselineAsserter(t), nil, nil)

		assert.NotPanics(t, func() {
			err := p.ExpectedOperations([]*object.Operation{nil}, mocks.GenericOperations(2), false, false)
			assert.ErrorIs(t, err, asserter.ErrOperationIsNil)
		})
	})
}

func TestExpectedSigners(t *testing.T) {
	payload := func(index int) *object.SigningPayload {
		account := mocks.GenericAccount(index)
		return &object.SigningPayload{AccountID: &account, HexBytes: "deadbeef"}
	}
	signer := func(index int) *identifier.Account {
		account := mocks.GenericAccount(index)
		return &account
	}

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		intent := []*object.SigningPayload{payload(0), payload(1), payload(0)}
		observed := []*identifier.Account{signer(1), signer(0)}

		assert.NoError(t, parser.ExpectedSigners(intent, observed))
	})

	t.Run("handles missing signer", func(t *testing.T) {
		t.Parallel()

		intent := []*object.SigningPayload{payload(0), payload(1)}
		observed := []*identifier.Account{signer(0)}

		err := parser.ExpectedSigners(intent, observed)

		assert.ErrorIs(t, err, parser.ErrExpectedSignerMissing)
	})

	t.Run("handles unexpected signer", func(t *testing.T) {
		t.Parallel()

		intent := []*object.SigningPayload{payload(0)}
		observed := []*identifier.Account{signer(0), signer(2)}

		err := parser.ExpectedSigners(intent, observed)

		assert.ErrorIs(t, err, parser.ErrExpectedSignerUnexpectedSigner)
	})

	t.Run("handles no signers", func(t *testing.T) {
		t.Parallel()

		err := parser.ExpectedSigners([]*object.SigningPayload{payload(0)}, nil)

		assert.ErrorIs(t, err, parser.ErrExpectedSignerMissing)
	})

	t.Run("handles nil payload", func(t *testing.T) {
		t.Parallel()

		account := mocks.GenericAccount(0)

		assert.NotPanics(t, func() {
			err := parser.ExpectedSigners([]*object.SigningPayload{nil}, []*identifier.Account{&account})
			assert.ErrorIs(t, err, asserter.ErrSigningPayloadIsNil)
		})
	})
}

func TestErr(t *testing.T) {
	t.Run("intent error", func(t *testing.T) {
		t.Parallel()

		ok, category := parser.Err(parser.ExpectedSigners([]*object.SigningPayload{payload0()}, nil))

		assert.True(t, ok)
		assert.Equal(t, "intent error", category)
	})

	t.Run("match error", func(t *testing.T) {
		t.Parallel()

		_, err := parser.MatchOperations(&parser.Descriptions{}, nil)
		ok, category := parser.Err(err)

		assert.True(t, ok)
		assert.Equal(t, "match error", category)
	})

	t.Run("unknown error", func(t *testing.T) {
		t.Parallel()

		ok, category := parser.Err(mocks.GenericError)

		assert.False(t, ok)
		assert.Empty(t, category)
	})
}

func payload0() *object.SigningPayload {
	account := mocks.GenericAccount(0)
	return &object.SigningPayload{AccountID: &account}
}
