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

	"github.com/optakt/rosetta-asserter/rosetta/configuration"
	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/response"
)

// Asserter validates Rosetta requests and responses against the capabilities
// advertised by a node. The client-side asserter validates responses against
// the network options of a node, while the server-side asserter validates
// requests against the networks and features a node supports.
//
// An asserter is immutable once it has been created, which means that it can
// be shared between goroutines without any synchronization.
type Asserter struct {
	operationTypes []string
	typeSet        map[string]struct{}
	validations    configuration.Validations
	request        *requestAsserter
	response       *responseAsserter
}

type responseAsserter struct {
	network             identifier.Network
	genesisBlock        identifier.Block
	statuses            []*object.OperationStatus
	operationStatusMap  map[string]bool
	errorTypeMap        map[int32]*object.Error
	timestampStartIndex int64
}

type requestAsserter struct {
	historicalBalanceLookup bool
	supportedNetworks       []*identifier.Network
	callMethods             map[string]struct{}
	mempoolCoins            bool
}

// NewServer creates an asserter used to validate requests received by a
// server. The supported networks and call methods are checked for validity
// and duplicates.
func NewServer(
	types []string,
	historicalBalanceLookup bool,
	networks []*identifier.Network,
	methods []string,
	mempoolCoins bool,
	validations *configuration.Validations,
) (*Asserter, error) {

	err := OperationTypes(types)
	if err != nil {
		return nil, fmt.Errorf("invalid operation types: %w", err)
	}

	err = SupportedNetworks(networks)
	if err != nil {
		return nil, fmt.Errorf("invalid supported networks: %w", err)
	}

	callMethods := make(map[string]struct{}, len(methods))
	for _, method := range methods {
		if method == "" {
			return nil, failure.New(ErrCallMethodEmpty)
		}
		_, ok := callMethods[method]
		if ok {
			return nil, failure.New(ErrCallMethodDuplicate, failure.WithString("method", method))
		}
		callMethods[method] = struct{}{}
	}

	supported := make([]*identifier.Network, 0, len(networks))
	for _, network := range networks {
		network := copyNetwork(network)
		supported = append(supported, &network)
	}

	a := Asserter{
		operationTypes: copyStrings(types),
		typeSet:        toSet(types),
		validations:    copyValidations(validations),
		request: &requestAsserter{
			historicalBalanceLookup: historicalBalanceLookup,
			supportedNetworks:       supported,
			callMethods:             callMethods,
			mempoolCoins:            mempoolCoins,
		},
	}

	return &a, nil
}

// NewClientWithOptions creates an asserter used to validate responses from a
// node, using the given allowed operation types, statuses and errors. The
// timestamp start index defaults to the index right after the genesis block.
func NewClientWithOptions(
	network *identifier.Network,
	genesis *identifier.Block,
	types []string,
	statuses []*object.OperationStatus,
	errs []*object.Error,
	timestampStartIndex *int64,
	validations *configuration.Validations,
) (*Asserter, error) {

	err := NetworkIdentifier(network)
	if err != nil {
		return nil, fmt.Errorf("invalid network identifier: %w", err)
	}

	err = BlockIdentifier(genesis)
	if err != nil {
		return nil, fmt.Errorf("invalid genesis block identifier: %w", err)
	}

	err = OperationStatuses(statuses)
	if err != nil {
		return nil, fmt.Errorf("invalid operation statuses: %w", err)
	}

	err = OperationTypes(types)
	if err != nil {
		return nil, fmt.Errorf("invalid operation types: %w", err)
	}

	err = Errors(errs)
	if err != nil {
		return nil, fmt.Errorf("invalid errors: %w", err)
	}

	start := genesis.Index + 1
	if timestampStartIndex != nil {
		start = *timestampStartIndex
	}
	if start < 0 {
		return nil, failure.New(ErrTimestampStartIndexInvalid, failure.WithInt64("timestamp_start_index", start))
	}

	statusMap := make(map[string]bool, len(statuses))
	statusList := make([]*object.OperationStatus, 0, len(statuses))
	for _, status := range statuses {
		status := *status
		statusMap[status.Status] = status.Successful
		statusList = append(statusList, &status)
	}

	errorMap := make(map[int32]*object.Error, len(errs))
	for _, e := range errs {
		errorMap[e.Code] = copyError(e)
	}

	a := Asserter{
		operationTypes: copyStrings(types),
		typeSet:        toSet(types),
		validations:    copyValidations(validations),
		response: &responseAsserter{
			network:             copyNetwork(network),
			genesisBlock:        *genesis,
			statuses:            statusList,
			operationStatusMap:  statusMap,
			errorTypeMap:        errorMap,
			timestampStartIndex: start,
		},
	}

	return &a, nil
}

// NewClientWithResponses creates a client-side asserter from the responses
// of a node to the /network/status and /network/options endpoints.
func NewClientWithResponses(
	network *identifier.Network,
	status *response.Status,
	options *response.Options,
	validations *configuration.Validations,
) (*Asserter, error) {

	err := NetworkIdentifier(network)
	if err != nil {
		return nil, fmt.Errorf("invalid network identifier: %w", err)
	}

	err = NetworkStatusResponse(status)
	if err != nil {
		return nil, fmt.Errorf("invalid network status response: %w", err)
	}

	err = NetworkOptionsResponse(options)
	if err != nil {
		return nil, fmt.Errorf("invalid network options response: %w", err)
	}

	allow := options.Allow
	return NewClientWithOptions(
		network,
		status.GenesisBlockID,
		allow.OperationTypes,
		allow.OperationStatuses,
		allow.Errors,
		allow.TimestampStartIndex,
		validations,
	)
}

// NewClientWithFile creates a client-side asserter from the configuration
// file at the given path.
func NewClientWithFile(path string) (*Asserter, error) {

	cfg, err := configuration.Load(path)
	if err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}

	return NewClientWithOptions(
		cfg.NetworkID,
		cfg.GenesisBlockID,
		cfg.AllowedOperationTypes,
		cfg.AllowedOperationStatuses,
		cfg.AllowedErrors,
		cfg.AllowedTimestampStart,
		cfg.Validations,
	)
}

// ClientConfiguration returns the configuration of a client-side asserter,
// which can be written to a file and later loaded with `NewClientWithFile`.
func (a *Asserter) ClientConfiguration() (*configuration.Client, error) {

	if a == nil || a.response == nil {
		return nil, failure.New(ErrAsserterNotInitialized)
	}

	network := copyNetwork(&a.response.network)
	genesis := a.response.genesisBlock
	start := a.response.timestampStartIndex

	statuses := make([]*object.OperationStatus, 0, len(a.response.statuses))
	for _, status := range a.response.statuses {
		status := *status
		statuses = append(statuses, &status)
	}

	errs := make([]*object.Error, 0, len(a.response.errorTypeMap))
	for _, e := range a.response.errorTypeMap {
		errs = append(errs, copyError(e))
	}
	sortErrors(errs)

	validations := a.validations

	cfg := configuration.Client{
		NetworkID:                &network,
		GenesisBlockID:           &genesis,
		AllowedOperationTypes:    copyStrings(a.operationTypes),
		AllowedOperationStatuses: statuses,
		AllowedErrors:            errs,
		AllowedTimestampStart:    &start,
		Validations:              &validations,
	}

	return &cfg, nil
}

// OperationSuccessful returns whether the status of the given operation
// indicates success.
func (a *Asserter) OperationSuccessful(operation *object.Operation) (bool, error) {

	if a == nil || a.response == nil {
		return false, failure.New(ErrAsserterNotInitialized)
	}

	if operation == nil {
		return false, failure.New(ErrOperationIsNil)
	}

	if operation.Status == nil || *operation.Status == "" {
		return false, failure.New(ErrOperationStatusMissing)
	}

	successful, ok := a.response.operationStatusMap[*operation.Status]
	if !ok {
		return false, failure.New(ErrOperationStatusInvalid, failure.WithString("status", *operation.Status))
	}

	return successful, nil
}

// initialized returns whether the asserter was created by one of its
// constructors.
func (a *Asserter) initialized() bool {
	return a != nil && (a.request != nil || a.response != nil)
}
