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

package configuration

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// Client is the configuration used to build a client-side asserter without
// querying a node for its network status and options first.
type Client struct {
	NetworkID                *identifier.Network        `json:"network_identifier"`
	GenesisBlockID           *identifier.Block          `json:"genesis_block_identifier"`
	AllowedOperationTypes    []string                   `json:"allowed_operation_types"`
	AllowedOperationStatuses []*object.OperationStatus  `json:"allowed_operation_statuses"`
	AllowedErrors            []*object.Error            `json:"allowed_errors"`
	AllowedTimestampStart    *int64                     `json:"allowed_timestamp_start_index,omitempty"`
	BalanceExemptions        []*object.BalanceExemption `json:"balance_exemptions,omitempty"`
	Validations              *Validations               `json:"validations,omitempty"`
}

// Load reads the client configuration at the given path.
func Load(path string) (*Client, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file: %w", err)
	}

	var client Client
	err = json.Unmarshal(data, &client)
	if err != nil {
		return nil, fmt.Errorf("could not decode configuration file (path: %s): %w", path, err)
	}

	return &client, nil
}

// LoadValidations reads the payment and fee validations at the given path. An
// empty path results in disabled validations.
func LoadValidations(path string) (*Validations, error) {

	if path == "" {
		return &Validations{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read validations file: %w", err)
	}

	var validations Validations
	err = json.Unmarshal(data, &validations)
	if err != nil {
		return nil, fmt.Errorf("could not decode validations file (path: %s): %w", path, err)
	}

	return &validations, nil
}
