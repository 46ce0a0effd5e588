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

package response

import (
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// Networks implements the response schema for /network/list.
// See https://www.rosetta-api.org/docs/NetworkApi.html#response
type Networks struct {
	NetworkIDs []*identifier.Network `json:"network_identifiers"`
}

// Status implements the response schema for /network/status.
// See https://www.rosetta-api.org/docs/NetworkApi.html#response-1
type Status struct {
	CurrentBlockID        *identifier.Block  `json:"current_block_identifier"`
	CurrentBlockTimestamp int64              `json:"current_block_timestamp"`
	GenesisBlockID        *identifier.Block  `json:"genesis_block_identifier"`
	OldestBlockID         *identifier.Block  `json:"oldest_block_identifier,omitempty"`
	SyncStatus            *object.SyncStatus `json:"sync_status,omitempty"`
	Peers                 []*object.Peer     `json:"peers"`
}

// Options implements the response schema for /network/options.
// See https://www.rosetta-api.org/docs/NetworkApi.html#response-2
type Options struct {
	Version *object.Version `json:"version"`
	Allow   *object.Allow   `json:"allow"`
}
