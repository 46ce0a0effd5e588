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

package object

// Error represents an error as defined by the Rosetta API specification. The
// code, message and retriable flag of an error are static and advertised in
// the network options, while the description and details give more granular
// information about a specific occurrence.
// See: https://www.rosetta-api.org/docs/api_objects.html#error
type Error struct {
	Code        int32                  `json:"code"`
	Message     string                 `json:"message"`
	Description *string                `json:"description,omitempty"`
	Retriable   bool                   `json:"retriable"`
	Details     map[string]interface{} `json:"details,omitempty"`
}
