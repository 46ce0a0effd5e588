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

package failure

// Failure is the error returned when a validation fails. It wraps the sentinel
// error that identifies the kind of failure, so callers can check for it with
// `errors.Is`, and carries the offending values in its description.
type Failure struct {
	Err         error
	Description Description
}

// New creates a failure of the given kind with the given fields.
func New(err error, fields ...FieldFunc) Failure {
	f := Failure{
		Err:         err,
		Description: NewDescription(err.Error(), fields...),
	}
	return f
}

// Error implements the error interface.
func (f Failure) Error() string {
	return f.Description.String()
}

// Unwrap returns the sentinel error of the failure.
func (f Failure) Unwrap() error {
	return f.Err
}
