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
	"sort"
	"strings"

	"github.com/optakt/rosetta-asserter/rosetta/configuration"
	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// StringArray ensures a string array is not empty and contains neither empty
// nor duplicate strings. The name is used to describe the array on failure.
func StringArray(name string, values []string) error {
	if len(values) == 0 {
		return failure.New(ErrStringArrayEmpty, failure.WithString("array", name))
	}
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		if value == "" {
			return failure.New(ErrStringArrayEmptyString, failure.WithString("array", name))
		}
		_, ok := seen[value]
		if ok {
			return failure.New(ErrStringArrayDuplicateString,
				failure.WithString("array", name),
				failure.WithString("value", value),
			)
		}
		seen[value] = struct{}{}
	}
	return nil
}

// AccountArray ensures an account array is not empty and contains neither
// invalid nor duplicate accounts.
func AccountArray(name string, accounts []*identifier.Account) error {
	if len(accounts) == 0 {
		return failure.New(ErrAccountArrayEmpty, failure.WithString("array", name))
	}
	seen := make(map[string]struct{}, len(accounts))
	for i, account := range accounts {
		err := AccountIdentifier(account)
		if err != nil {
			return failure.New(ErrAccountArrayInvalidAccount,
				failure.WithString("array", name),
				failure.WithInt("index", i),
				failure.WithErr(err),
			)
		}
		key := object.Key(account)
		_, ok := seen[key]
		if ok {
			return failure.New(ErrAccountArrayDuplicateAccount,
				failure.WithString("array", name),
				failure.WithString("address", account.Address),
			)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// hexZero returns whether the given hex-encoded bytes are all zero.
func hexZero(hex string) bool {
	return strings.Trim(hex, "0") == ""
}

func copyStrings(values []string) []string {
	dup := make([]string, len(values))
	copy(dup, values)
	return dup
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

func copyValidations(validations *configuration.Validations) configuration.Validations {
	if validations == nil {
		return configuration.Validations{}
	}
	return *validations
}

// copyNetwork returns a network identifier that shares no sub network or
// metadata with the given one.
func copyNetwork(network *identifier.Network) identifier.Network {
	dup := *network
	if network.SubNetwork != nil {
		sub := *network.SubNetwork
		sub.Metadata = copyMetadata(network.SubNetwork.Metadata)
		dup.SubNetwork = &sub
	}
	return dup
}

func copyError(err *object.Error) *object.Error {
	dup := *err
	if err.Description != nil {
		description := *err.Description
		dup.Description = &description
	}
	dup.Details = copyMetadata(err.Details)
	return &dup
}

// copyMetadata deep copies the maps and slices of decoded JSON metadata.
func copyMetadata(metadata map[string]interface{}) map[string]interface{} {
	if metadata == nil {
		return nil
	}
	dup := make(map[string]interface{}, len(metadata))
	for key, value := range metadata {
		dup[key] = copyValue(value)
	}
	return dup
}

func copyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return copyMetadata(v)
	case []interface{}:
		dup := make([]interface{}, len(v))
		for i, item := range v {
			dup[i] = copyValue(item)
		}
		return dup
	default:
		return v
	}
}

func sortErrors(errs []*object.Error) {
	sort.Slice(errs, func(i int, j int) bool {
		return errs[i].Code < errs[j].Code
	})
}
