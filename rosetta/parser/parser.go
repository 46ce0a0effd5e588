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

package parser

import (
	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// ExemptOperation returns whether an operation should be left out of balance
// computations, regardless of its status.
type ExemptOperation func(operation *object.Operation) bool

// Parser computes balance changes and matches operations against intents,
// using an asserter to decide which operations were successful.
type Parser struct {
	asserter   *asserter.Asserter
	exempt     ExemptOperation
	exemptions []*object.BalanceExemption
}

// New creates a parser. The exempt function is optional.
func New(a *asserter.Asserter, exempt ExemptOperation, exemptions []*object.BalanceExemption) *Parser {

	list := make([]*object.BalanceExemption, 0, len(exemptions))
	for _, exemption := range exemptions {
		if exemption == nil {
			continue
		}
		exemption := *exemption
		list = append(list, &exemption)
	}

	p := Parser{
		asserter:   a,
		exempt:     exempt,
		exemptions: list,
	}

	return &p
}
