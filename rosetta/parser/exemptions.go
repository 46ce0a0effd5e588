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
	"math/big"

	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// FindExemptions returns all balance exemptions that apply to the given
// account and currency. An exemption applies when its currency, if set, is
// equal to the currency, and its sub account address, if set, is equal to the
// address of the account's sub account.
func (p *Parser) FindExemptions(account *identifier.Account, currency *identifier.Currency) []*object.BalanceExemption {

	var matches []*object.BalanceExemption
	for _, exemption := range p.exemptions {

		if exemption.Currency != nil && !object.Equal(exemption.Currency, currency) {
			continue
		}

		if exemption.SubAccountAddress != nil {
			if account == nil || account.SubAccount == nil {
				continue
			}
			if account.SubAccount.Address != *exemption.SubAccountAddress {
				continue
			}
		}

		matches = append(matches, exemption)
	}

	return matches
}

// MatchBalanceExemption returns the first of the given exemptions that allows
// a balance to differ by the given amount. Differences that are not integers
// are never exempt.
func MatchBalanceExemption(exemptions []*object.BalanceExemption, difference string) *object.BalanceExemption {

	value, ok := new(big.Int).SetString(difference, 10)
	if !ok {
		return nil
	}

	for _, exemption := range exemptions {
		switch {
		case exemption.ExemptionType == object.ExemptionDynamic:
			return exemption
		case exemption.ExemptionType == object.ExemptionGreaterOrEqual && value.Sign() >= 0:
			return exemption
		case exemption.ExemptionType == object.ExemptionLessOrEqual && value.Sign() <= 0:
			return exemption
		}
	}

	return nil
}

// Exempt returns the exemption which allows the balance of the given account
// and currency to differ by the given amount, or nil if there is none.
func (p *Parser) Exempt(account *identifier.Account, currency *identifier.Currency, difference string) *object.BalanceExemption {
	return MatchBalanceExemption(p.FindExemptions(account, currency), difference)
}
