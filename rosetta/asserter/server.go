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

	"github.com/optakt/rosetta-asserter/rosetta/failure"
	"github.com/optakt/rosetta-asserter/rosetta/identifier"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/request"
)

// SupportedNetworks ensures there is at least one supported network, and
// that all of them are valid and unique.
func SupportedNetworks(networks []*identifier.Network) error {

	if len(networks) == 0 {
		return failure.New(ErrNoSupportedNetworks)
	}

	seen := make(map[string]struct{}, len(networks))
	for i, network := range networks {
		err := NetworkIdentifier(network)
		if err != nil {
			return fmt.Errorf("invalid network (index: %d): %w", i, err)
		}
		key := object.Key(network)
		_, ok := seen[key]
		if ok {
			return failure.New(ErrSupportedNetworksDuplicate,
				failure.WithString("blockchain", network.Blockchain),
				failure.WithString("network", network.Network),
			)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// SupportedNetwork ensures the requested network is one of the networks
// supported by the server.
func (a *Asserter) SupportedNetwork(network *identifier.Network) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	key := object.Key(network)
	for _, supported := range a.request.supportedNetworks {
		if object.Key(supported) == key {
			return nil
		}
	}

	return failure.New(ErrRequestedNetworkNotSupported,
		failure.WithString("blockchain", network.Blockchain),
		failure.WithString("network", network.Network),
	)
}

// ValidSupportedNetwork ensures the requested network is both valid and
// supported.
func (a *Asserter) ValidSupportedNetwork(network *identifier.Network) error {
	err := NetworkIdentifier(network)
	if err != nil {
		return err
	}
	return a.SupportedNetwork(network)
}

// AccountBalanceRequest validates an account balance request. Requesting the
// balance at a specific block requires historical balance lookups.
func (a *Asserter) AccountBalanceRequest(req *request.Balance) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrAccountBalanceRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	err = AccountIdentifier(req.AccountID)
	if err != nil {
		return fmt.Errorf("invalid account: %w", err)
	}

	if req.BlockID != nil {
		if !a.request.historicalBalanceLookup {
			return failure.New(ErrAccountBalanceRequestHistoricalBalanceLookupNotSupported)
		}
		err = PartialBlockIdentifier(req.BlockID)
		if err != nil {
			return fmt.Errorf("invalid block: %w", err)
		}
	}

	return uniqueCurrencies(req.Currencies)
}

// AccountCoinsRequest validates an account coins request. Including the
// mempool requires mempool coins support.
func (a *Asserter) AccountCoinsRequest(req *request.Coins) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrAccountCoinsRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	err = AccountIdentifier(req.AccountID)
	if err != nil {
		return fmt.Errorf("invalid account: %w", err)
	}

	if req.IncludeMempool && !a.request.mempoolCoins {
		return failure.New(ErrMempoolCoinsNotSupported)
	}

	return uniqueCurrencies(req.Currencies)
}

// BlockRequest validates a block request.
func (a *Asserter) BlockRequest(req *request.Block) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrBlockRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	return PartialBlockIdentifier(req.BlockID)
}

// BlockTransactionRequest validates a block transaction request.
func (a *Asserter) BlockTransactionRequest(req *request.Transaction) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrBlockTransactionRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	err = BlockIdentifier(req.BlockID)
	if err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	return TransactionIdentifier(req.TransactionID)
}

// ConstructionMetadataRequest validates a construction metadata request.
func (a *Asserter) ConstructionMetadataRequest(req *request.Metadata) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrConstructionMetadataRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	for i, key := range req.PublicKeys {
		err = PublicKey(key)
		if err != nil {
			return fmt.Errorf("invalid public key (index: %d): %w", i, err)
		}
	}

	return nil
}

// ConstructionSubmitRequest validates a construction submit request.
func (a *Asserter) ConstructionSubmitRequest(req *request.Submit) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrConstructionSubmitRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	if req.SignedTransaction == "" {
		return failure.New(ErrConstructionSubmitRequestSignedTxEmpty)
	}

	return nil
}

// MempoolTransactionRequest validates a mempool transaction request.
func (a *Asserter) MempoolTransactionRequest(req *request.MempoolTransaction) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrMempoolTransactionRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	return TransactionIdentifier(req.TransactionID)
}

// MetadataRequest validates a network list request.
func (a *Asserter) MetadataRequest(req *request.Networks) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrMetadataRequestIsNil)
	}

	return nil
}

// NetworkRequest validates a network status or options request.
func (a *Asserter) NetworkRequest(req *request.Network) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrNetworkRequestIsNil)
	}

	return a.ValidSupportedNetwork(req.NetworkID)
}

// ConstructionDeriveRequest validates a construction derive request.
func (a *Asserter) ConstructionDeriveRequest(req *request.Derive) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrConstructionDeriveRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	return PublicKey(req.PublicKey)
}

// ConstructionPreprocessRequest validates a construction preprocess request.
func (a *Asserter) ConstructionPreprocessRequest(req *request.Preprocess) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrConstructionPreprocessRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	err = a.Operations(req.Operations, true)
	if err != nil {
		return fmt.Errorf("invalid operations: %w", err)
	}

	if len(req.MaxFee) > 0 {
		err = AssertUniqueAmounts(req.MaxFee)
		if err != nil {
			return fmt.Errorf("invalid max fee: %w", err)
		}
	}

	if req.SuggestedFeeMultiplier != nil && *req.SuggestedFeeMultiplier < 0 {
		return failure.New(ErrConstructionPreprocessRequestSuggestedFeeMultiplierIsNeg)
	}

	return nil
}

// ConstructionPayloadsRequest validates a construction payloads request.
func (a *Asserter) ConstructionPayloadsRequest(req *request.Payloads) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrConstructionPayloadsRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	err = a.Operations(req.Operations, true)
	if err != nil {
		return fmt.Errorf("invalid operations: %w", err)
	}

	for i, key := range req.PublicKeys {
		err = PublicKey(key)
		if err != nil {
			return fmt.Errorf("invalid public key (index: %d): %w", i, err)
		}
	}

	return nil
}

// ConstructionCombineRequest validates a construction combine request.
func (a *Asserter) ConstructionCombineRequest(req *request.Combine) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrConstructionCombineRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	if req.UnsignedTransaction == "" {
		return failure.New(ErrConstructionCombineRequestUnsignedTxEmpty)
	}

	return Signatures(req.Signatures)
}

// ConstructionHashRequest validates a construction hash request.
func (a *Asserter) ConstructionHashRequest(req *request.Hash) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrConstructionHashRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	if req.SignedTransaction == "" {
		return failure.New(ErrConstructionHashRequestSignedTxEmpty)
	}

	return nil
}

// ConstructionParseRequest validates a construction parse request.
func (a *Asserter) ConstructionParseRequest(req *request.Parse) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrConstructionParseRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	if req.Transaction == "" {
		return failure.New(ErrConstructionParseRequestEmpty)
	}

	return nil
}

// CallRequest validates a call request. The method has to be one of the call
// methods supported by the server.
func (a *Asserter) CallRequest(req *request.Call) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrCallRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	if req.Method == "" {
		return failure.New(ErrCallMethodEmpty)
	}

	_, ok := a.request.callMethods[req.Method]
	if !ok {
		return failure.New(ErrCallMethodUnsupported, failure.WithString("method", req.Method))
	}

	return nil
}

// EventsBlocksRequest validates an events blocks request.
func (a *Asserter) EventsBlocksRequest(req *request.Events) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrEventsBlocksRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	return offsetAndLimit(req.Offset, req.Limit)
}

// SearchTransactionsRequest validates a search transactions request.
func (a *Asserter) SearchTransactionsRequest(req *request.Search) error {

	if a == nil || a.request == nil {
		return failure.New(ErrAsserterNotInitialized)
	}

	if req == nil {
		return failure.New(ErrSearchTransactionsRequestIsNil)
	}

	err := a.ValidSupportedNetwork(req.NetworkID)
	if err != nil {
		return fmt.Errorf("invalid network: %w", err)
	}

	if req.Operator != nil {
		switch *req.Operator {
		case request.OperatorOr, request.OperatorAnd:
		default:
			return failure.New(ErrOperatorInvalid, failure.WithString("operator", string(*req.Operator)))
		}
	}

	if req.MaxBlock != nil && *req.MaxBlock < 0 {
		return failure.New(ErrMaxBlockInvalid, failure.WithInt64("max_block", *req.MaxBlock))
	}

	err = offsetAndLimit(req.Offset, req.Limit)
	if err != nil {
		return err
	}

	if req.TransactionID != nil {
		err = TransactionIdentifier(req.TransactionID)
		if err != nil {
			return fmt.Errorf("invalid transaction: %w", err)
		}
	}

	if req.AccountID != nil {
		err = AccountIdentifier(req.AccountID)
		if err != nil {
			return fmt.Errorf("invalid account: %w", err)
		}
	}

	if req.CoinID != nil {
		err = CoinIdentifier(req.CoinID)
		if err != nil {
			return fmt.Errorf("invalid coin: %w", err)
		}
	}

	if req.Currency != nil {
		err = Currency(req.Currency)
		if err != nil {
			return fmt.Errorf("invalid currency: %w", err)
		}
	}

	return nil
}

func offsetAndLimit(offset *int64, limit *int64) error {
	if offset != nil && *offset < 0 {
		return failure.New(ErrOffsetIsNegative, failure.WithInt64("offset", *offset))
	}
	if limit != nil && *limit < 0 {
		return failure.New(ErrLimitIsNegative, failure.WithInt64("limit", *limit))
	}
	return nil
}

func uniqueCurrencies(currencies []*identifier.Currency) error {
	for i, currency := range currencies {
		err := Currency(currency)
		if err != nil {
			return fmt.Errorf("invalid currency (index: %d): %w", i, err)
		}
	}
	duplicate := ContainsDuplicateCurrency(currencies)
	if duplicate != nil {
		return failure.New(ErrDuplicateCurrency, failure.WithString("symbol", duplicate.Symbol))
	}
	return nil
}
