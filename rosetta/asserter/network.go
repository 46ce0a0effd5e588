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
	"github.com/optakt/rosetta-asserter/rosetta/response"
)

// NetworkIdentifier ensures a network identifier has a blockchain and a
// network, and that its sub network has a network too, if present.
func NetworkIdentifier(network *identifier.Network) error {
	if network == nil {
		return failure.New(ErrNetworkIdentifierIsNil)
	}
	if network.Blockchain == "" {
		return failure.New(ErrNetworkIdentifierBlockchainMissing)
	}
	if network.Network == "" {
		return failure.New(ErrNetworkIdentifierNetworkMissing, failure.WithString("blockchain", network.Blockchain))
	}
	return SubNetworkIdentifier(network.SubNetwork)
}

// SubNetworkIdentifier ensures that a sub network, if present, has a network.
func SubNetworkIdentifier(sub *identifier.SubNetwork) error {
	if sub == nil {
		return nil
	}
	if sub.Network == "" {
		return failure.New(ErrSubNetworkIdentifierInvalid)
	}
	return nil
}

// Peer ensures a peer has an identifier.
func Peer(peer *object.Peer) error {
	if peer == nil || peer.PeerID == "" {
		return failure.New(ErrPeerIDMissing)
	}
	return nil
}

// Version ensures the version of an implementation has a node version, and a
// non-empty middleware version, if present.
func Version(version *object.Version) error {
	if version == nil {
		return failure.New(ErrVersionIsNil)
	}
	if version.NodeVersion == "" {
		return failure.New(ErrVersionNodeVersionMissing)
	}
	if version.MiddlewareVersion != nil && *version.MiddlewareVersion == "" {
		return failure.New(ErrVersionMiddlewareVersionMissing)
	}
	return nil
}

// SyncStatus ensures the indexes of a sync status are not negative and that
// the stage is not empty, if present.
func SyncStatus(status *object.SyncStatus) error {
	if status == nil {
		return nil
	}
	if status.CurrentIndex != nil && *status.CurrentIndex < 0 {
		return failure.New(ErrSyncStatusCurrentIndexNegative, failure.WithInt64("current_index", *status.CurrentIndex))
	}
	if status.TargetIndex != nil && *status.TargetIndex < 0 {
		return failure.New(ErrSyncStatusTargetIndexNegative, failure.WithInt64("target_index", *status.TargetIndex))
	}
	if status.Stage != nil && *status.Stage == "" {
		return failure.New(ErrSyncStatusStageInvalid)
	}
	return nil
}

// NetworkStatusResponse validates the blocks, peers and sync status in a
// network status response.
func NetworkStatusResponse(status *response.Status) error {

	if status == nil {
		return failure.New(ErrNetworkStatusResponseIsNil)
	}

	err := BlockIdentifier(status.CurrentBlockID)
	if err != nil {
		return fmt.Errorf("invalid current block identifier: %w", err)
	}

	err = Timestamp(status.CurrentBlockTimestamp)
	if err != nil {
		return fmt.Errorf("invalid current block timestamp: %w", err)
	}

	err = BlockIdentifier(status.GenesisBlockID)
	if err != nil {
		return fmt.Errorf("invalid genesis block identifier: %w", err)
	}

	if status.OldestBlockID != nil {
		err = BlockIdentifier(status.OldestBlockID)
		if err != nil {
			return fmt.Errorf("invalid oldest block identifier: %w", err)
		}
	}

	err = SyncStatus(status.SyncStatus)
	if err != nil {
		return fmt.Errorf("invalid sync status: %w", err)
	}

	for i, peer := range status.Peers {
		err = Peer(peer)
		if err != nil {
			return fmt.Errorf("invalid peer (index: %d): %w", i, err)
		}
	}

	return nil
}

// OperationStatuses ensures there is at least one operation status, that
// statuses are not empty or duplicated, and that at least one of them is
// successful.
func OperationStatuses(statuses []*object.OperationStatus) error {

	if len(statuses) == 0 {
		return failure.New(ErrNoAllowedOperationStatuses)
	}

	names := make([]string, 0, len(statuses))
	successful := false
	for i, status := range statuses {
		if status == nil || status.Status == "" {
			return failure.New(ErrOperationStatusMissing, failure.WithInt("index", i))
		}
		if status.Successful {
			successful = true
		}
		names = append(names, status.Status)
	}

	err := StringArray("Allow.OperationStatuses", names)
	if err != nil {
		return err
	}

	if !successful {
		return failure.New(ErrNoSuccessfulAllowedOperationStatuses)
	}

	return nil
}

// OperationTypes ensures there is at least one operation type, and that the
// types are neither empty nor duplicated.
func OperationTypes(types []string) error {
	return StringArray("Allow.OperationTypes", types)
}

// BalanceExemptions ensures all balance exemptions are valid.
func BalanceExemptions(exemptions []*object.BalanceExemption) error {
	for i, exemption := range exemptions {
		err := BalanceExemption(exemption)
		if err != nil {
			return fmt.Errorf("invalid balance exemption (index: %d): %w", i, err)
		}
	}
	return nil
}

// BalanceExemption ensures a balance exemption has a known type and applies
// to a sub account address, a currency, or both.
func BalanceExemption(exemption *object.BalanceExemption) error {

	if exemption == nil {
		return failure.New(ErrBalanceExemptionIsNil)
	}

	switch exemption.ExemptionType {
	case object.ExemptionGreaterOrEqual, object.ExemptionLessOrEqual, object.ExemptionDynamic:
	default:
		return failure.New(ErrBalanceExemptionTypeInvalid, failure.WithString("type", string(exemption.ExemptionType)))
	}

	if exemption.Currency == nil && exemption.SubAccountAddress == nil {
		return failure.New(ErrBalanceExemptionMissingSubject)
	}

	if exemption.SubAccountAddress != nil && *exemption.SubAccountAddress == "" {
		return failure.New(ErrBalanceExemptionSubAccountAddressEmpty)
	}

	if exemption.Currency != nil {
		err := Currency(exemption.Currency)
		if err != nil {
			return fmt.Errorf("invalid balance exemption currency: %w", err)
		}
	}

	return nil
}

// Allow validates the statuses, types, errors, exemptions and call methods
// advertised in the network options.
func Allow(allow *object.Allow) error {

	if allow == nil {
		return failure.New(ErrAllowIsNil)
	}

	err := OperationStatuses(allow.OperationStatuses)
	if err != nil {
		return fmt.Errorf("invalid operation statuses: %w", err)
	}

	err = OperationTypes(allow.OperationTypes)
	if err != nil {
		return fmt.Errorf("invalid operation types: %w", err)
	}

	err = Errors(allow.Errors)
	if err != nil {
		return fmt.Errorf("invalid errors: %w", err)
	}

	if len(allow.CallMethods) > 0 {
		err = StringArray("Allow.CallMethods", allow.CallMethods)
		if err != nil {
			return fmt.Errorf("invalid call methods: %w", err)
		}
	}

	if len(allow.BalanceExemptions) > 0 && !allow.HistoricalBalanceLookup {
		return failure.New(ErrBalanceExemptionNoHistoricalLookup)
	}

	err = BalanceExemptions(allow.BalanceExemptions)
	if err != nil {
		return err
	}

	if allow.TimestampStartIndex != nil && *allow.TimestampStartIndex < 0 {
		return failure.New(ErrTimestampStartIndexInvalid, failure.WithInt64("timestamp_start_index", *allow.TimestampStartIndex))
	}

	return nil
}

// Errors ensures the given errors are valid, do not have any details and use
// unique codes.
func Errors(errs []*object.Error) error {
	codes := make(map[int32]struct{}, len(errs))
	for i, e := range errs {
		err := Error(e)
		if err != nil {
			return fmt.Errorf("invalid error (index: %d): %w", i, err)
		}
		if len(e.Details) > 0 {
			return failure.New(ErrErrorDetailsPopulated, failure.WithInt64("code", int64(e.Code)))
		}
		_, ok := codes[e.Code]
		if ok {
			return failure.New(ErrErrorCodeUsedMultipleTimes, failure.WithInt64("code", int64(e.Code)))
		}
		codes[e.Code] = struct{}{}
	}
	return nil
}

// NetworkOptionsResponse validates the version and allow sections of the
// network options.
func NetworkOptionsResponse(options *response.Options) error {

	if options == nil {
		return failure.New(ErrNetworkOptionsResponseIsNil)
	}

	err := Version(options.Version)
	if err != nil {
		return fmt.Errorf("invalid version: %w", err)
	}

	err = Allow(options.Allow)
	if err != nil {
		return fmt.Errorf("invalid allow: %w", err)
	}

	return nil
}

// NetworkListResponse ensures the listed networks are valid and unique.
func NetworkListResponse(networks *response.Networks) error {

	if networks == nil {
		return failure.New(ErrNetworkListResponseIsNil)
	}

	seen := make(map[string]struct{}, len(networks.NetworkIDs))
	for i, network := range networks.NetworkIDs {
		err := NetworkIdentifier(network)
		if err != nil {
			return fmt.Errorf("invalid network (index: %d): %w", i, err)
		}
		key := object.Key(network)
		_, ok := seen[key]
		if ok {
			return failure.New(ErrNetworkListResponseNetworksContainsDuplicates,
				failure.WithString("blockchain", network.Blockchain),
				failure.WithString("network", network.Network),
			)
		}
		seen[key] = struct{}{}
	}

	return nil
}
