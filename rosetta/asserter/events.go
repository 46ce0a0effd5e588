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
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/response"
)

// BlockEvent ensures a block event has a non-negative sequence, a valid block
// and a known type.
func BlockEvent(event *object.BlockEvent) error {
	if event == nil {
		return failure.New(ErrBlockEventIsNil)
	}
	if event.Sequence < 0 {
		return failure.New(ErrSequenceInvalid, failure.WithInt64("sequence", event.Sequence))
	}
	err := BlockIdentifier(&event.BlockID)
	if err != nil {
		return fmt.Errorf("invalid block identifier: %w", err)
	}
	switch event.Type {
	case object.BlockAdded, object.BlockRemoved:
		return nil
	default:
		return failure.New(ErrBlockEventTypeInvalid, failure.WithString("type", string(event.Type)))
	}
}

// EventsBlocksResponse ensures the events of a response are valid and have
// contiguous sequence numbers.
func EventsBlocksResponse(events *response.Events) error {

	if events == nil {
		return failure.New(ErrEventsResponseIsNil)
	}

	if events.MaxSequence < 0 {
		return failure.New(ErrMaxSequenceInvalid, failure.WithInt64("max_sequence", events.MaxSequence))
	}

	first := int64(-1)
	for i, event := range events.Events {
		err := BlockEvent(event)
		if err != nil {
			return fmt.Errorf("invalid block event (index: %d): %w", i, err)
		}
		if first == -1 {
			first = event.Sequence
		}
		if event.Sequence != first+int64(i) {
			return failure.New(ErrSequenceOutOfOrder,
				failure.WithInt64("expected", first+int64(i)),
				failure.WithInt64("sequence", event.Sequence),
			)
		}
	}

	return nil
}
