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

package rosetta

import (
	"fmt"

	"github.com/OneOfOne/xxhash"
	"github.com/dgraph-io/ristretto"

	"github.com/optakt/rosetta-asserter/rosetta/object"
)

// verdict is the cached result of validating a payload. A nil error means the
// payload was valid. The encoded payload is kept to detect hash collisions.
type verdict struct {
	encoded string
	err     error
}

// Verdicts caches the results of validations. The asserter is immutable, so
// the same payload always results in the same verdict.
type Verdicts struct {
	cache *ristretto.Cache
	hash  func(string) uint64
}

// NewVerdicts creates a verdict cache with the given maximum size. A size of
// zero results in a cache that never holds anything.
func NewVerdicts(size uint64) (*Verdicts, error) {

	if size == 0 {
		return &Verdicts{hash: xxhash.ChecksumString64}, nil
	}

	// Ristretto recommends keeping ten times as many counters as items in the
	// cache when full. Assuming an average payload size of 1 kilobyte, this is
	// what we get.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(size) / 1000 * 10,
		MaxCost:     int64(size),
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize cache: %w", err)
	}

	v := Verdicts{
		cache: cache,
		hash:  xxhash.ChecksumString64,
	}

	return &v, nil
}

// Check returns the cached verdict for the payload on the given endpoint. If
// there is none, it runs the check and caches its verdict. The returned flag
// indicates whether the verdict came from the cache.
func (v *Verdicts) Check(endpoint string, payload interface{}, check func() error) (bool, error) {

	if v.cache == nil {
		return false, check()
	}

	encoded := endpoint + object.Key(payload)
	key := v.hash(encoded)
	cached, ok := v.cache.Get(key)
	if ok && cached.(verdict).encoded == encoded {
		return true, cached.(verdict).err
	}

	err := check()
	_ = v.cache.Set(key, verdict{encoded: encoded, err: err}, int64(len(encoded)))

	return false, err
}

// Wait blocks until all pending writes to the cache are applied.
func (v *Verdicts) Wait() {
	if v.cache == nil {
		return
	}
	v.cache.Wait()
}
