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

import (
	"fmt"
	"sync/atomic"

	"github.com/fxamacker/cbor/v2"
)

var canonical cbor.EncMode

func init() {
	var err error
	canonical, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("could not initialize canonical encoding: %v", err))
	}
}

// unencodable numbers the keys of values that cannot be encoded.
var unencodable uint64

// Key returns a canonical representation of the given value that can be used
// for structural equality and as a map key. Map keys are sorted and empty
// optional fields are omitted, so two values have the same key if and only if
// all of their fields, including metadata, are equal.
//
// Every Rosetta type encodes, and so does metadata decoded from JSON. Values
// that do not, such as metadata holding channels or functions, get a key
// that is unique to the call, so they are never equal to anything.
func Key(v interface{}) string {
	data, err := canonical.Marshal(v)
	if err != nil {
		// 0xff is the CBOR break code, which never starts an encoded item.
		return fmt.Sprintf("\xff%d", atomic.AddUint64(&unencodable, 1))
	}
	return string(data)
}

// Equal checks whether two values are structurally equal.
func Equal(a interface{}, b interface{}) bool {
	return Key(a) == Key(b)
}
