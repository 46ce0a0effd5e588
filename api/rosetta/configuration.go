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

// DefaultConfig is the default configuration of the validation API.
var DefaultConfig = Config{
	CacheSize:  100_000_000, // ~100 MB
	SmartCodes: true,
}

// Config is the configuration of the validation API.
type Config struct {
	CacheSize  uint64
	SmartCodes bool
}

// Option is a function that modifies the configuration.
type Option func(*Config)

// WithCacheSize sets the maximum size of the verdict cache, in bytes of
// canonical payload encoding. A size of zero disables the cache.
func WithCacheSize(size uint64) Option {
	return func(cfg *Config) {
		cfg.CacheSize = size
	}
}

// WithSmartCodes determines whether failures are returned with meaningful
// HTTP status codes, or with the status code 500 the Rosetta API expects.
func WithSmartCodes(enabled bool) Option {
	return func(cfg *Config) {
		cfg.SmartCodes = enabled
	}
}
