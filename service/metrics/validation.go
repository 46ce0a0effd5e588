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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespaceValidation = "rosetta_validation"

// Validation counts the verdicts of the validation API and exposes them as
// prometheus counters.
type Validation struct {
	valid     *prometheus.CounterVec
	invalid   *prometheus.CounterVec
	malformed *prometheus.CounterVec
	cached    *prometheus.CounterVec
}

// NewValidation creates the validation counters and registers them with the
// given registerer.
func NewValidation(reg prometheus.Registerer) *Validation {
	factory := promauto.With(reg)

	validOpts := prometheus.CounterOpts{
		Name:      "valid_payloads",
		Namespace: namespaceValidation,
		Help:      "number of payloads that passed validation",
	}
	valid := factory.NewCounterVec(validOpts, []string{"endpoint"})

	invalidOpts := prometheus.CounterOpts{
		Name:      "invalid_payloads",
		Namespace: namespaceValidation,
		Help:      "number of payloads that failed validation",
	}
	invalid := factory.NewCounterVec(invalidOpts, []string{"endpoint", "category"})

	malformedOpts := prometheus.CounterOpts{
		Name:      "malformed_requests",
		Namespace: namespaceValidation,
		Help:      "number of requests missing required fields",
	}
	malformed := factory.NewCounterVec(malformedOpts, []string{"endpoint"})

	cachedOpts := prometheus.CounterOpts{
		Name:      "cached_verdicts",
		Namespace: namespaceValidation,
		Help:      "number of verdicts served from the cache",
	}
	cached := factory.NewCounterVec(cachedOpts, []string{"endpoint"})

	v := Validation{
		valid:     valid,
		invalid:   invalid,
		malformed: malformed,
		cached:    cached,
	}

	return &v
}

func (v *Validation) Valid(endpoint string) {
	v.valid.WithLabelValues(endpoint).Inc()
}

func (v *Validation) Invalid(endpoint string, category string) {
	v.invalid.WithLabelValues(endpoint, category).Inc()
}

func (v *Validation) Malformed(endpoint string) {
	v.malformed.WithLabelValues(endpoint).Inc()
}

func (v *Validation) Cached(endpoint string) {
	v.cached.WithLabelValues(endpoint).Inc()
}
