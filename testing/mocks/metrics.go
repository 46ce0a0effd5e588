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

package mocks

import (
	"testing"
)

type Metrics struct {
	ValidFunc     func(endpoint string)
	InvalidFunc   func(endpoint string, category string)
	MalformedFunc func(endpoint string)
	CachedFunc    func(endpoint string)
}

func BaselineMetrics(t *testing.T) *Metrics {
	t.Helper()

	m := Metrics{
		ValidFunc:     func(string) {},
		InvalidFunc:   func(string, string) {},
		MalformedFunc: func(string) {},
		CachedFunc:    func(string) {},
	}

	return &m
}

func (m *Metrics) Valid(endpoint string) {
	m.ValidFunc(endpoint)
}

func (m *Metrics) Invalid(endpoint string, category string) {
	m.InvalidFunc(endpoint, category)
}

func (m *Metrics) Malformed(endpoint string) {
	m.MalformedFunc(endpoint)
}

func (m *Metrics) Cached(endpoint string) {
	m.CachedFunc(endpoint)
}
