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
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/parser"
)

// Validation implements an API that validates Rosetta payloads against the
// rules of a configured network.
type Validation struct {
	asserter *asserter.Asserter
	parser   *parser.Parser
	validate *validator.Validate
	verdicts *Verdicts
	metrics  Metrics
	codes    statusCodes
}

// NewValidation creates a validation API using the given asserter and parser.
// If metrics are nil, verdicts are not recorded.
func NewValidation(assert *asserter.Asserter, parse *parser.Parser, metrics Metrics, options ...Option) (*Validation, error) {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	verdicts, err := NewVerdicts(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("could not initialize verdicts: %w", err)
	}

	if metrics == nil {
		metrics = noopMetrics{}
	}

	v := Validation{
		asserter: assert,
		parser:   parse,
		validate: newRequestValidator(),
		verdicts: verdicts,
		metrics:  metrics,
		codes:    newStatusCodes(cfg.SmartCodes),
	}

	return &v, nil
}

// verify runs the check for a decoded request and responds with its verdict.
func (v *Validation) verify(ctx echo.Context, endpoint string, req interface{}, check func() error) error {

	err := v.request(req)
	if err != nil {
		v.metrics.Malformed(endpoint)
		return echo.NewHTTPError(v.codes.badRequest, InvalidFormat(err))
	}

	hit, err := v.verdicts.Check(endpoint, req, check)
	if hit {
		v.metrics.Cached(endpoint)
	}
	if err != nil {
		return v.reject(endpoint, err)
	}

	v.metrics.Valid(endpoint)

	return ctx.JSON(http.StatusOK, ValidResponse{Valid: true})
}

// reject converts the error of a failed check into an HTTP error.
func (v *Validation) reject(endpoint string, err error) error {
	category := Category(err)
	if category == "" {
		return echo.NewHTTPError(v.codes.internalServerError, Internal(err))
	}
	v.metrics.Invalid(endpoint, category)
	return echo.NewHTTPError(v.codes.unprocessableEntity, Invalid(err))
}
