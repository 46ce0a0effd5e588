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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	"github.com/optakt/rosetta-asserter/api/rosetta"
	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/configuration"
	"github.com/optakt/rosetta-asserter/rosetta/parser"
	"github.com/optakt/rosetta-asserter/service/metrics"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagCache       uint64
		flagConfig      string
		flagLevel       string
		flagMetrics     string
		flagPort        uint16
		flagSmartCodes  bool
		flagValidations string
	)

	pflag.Uint64Var(&flagCache, "cache-size", rosetta.DefaultConfig.CacheSize, "maximum size of the verdict cache in bytes")
	pflag.StringVarP(&flagConfig, "config", "c", "rosetta.json", "path to the asserter configuration file")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagMetrics, "metrics", "m", "", "address on which to expose metrics (no metrics are exposed when left empty)")
	pflag.Uint16VarP(&flagPort, "port", "p", 8080, "port to host the validation API on")
	pflag.BoolVar(&flagSmartCodes, "smart-status-codes", rosetta.DefaultConfig.SmartCodes, "enable smart non-500 HTTP status codes for validation failures")
	pflag.StringVarP(&flagValidations, "validations", "v", "", "path to the payment and fee validations file, overriding the configuration")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)
	elog := lecho.From(log)

	// Load the network configuration the payloads are validated against.
	cfg, err := configuration.Load(flagConfig)
	if err != nil {
		log.Error().Str("config", flagConfig).Err(err).Msg("could not load configuration")
		return failure
	}
	if flagValidations != "" {
		cfg.Validations, err = configuration.LoadValidations(flagValidations)
		if err != nil {
			log.Error().Str("validations", flagValidations).Err(err).Msg("could not load validations")
			return failure
		}
	}
	err = asserter.BalanceExemptions(cfg.BalanceExemptions)
	if err != nil {
		log.Error().Err(err).Msg("invalid balance exemptions")
		return failure
	}

	// Validation API initialization.
	assert, err := asserter.NewClientWithOptions(
		cfg.NetworkID,
		cfg.GenesisBlockID,
		cfg.AllowedOperationTypes,
		cfg.AllowedOperationStatuses,
		cfg.AllowedErrors,
		cfg.AllowedTimestampStart,
		cfg.Validations,
	)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize asserter")
		return failure
	}
	parse := parser.New(assert, nil, cfg.BalanceExemptions)

	var verdicts rosetta.Metrics
	var mserver *metrics.Server
	if flagMetrics != "" {
		verdicts = metrics.NewValidation(prometheus.DefaultRegisterer)
		mserver = metrics.NewServer(log, flagMetrics, prometheus.DefaultGatherer)
	}

	ctrl, err := rosetta.NewValidation(assert, parse, verdicts,
		rosetta.WithCacheSize(flagCache),
		rosetta.WithSmartCodes(flagSmartCodes),
	)
	if err != nil {
		log.Error().Err(err).Msg("could not initialize validation API")
		return failure
	}

	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.POST(rosetta.EndpointNetworkList, ctrl.NetworkList)
	server.POST(rosetta.EndpointNetworkStatus, ctrl.NetworkStatus)
	server.POST(rosetta.EndpointNetworkOptions, ctrl.NetworkOptions)
	server.POST(rosetta.EndpointBlock, ctrl.Block)
	server.POST(rosetta.EndpointTransaction, ctrl.Transaction)
	server.POST(rosetta.EndpointMempool, ctrl.Mempool)
	server.POST(rosetta.EndpointEvents, ctrl.Events)
	server.POST(rosetta.EndpointSearch, ctrl.Search)
	server.POST(rosetta.EndpointError, ctrl.Error)
	server.POST(rosetta.EndpointOperations, ctrl.Operations)
	server.POST(rosetta.EndpointParse, ctrl.Parse)
	server.POST(rosetta.EndpointIntent, ctrl.Intent)
	server.POST(rosetta.EndpointBalanceChanges, ctrl.BalanceChanges)
	server.POST(rosetta.EndpointImbalances, ctrl.Imbalances)

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Msg("Rosetta Check Server starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Rosetta Check Server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("Rosetta Check Server stopped")
	}()
	if mserver != nil {
		go func() {
			err := mserver.Start()
			if err != nil {
				log.Warn().Err(err).Msg("metrics server failed")
			}
		}()
	}

	select {
	case <-sig:
		log.Info().Msg("Rosetta Check Server stopping")
	case <-done:
		log.Info().Msg("Rosetta Check Server done")
	case <-failed:
		log.Warn().Msg("Rosetta Check Server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shut down with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error. We then wait for shutdown on each component to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if mserver != nil {
		err = mserver.Stop(ctx)
		if err != nil {
			log.Error().Err(err).Msg("could not shut down metrics server")
		}
	}
	err = server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down Rosetta Check Server")
		return failure
	}

	return success
}
