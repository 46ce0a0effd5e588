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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/optakt/rosetta-asserter/rosetta/asserter"
	"github.com/optakt/rosetta-asserter/rosetta/object"
	"github.com/optakt/rosetta-asserter/rosetta/parser"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Command line parameter initialization.
	var (
		flagConfig       string
		flagConstruction bool
		flagLevel        string
		flagWorkers      int
	)

	pflag.StringVarP(&flagConfig, "config", "c", "rosetta.json", "path to the asserter configuration file")
	pflag.BoolVar(&flagConstruction, "construction", false, "validate files as construction operations instead of blocks")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.IntVarP(&flagWorkers, "workers", "w", 4, "number of files validated concurrently")

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

	paths := pflag.Args()
	if len(paths) == 0 {
		log.Error().Msg("no files to validate")
		return failure
	}
	if flagWorkers < 1 {
		log.Error().Int("workers", flagWorkers).Msg("need at least one worker")
		return failure
	}

	assert, err := asserter.NewClientWithFile(flagConfig)
	if err != nil {
		log.Error().Str("config", flagConfig).Err(err).Msg("could not initialize asserter")
		return failure
	}
	check := checker{
		asserter: assert,
		parser:   parser.New(assert, nil, nil),
		log:      log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The asserter is immutable, so all workers share it. Validation failures
	// are collected instead of aborting, so that every file gets checked.
	var mutex sync.Mutex
	var errs *multierror.Error
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(flagWorkers)
	for _, path := range paths {
		path := path
		group.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			var err error
			if flagConstruction {
				err = check.operations(path)
			} else {
				err = check.block(ctx, path)
			}
			if err != nil {
				mutex.Lock()
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
				mutex.Unlock()
			}
			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		log.Warn().Err(err).Msg("validation interrupted")
		return failure
	}

	err = errs.ErrorOrNil()
	if err != nil {
		log.Error().Int("files", len(paths)).Int("invalid", errs.Len()).Msg("validation failed")
		for _, failed := range errs.Errors {
			log.Error().Err(failed).Msg("invalid file")
		}
		return failure
	}

	log.Info().Int("files", len(paths)).Msg("all files valid")

	return success
}

type checker struct {
	asserter *asserter.Asserter
	parser   *parser.Parser
	log      zerolog.Logger
}

// block validates the block in the given file, and logs its balance changes.
func (c *checker) block(ctx context.Context, path string) error {

	var block object.Block
	err := decode(path, &block)
	if err != nil {
		return fmt.Errorf("could not decode block: %w", err)
	}

	err = c.asserter.Block(&block)
	if err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}

	changes, err := c.parser.BalanceChanges(ctx, &block, false)
	if err != nil {
		return fmt.Errorf("could not compute balance changes: %w", err)
	}

	c.log.Debug().
		Str("path", path).
		Int64("index", block.ID.Index).
		Int("transactions", len(block.Transactions)).
		Int("changes", len(changes)).
		Msg("block valid")

	return nil
}

// operations validates the operations in the given file as operations of a
// transaction that is yet to be constructed.
func (c *checker) operations(path string) error {

	var payload struct {
		Operations []*object.Operation `json:"operations"`
	}
	err := decode(path, &payload)
	if err != nil {
		return fmt.Errorf("could not decode operations: %w", err)
	}

	err = c.asserter.Operations(payload.Operations, true)
	if err != nil {
		return fmt.Errorf("invalid operations: %w", err)
	}

	c.log.Debug().Str("path", path).Int("operations", len(payload.Operations)).Msg("operations valid")

	return nil
}

// decode reads the JSON value in the given file, which is decompressed first
// if it has the `.zst` extension.
func decode(path string, v interface{}) error {

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if filepath.Ext(path) == ".zst" {
		decompressor, err := zstd.NewReader(file)
		if err != nil {
			return fmt.Errorf("could not initialize decompressor: %w", err)
		}
		defer decompressor.Close()
		reader = decompressor
	}

	err = json.NewDecoder(reader).Decode(v)
	if err != nil {
		return fmt.Errorf("could not decode JSON: %w", err)
	}

	return nil
}
