// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gitlab.com/jaxnet/mtree/corelog"
	"gitlab.com/jaxnet/mtree/node/metrics"
	"gitlab.com/jaxnet/mtree/node/mtree"
)

const (
	LogUnitBNCH = "BNCH"
	LogUnitMTRC = "MTRC"
	LogUnitTREE = "TREE"
)

// units lists every logging unit; SetupLogging creates one logger per unit.
var units = []string{LogUnitBNCH, LogUnitMTRC, LogUnitTREE}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := append([]string(nil), units...)
	sort.Strings(subsystems)
	return subsystems
}

func knownUnit(unit string) bool {
	for _, u := range units {
		if u == unit {
			return true
		}
	}
	return false
}

// parseDebugLevels parses either a single level applied to every unit or a
// list of UNIT=level pairs. Units that are not named keep the default level.
func parseDebugLevels(debugLevel string) (map[string]zerolog.Level, error) {
	levels := make(map[string]zerolog.Level, len(units))

	// When the specified string doesn't have any delimiters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		level, err := corelog.ParseLevel(debugLevel)
		if err != nil {
			return nil, errors.Wrapf(err, "the specified debug level [%v] is invalid", debugLevel)
		}
		for _, unit := range units {
			levels[unit] = level
		}
		return levels, nil
	}

	for _, unit := range units {
		levels[unit] = corelog.DefaultLevel
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, pair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(pair, "=")
		if len(fields) != 2 {
			return nil, errors.Errorf("the specified debug level contains an invalid subsystem/level pair [%v]", pair)
		}

		unit, logLevel := fields[0], fields[1]
		if !knownUnit(unit) {
			return nil, errors.Errorf("the specified subsystem [%v] is invalid -- supported subsystems %v",
				unit, supportedSubsystems())
		}

		level, err := corelog.ParseLevel(logLevel)
		if err != nil {
			return nil, errors.Wrapf(err, "the specified debug level [%v] is invalid", logLevel)
		}
		levels[unit] = level
	}

	return levels, nil
}

// SetupLogging creates the unit loggers, hands them to the library packages
// and returns the loggers by unit name.
func (cfg *Config) SetupLogging() (map[string]zerolog.Logger, error) {
	levels, err := parseDebugLevels(cfg.DebugLevel)
	if err != nil {
		return nil, err
	}

	loggers := make(map[string]zerolog.Logger, len(units))
	for _, unit := range units {
		loggers[unit] = corelog.New(unit, levels[unit], cfg.Log)
	}

	mtree.UseLogger(loggers[LogUnitTREE])
	metrics.UseLogger(loggers[LogUnitMTRC])
	return loggers, nil
}
