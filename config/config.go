// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"gitlab.com/jaxnet/mtree/corelog"
	"gitlab.com/jaxnet/mtree/types/hashers"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel  = "info"
	defaultHash      = hashers.NameSHA256
	defaultBlocks    = 100000
	defaultBlockSize = 64
	defaultProducers = 4
	defaultBacklog   = 256
)

// Config is the configuration of the benchmark tool. Every field can come from
// a .yaml or .toml file and be overridden on the command line.
type Config struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to a .yaml or .toml configuration file" yaml:"-" toml:"-"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all units {trace, debug, info, warn, error, critical} -- may also be specified as <unit>=<level>,<unit>=<level>,... to set the level for individual units" yaml:"debug_level" toml:"debug_level"`
	Hash        string `long:"hash" description:"Hash used to build the tree {blake2b256, keccak256, sha256, siphash, xxhash}" yaml:"hash" toml:"hash"`
	SipKey      string `long:"sipkey" description:"Hex encoded 16 byte key for siphash" yaml:"sip_key" toml:"sip_key"`
	Blocks      int    `short:"n" long:"blocks" description:"Number of blocks to push" yaml:"blocks" toml:"blocks"`
	BlockSize   int    `long:"blocksize" description:"Size of every synthetic block in bytes" yaml:"block_size" toml:"block_size"`
	Producers   int    `short:"p" long:"producers" description:"Number of goroutines producing blocks" yaml:"producers" toml:"producers"`
	Backlog     int    `long:"backlog" description:"Number of blocks buffered between producers and the writer" yaml:"backlog" toml:"backlog"`
	Verify      bool   `long:"verify" description:"Recompute every hash once all blocks are pushed" yaml:"verify" toml:"verify"`
	HeapProfile string `long:"heapprofile" description:"Write a heap profile to this file when done" yaml:"heap_profile" toml:"heap_profile"`
	MetricsAddr string `long:"metrics" description:"Serve prometheus metrics on this address while running" yaml:"metrics_addr" toml:"metrics_addr"`

	Log corelog.Config `no-flag:"true" yaml:"log" toml:"log"`
}

// Default returns the configuration used when neither a file nor flags say
// otherwise.
func Default() Config {
	return Config{
		DebugLevel: defaultLogLevel,
		Hash:       defaultHash,
		Blocks:     defaultBlocks,
		BlockSize:  defaultBlockSize,
		Producers:  defaultProducers,
		Backlog:    defaultBacklog,
		Log:        corelog.Config{}.Default(),
	}
}

// SipKeyBytes decodes SipKey. An empty key decodes to all zeroes.
func (cfg *Config) SipKeyBytes() ([hashers.SipKeySize]byte, error) {
	var key [hashers.SipKeySize]byte
	if cfg.SipKey == "" {
		return key, nil
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(cfg.SipKey, "0x"))
	if err != nil {
		return key, errors.Wrap(err, "sipkey is not hex")
	}
	if len(raw) != hashers.SipKeySize {
		return key, errors.Errorf("sipkey must be %d bytes, got %d", hashers.SipKeySize, len(raw))
	}
	copy(key[:], raw)
	return key, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return ""
	}

	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// Load initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// Command line options always take precedence. A *flags.Error of type
// flags.ErrHelp is returned as is when help was requested.
func Load(args []string) (*Config, []string, error) {
	cfg := Default()

	// Pre-parse the command line options to see if an alternative config
	// file was specified. Any errors aside from the help message error can
	// be ignored here since they will be caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	if _, err := preParser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	if preCfg.ConfigFile != "" {
		if err := decodeFile(cleanAndExpandPath(preCfg.ConfigFile), &cfg); err != nil {
			return nil, nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	parser := flags.NewParser(&cfg, flags.HelpFlag)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	cfg.ConfigFile = cleanAndExpandPath(cfg.ConfigFile)
	cfg.HeapProfile = cleanAndExpandPath(cfg.HeapProfile)
	cfg.Log.Directory = cleanAndExpandPath(cfg.Log.Directory)

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "unable to open config file")
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(cfg)
	case ".toml":
		err = toml.NewDecoder(file).Decode(cfg)
	default:
		return errors.Errorf("invalid config file extension %q, must be .yaml or .toml", filepath.Ext(path))
	}

	return errors.Wrapf(err, "unable to decode %s", path)
}

func (cfg *Config) validate() error {
	if _, err := parseDebugLevels(cfg.DebugLevel); err != nil {
		return err
	}

	if hashers.Width(cfg.Hash) == 0 {
		return errors.Errorf("the specified hash [%v] is invalid -- supported hashes %v",
			cfg.Hash, hashers.Names())
	}
	if _, err := cfg.SipKeyBytes(); err != nil {
		return err
	}

	if cfg.Blocks <= 0 {
		return errors.Errorf("blocks must be positive, got %d", cfg.Blocks)
	}
	if cfg.BlockSize <= 0 {
		return errors.Errorf("blocksize must be positive, got %d", cfg.BlockSize)
	}
	if cfg.Producers <= 0 {
		return errors.Errorf("producers must be positive, got %d", cfg.Producers)
	}
	if cfg.Backlog < 0 {
		return errors.Errorf("backlog may not be negative, got %d", cfg.Backlog)
	}

	return nil
}
