// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli/v2"
	"gitlab.com/jaxnet/mtree/types/hashers"
)

const (
	flagHash       = "hash"
	flagSipKey     = "sipkey"
	flagFormat     = "format"
	flagChunkSize  = "chunk-size"
	flagDebugLevel = "debuglevel"
	flagPreview    = "preview"
)

var standardFlags = map[string]cli.Flag{
	flagHash: &cli.StringFlag{
		Name:    flagHash,
		Aliases: []string{"H"},
		Value:   hashers.NameSHA256,
		Usage:   "hash used to build the tree {blake2b256, keccak256, sha256, siphash, xxhash}",
	},
	flagSipKey: &cli.StringFlag{
		Name:  flagSipKey,
		Usage: "hex encoded 16 byte key for siphash",
	},
	flagFormat: &cli.StringFlag{
		Name:    flagFormat,
		Aliases: []string{"f"},
		Value:   formatLines,
		Usage:   "how input is split into blocks {lines, chunks, csv}",
	},
	flagChunkSize: &cli.IntFlag{
		Name:  flagChunkSize,
		Value: 32,
		Usage: "block size in bytes for --format chunks",
	},
	flagDebugLevel: &cli.StringFlag{
		Name:    flagDebugLevel,
		Aliases: []string{"d"},
		Value:   "warn",
		Usage:   "logging level {trace, debug, info, warn, error, critical}",
	},
	flagPreview: &cli.IntFlag{
		Name:  flagPreview,
		Value: 16,
		Usage: "number of block bytes shown per row",
	},
}
