// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, rest, err := Load(nil)
	require.NoError(t, err)
	assert.Empty(t, rest)

	want := Default()
	assert.Equal(t, want.Hash, cfg.Hash)
	assert.Equal(t, want.Blocks, cfg.Blocks)
	assert.Equal(t, want.Producers, cfg.Producers)
	assert.Equal(t, want.Log.MaxSize, cfg.Log.MaxSize)
	assert.False(t, cfg.Verify)
}

func TestLoad_Flags(t *testing.T) {
	cfg, rest, err := Load([]string{"--hash", "xxhash", "-n", "10", "--producers=2", "--verify", "extra"})
	require.NoError(t, err)

	assert.Equal(t, "xxhash", cfg.Hash)
	assert.Equal(t, 10, cfg.Blocks)
	assert.Equal(t, 2, cfg.Producers)
	assert.True(t, cfg.Verify)
	assert.Equal(t, []string{"extra"}, rest)
}

func TestLoad_Files(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "bench.yaml",
			body: "hash: keccak256\nblocks: 77\nverify: true\nlog:\n  max_backups: 9\n",
		},
		{
			name: "bench.toml",
			body: "hash = \"keccak256\"\nblocks = 77\nverify = true\n[log]\nmax_backups = 9\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.name, tt.body)

			cfg, _, err := Load([]string{"-C", path})
			require.NoError(t, err)
			assert.Equal(t, "keccak256", cfg.Hash)
			assert.Equal(t, 77, cfg.Blocks)
			assert.True(t, cfg.Verify)
			assert.Equal(t, 9, cfg.Log.MaxBackups)
			// Untouched by the file.
			assert.Equal(t, defaultProducers, cfg.Producers)

			// Flags win over the file.
			cfg, _, err = Load([]string{"-C", path, "--blocks", "5"})
			require.NoError(t, err)
			assert.Equal(t, 5, cfg.Blocks)
			assert.Equal(t, "keccak256", cfg.Hash)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown hash", args: []string{"--hash", "md5"}},
		{name: "zero blocks", args: []string{"--blocks", "0"}},
		{name: "zero producers", args: []string{"-p", "0"}},
		{name: "negative backlog", args: []string{"--backlog=-1"}},
		{name: "bad level", args: []string{"-d", "loud"}},
		{name: "bad unit", args: []string{"-d", "NOPE=debug"}},
		{name: "short sipkey", args: []string{"--hash", "siphash", "--sipkey", "0102"}},
		{name: "missing file", args: []string{"-C", "/does/not/exist.yaml"}},
		{name: "unknown flag", args: []string{"--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(tt.args)
			assert.Error(t, err)
		})
	}

	path := writeFile(t, "bench.json", "{}")
	_, _, err := Load([]string{"-C", path})
	assert.Error(t, err)
}

func TestLoad_Help(t *testing.T) {
	_, _, err := Load([]string{"--help"})
	require.Error(t, err)

	ferr, ok := err.(*flags.Error)
	require.True(t, ok)
	assert.Equal(t, flags.ErrHelp, ferr.Type)
}

func TestSipKeyBytes(t *testing.T) {
	cfg := Default()

	key, err := cfg.SipKeyBytes()
	require.NoError(t, err)
	assert.Equal(t, [16]byte{}, key)

	cfg.SipKey = "000102030405060708090a0b0c0d0e0f"
	key, err = cfg.SipKeyBytes()
	require.NoError(t, err)
	assert.Equal(t, byte(15), key[15])

	cfg.SipKey = "zz"
	_, err = cfg.SipKeyBytes()
	assert.Error(t, err)
}

func TestParseDebugLevels(t *testing.T) {
	levels, err := parseDebugLevels("debug")
	require.NoError(t, err)
	assert.Len(t, levels, len(units))
	assert.Equal(t, zerolog.DebugLevel, levels[LogUnitTREE])

	levels, err = parseDebugLevels("TREE=trace,BNCH=error")
	require.NoError(t, err)
	assert.Equal(t, zerolog.TraceLevel, levels[LogUnitTREE])
	assert.Equal(t, zerolog.ErrorLevel, levels[LogUnitBNCH])
	assert.Equal(t, zerolog.InfoLevel, levels[LogUnitMTRC])

	_, err = parseDebugLevels("TREE")
	assert.Error(t, err)
	_, err = parseDebugLevels("TREE=trace,BNCH")
	assert.Error(t, err)
}

func TestCleanAndExpandPath(t *testing.T) {
	t.Setenv("MTREE_TEST_DIR", "/tmp/mtree")
	assert.Equal(t, "/tmp/mtree/heap.out", cleanAndExpandPath("$MTREE_TEST_DIR//heap.out"))
	assert.Equal(t, "", cleanAndExpandPath(""))
}
