// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashers

import (
	"sort"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/mtree/node/mtree"
	"gitlab.com/jaxnet/mtree/types/chainhash"
)

const (
	NameSHA256     = "sha256"
	NameKeccak256  = "keccak256"
	NameBlake2b256 = "blake2b256"
	NameSipHash    = "siphash"
	NameXXHash     = "xxhash"
)

// ErrUnknownHash is returned for a name no combiner is registered under.
var ErrUnknownHash = errors.New("unknown hash")

var wide = map[string]mtree.Combiner[[]byte, chainhash.Hash]{
	NameSHA256:     SHA256{},
	NameKeccak256:  Keccak256{},
	NameBlake2b256: Blake2b256{},
}

var narrow = map[string]func(key [SipKeySize]byte) mtree.Combiner[[]byte, uint64]{
	NameSipHash: func(key [SipKeySize]byte) mtree.Combiner[[]byte, uint64] { return NewSipHash(key) },
	NameXXHash:  func([SipKeySize]byte) mtree.Combiner[[]byte, uint64] { return XXHash{} },
}

// ByName returns the 256-bit combiner registered under name.
func ByName(name string) (mtree.Combiner[[]byte, chainhash.Hash], error) {
	c, ok := wide[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHash, "%q is not a 256-bit hash", name)
	}
	return c, nil
}

// ByName64 returns the 64-bit combiner registered under name. key is used by
// keyed hashes and ignored by the rest.
func ByName64(name string, key [SipKeySize]byte) (mtree.Combiner[[]byte, uint64], error) {
	f, ok := narrow[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHash, "%q is not a 64-bit hash", name)
	}
	return f(key), nil
}

// Width returns the digest size in bits of the named hash, or 0 if unknown.
func Width(name string) int {
	if _, ok := wide[name]; ok {
		return 256
	}
	if _, ok := narrow[name]; ok {
		return 64
	}
	return 0
}

// Keyed reports whether the named hash uses a key.
func Keyed(name string) bool { return name == NameSipHash }

// Names lists every supported hash name in lexical order.
func Names() []string {
	names := make([]string, 0, len(wide)+len(narrow))
	for name := range wide {
		names = append(names, name)
	}
	for name := range narrow {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
