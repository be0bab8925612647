// Copyright (c) 2022 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !mtreedebug

package mtree

const debugChecks = false
