// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package search

import logging "github.com/ipfs/go-log"

// log is this package's named subsystem logger. Tests configure its level
// with logging.SetLogLevel("primegen", level), the same pattern the
// teacher's own test files use for "tss-lib".
var log = logging.Logger("primegen")
