// Copyright © 2026 PrimeLab
//
// This file is part of primegen. The full primegen copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package prime

import (
	log "github.com/ipfs/go-log"
)

// Logger is the package logger; its level is controlled with
// log.SetLogLevel("primegen", ...).
var Logger = log.Logger("primegen")
