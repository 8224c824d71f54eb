//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package parser

import "time"

// Observer is informed about the outcome of builds. Implementations must be
// safe for concurrent use.
type Observer interface {
	// DocumentBuilt is called after a successful build.
	DocumentBuilt(elapsed time.Duration)

	// BuildFailed is called with a short reason, e.g. "unknown_node".
	BuildFailed(reason string)

	// NodeDropped is called for every node that was dropped.
	NodeDropped(kind string)
}

type nopObserver struct{}

func (nopObserver) DocumentBuilt(time.Duration) {}
func (nopObserver) BuildFailed(string)          {}
func (nopObserver) NodeDropped(string)          {}
