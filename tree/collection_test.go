// Copyright (c) 2025, znzhao.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package tree

func assert(expr bool, ifFalse func()) {
	if !expr {
		ifFalse()
	}
}
