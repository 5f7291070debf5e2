// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package logging holds the logger of the module and the per-algorithm
// loggers derived from it ("sweep", "capper", "delaunay", ...).
package logging

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

type loggers struct {
	base  *zap.Logger
	named sync.Map // string -> *zap.Logger
}

var current atomic.Pointer[loggers]

func init() {
	Set(nil)
}

// Set installs l and drops the derived loggers. nil means silent.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(&loggers{base: l})
}

func L() *zap.Logger {
	return current.Load().base
}

// Named returns the logger of one algorithm, built once per Set.
func Named(name string) *zap.Logger {
	ls := current.Load()
	if l, ok := ls.named.Load(name); ok {
		return l.(*zap.Logger)
	}
	l, _ := ls.named.LoadOrStore(name, ls.base.Named(name))
	return l.(*zap.Logger)
}
