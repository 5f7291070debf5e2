// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2voronoi

import (
	"github.com/2dChan/r2voronoi/internal/logging"
	"go.uber.org/zap"
)

// SetLogger configures the logger for r2voronoi and all its sub-packages.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Sweep statistics, dropped degenerate edges, cap radii and thin triangle
// counts are logged at debug level.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *zap.Logger) {
	logging.Set(l)
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	return logging.L()
}
