// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSet(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	Named("sweep").Debug("done", zap.Int("sites", 3))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sweep", entries[0].LoggerName)
	assert.Equal(t, "done", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["sites"])
}

func TestSet_NilRestoresNop(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	Set(nil)

	L().Info("dropped")
	assert.Zero(t, logs.Len())
	assert.NotNil(t, L())
}

func TestNamed_Cached(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	first := Named("capper")
	assert.Same(t, first, Named("capper"))
	assert.NotSame(t, first, Named("relax"))

	// A new logger replaces the cached ones.
	Set(nil)
	Named("capper").Debug("dropped")
	assert.Zero(t, logs.Len())
	assert.NotSame(t, first, Named("capper"))
}
