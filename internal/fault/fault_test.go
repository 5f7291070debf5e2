// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package fault

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover_Defect(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err, "op")
		Fatalf("edge %d has %d vertices", 7, 3)
		return nil
	}
	err := run()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDefect)
	assert.Equal(t, "op: edge 7 has 3 vertices", err.Error())

	var d *Defect
	assert.True(t, errors.As(err, &d))
}

func TestRecover_NoPanic(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err, "op")
		return nil
	}
	assert.NoError(t, run())
}

func TestRecover_ForeignPanic(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err, "op")
		panic("not a defect")
	}
	assert.PanicsWithValue(t, "not a defect", func() { _ = run() })
}
