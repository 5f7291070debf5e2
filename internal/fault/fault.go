// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package fault turns internal invariant violations into errors at the API
// boundary. Deep algorithm code panics with a Defect through Fatalf, and the
// exported entry point converts it back with a deferred Recover.
package fault

import (
	"github.com/pkg/errors"
)

// ErrDefect matches every Defect with errors.Is.
var ErrDefect = errors.New("internal defect")

// Defect is a broken invariant. It is fatal for the current computation and
// is never retried.
type Defect struct {
	err error
}

func (d *Defect) Error() string {
	return d.err.Error()
}

func (d *Defect) Unwrap() error {
	return d.err
}

func (d *Defect) Is(target error) bool {
	return target == ErrDefect
}

// Fatalf panics with a Defect carrying the formatted message and a stack
// trace.
func Fatalf(format string, args ...any) {
	panic(&Defect{err: errors.Errorf(format, args...)})
}

// Recover stores a recovered Defect in *errp, wrapped with op. Other panics
// are re-raised.
//
// Usage: defer fault.Recover(&err, "op")
func Recover(errp *error, op string) {
	r := recover()
	if r == nil {
		return
	}
	d, ok := r.(*Defect)
	if !ok {
		panic(r)
	}
	*errp = errors.Wrap(d, op)
}
