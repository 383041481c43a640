// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dtree

import "fmt"

// Outcome is the result of running a handler: either the input was consumed
// and an output produced (Terminated), or the handler did not match and hands
// the input back (Declined).
//
// The zero value is Declined with the zero input.
type Outcome[In, Out any] struct {
	terminated bool
	input      In
	output     Out
}

// Terminate creates a Terminated outcome carrying out.
func Terminate[In, Out any](out Out) Outcome[In, Out] {
	return Outcome[In, Out]{terminated: true, output: out}
}

// Decline creates a Declined outcome carrying the leftover input.
func Decline[In, Out any](in In) Outcome[In, Out] {
	return Outcome[In, Out]{input: in}
}

// IsTerminated returns true if the input was consumed.
func (o Outcome[In, Out]) IsTerminated() bool {
	return o.terminated
}

// IsDeclined returns true if the input was handed back.
func (o Outcome[In, Out]) IsDeclined() bool {
	return !o.terminated
}

// Output returns the output and true, or zero and false.
func (o Outcome[In, Out]) Output() (Out, bool) {
	if o.terminated {
		return o.output, true
	}
	var zero Out
	return zero, false
}

// Input returns the leftover input and true, or zero and false.
func (o Outcome[In, Out]) Input() (In, bool) {
	if !o.terminated {
		return o.input, true
	}
	var zero In
	return zero, false
}

// String renders the outcome as Terminated(out) or Declined(in).
func (o Outcome[In, Out]) String() string {
	if o.terminated {
		return fmt.Sprintf("Terminated(%v)", o.output)
	}
	return fmt.Sprintf("Declined(%v)", o.input)
}

// MatchOutcome pattern matches on the outcome, calling onDeclined or onTerminated.
func MatchOutcome[In, Out, T any](o Outcome[In, Out], onDeclined func(In) T, onTerminated func(Out) T) T {
	if o.terminated {
		return onTerminated(o.output)
	}
	return onDeclined(o.input)
}

// MapOutput applies f to a Terminated output. Declined outcomes pass through.
func MapOutput[In, Out, U any](o Outcome[In, Out], f func(Out) U) Outcome[In, U] {
	if o.terminated {
		return Terminate[In](f(o.output))
	}
	return Decline[In, U](o.input)
}
