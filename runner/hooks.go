// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package runner

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"code.hybscloud.com/dtree"
)

// Status of a finished dispatch as reported in events and metrics.
const (
	StatusTerminated = "terminated"
	StatusDeclined   = "declined"
	StatusFailed     = "failed"
)

// Event describes one dispatch.
// Elapsed and Status are zero in OnDispatch.
type Event struct {
	ID        ulid.ULID
	Runner    string
	Timestamp time.Time
	Elapsed   time.Duration
	Status    string
}

// Hooks are called around each dispatch. Nil fields are skipped.
// Hooks run on the dispatching goroutine and must be safe for concurrent use
// when the runner is used from several goroutines.
type Hooks[In, Out any] struct {
	OnDispatch func(ctx context.Context, e Event)
	OnOutcome  func(ctx context.Context, e Event, out dtree.Outcome[In, Out])
	OnFailure  func(ctx context.Context, e Event, err error)
}

func (h Hooks[In, Out]) dispatch(ctx context.Context, e Event) {
	if h.OnDispatch != nil {
		h.OnDispatch(ctx, e)
	}
}

func (h Hooks[In, Out]) outcome(ctx context.Context, e Event, out dtree.Outcome[In, Out]) {
	if h.OnOutcome != nil {
		h.OnOutcome(ctx, e, out)
	}
}

func (h Hooks[In, Out]) failure(ctx context.Context, e Event, err error) {
	if h.OnFailure != nil {
		h.OnFailure(ctx, e, err)
	}
}

type idKey struct{}

// IDFromContext returns the ID of the dispatch ctx belongs to.
func IDFromContext(ctx context.Context) (ulid.ULID, bool) {
	id, ok := ctx.Value(idKey{}).(ulid.ULID)
	return id, ok
}

func newID(t time.Time) ulid.ULID {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy())
}
