package worker

import (
	"context"

	"github.com/rs/zerolog"

	"lumberjack/internal/cloudwatch"
)

// queueDepth is generous headroom for a UI that by construction keeps at
// most one fetch and one list request outstanding.
const queueDepth = 32

// Request is the sealed set of commands the bridge dispatches. Exactly two
// kinds exist: FetchRequest and ListGroupsRequest.
type Request interface {
	kind() string
}

// FetchRequest asks the worker to fetch recent log events. The result is
// delivered on Reply, which must be buffered with capacity one so delivery
// never blocks the dispatch loop.
type FetchRequest struct {
	Params cloudwatch.FetchParams
	Reply  chan<- FetchResult
}

func (FetchRequest) kind() string { return "fetch" }

// FetchResult carries the outcome of a FetchRequest.
type FetchResult struct {
	Entries []cloudwatch.LogEntry
	Err     error
}

// ListGroupsRequest asks the worker to list log groups.
type ListGroupsRequest struct {
	Params cloudwatch.ListGroupsParams
	Reply  chan<- ListGroupsResult
}

func (ListGroupsRequest) kind() string { return "list-groups" }

// ListGroupsResult carries the outcome of a ListGroupsRequest.
type ListGroupsResult struct {
	Groups []string
	Err    error
}

// NewFetchReply returns the paired halves of a one-shot fetch reply channel.
func NewFetchReply() (chan<- FetchResult, <-chan FetchResult) {
	ch := make(chan FetchResult, 1)
	return ch, ch
}

// NewListGroupsReply returns the paired halves of a one-shot list reply channel.
func NewListGroupsReply() (chan<- ListGroupsResult, <-chan ListGroupsResult) {
	ch := make(chan ListGroupsResult, 1)
	return ch, ch
}

// Bridge relays requests from the UI loop to a single background goroutine
// that invokes the CloudWatch service. Requests are processed strictly one
// at a time in arrival order.
type Bridge struct {
	requests chan Request
	done     chan struct{}
	svc      cloudwatch.Service
	log      zerolog.Logger
}

// Start spawns the dispatch goroutine and returns the bridge handle. The
// goroutine runs until ctx is cancelled. The handle may be shared freely;
// all users feed the same queue.
func Start(ctx context.Context, svc cloudwatch.Service, log zerolog.Logger) *Bridge {
	b := &Bridge{
		requests: make(chan Request, queueDepth),
		done:     make(chan struct{}),
		svc:      svc,
		log:      log,
	}
	go b.loop(ctx)
	return b
}

// Send enqueues a request without blocking. Once the dispatch loop has
// terminated, or in the pathological case of a saturated queue, the request
// is silently dropped: the bridge is an explicit best-effort relay.
func (b *Bridge) Send(req Request) {
	select {
	case <-b.done:
	case b.requests <- req:
	default:
		b.log.Warn().Str("kind", req.kind()).Msg("request queue saturated, dropping")
	}
}

// Done is closed once the dispatch loop has exited. A pending reply whose
// bridge is done will never be filled; callers use this to stop waiting.
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}

func (b *Bridge) loop(ctx context.Context) {
	defer close(b.done)
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-b.requests:
			b.dispatch(ctx, req)
		}
	}
}

func (b *Bridge) dispatch(ctx context.Context, req Request) {
	switch r := req.(type) {
	case FetchRequest:
		entries, err := b.svc.FetchRecentLogs(ctx, r.Params)
		if err != nil {
			b.log.Error().Err(err).Str("log_group", r.Params.LogGroup).Msg("fetch failed")
		}
		deliverFetch(r.Reply, FetchResult{Entries: entries, Err: err})
	case ListGroupsRequest:
		params := r.Params
		params.Limit = cloudwatch.CapGroupLimit(params.Limit)
		groups, err := b.svc.ListLogGroups(ctx, params)
		if err != nil {
			b.log.Error().Err(err).Str("region", params.Region).Msg("list groups failed")
		}
		deliverListGroups(r.Reply, ListGroupsResult{Groups: groups, Err: err})
	default:
		b.log.Warn().Str("kind", req.kind()).Msg("unknown request kind")
	}
}

// Reply channels are buffered one deep, so a live receiver always gets the
// result without blocking the loop; an abandoned receiver just lets the
// buffered value be collected.
func deliverFetch(ch chan<- FetchResult, res FetchResult) {
	select {
	case ch <- res:
	default:
	}
}

func deliverListGroups(ch chan<- ListGroupsResult, res ListGroupsResult) {
	select {
	case ch <- res:
	default:
	}
}
