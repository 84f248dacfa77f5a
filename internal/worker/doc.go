// Package worker bridges the synchronous UI loop and the asynchronous
// CloudWatch API.
//
// # Overview
//
// The rendering loop must never block on network I/O. This package gives it
// a fire-and-forget relay: the UI constructs a request together with a fresh
// one-shot reply channel, hands it to the bridge, and polls the reply
// channel on later frames. A single background goroutine owns the receive
// side of the request queue, invokes the CloudWatch service, and delivers
// each result through the request's reply channel.
//
// # Request Model
//
// Requests come in exactly two kinds:
//
//   - FetchRequest: fetch recent log events for one group
//   - ListGroupsRequest: list available log groups
//
// Each request owns its reply channel's send side exclusively. The channel
// is created fresh per request (NewFetchReply / NewListGroupsReply), written
// exactly once, and read at most once. Callers never wait synchronously.
//
// # Ordering and Concurrency
//
// Requests are processed strictly one at a time in FIFO order. No goroutine
// is spawned per request and no two service calls are ever in flight at
// once from the same bridge. This is a deliberate simplicity choice: the UI
// keeps at most one fetch and one list outstanding by construction, so
// serialized processing cannot become a bottleneck for this workload.
//
// # Failure Semantics
//
// A failed service call is a normal result delivered through the reply
// path, not a bridge fault. The bridge's only failure mode is termination
// (context cancellation), after which Send becomes a silent no-op and Done
// is closed. There is no cancellation primitive for an individual request:
// a request already picked up runs to completion, and if the receiver has
// meanwhile given up, the delivery lands in the reply buffer and is
// garbage-collected.
package worker
