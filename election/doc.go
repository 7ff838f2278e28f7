// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

/*
Package election manages the election lifecycle and its side channels.

# Lifecycle

Elections move DRAFT -> ACTIVE -> CLOSED, forward only. Activation
requires at least two candidates; closing is always permitted and
CLOSED is terminal. Candidates may only be added or removed while the
election is in DRAFT, and only draft elections can be deleted.

# Observers

Every transition is fanned out synchronously through an Emitter to
subscribed observers. The package ships two: AuditLogger persists each
transition through an audit store, and Notifier accumulates
human-readable notifications. An observer failure is logged and never
propagated; the transition has already been committed.

# Tie resolution

TieResolver records the one-time breaking of an exact top-tally tie in
a closed election: RANDOM (unpredictable draw from the tied set),
MANUAL (admin picks one of the tied candidates), or RECALL (no winner,
election voided). A uniqueness constraint on the election keeps the
record one-per-election even under concurrent resolves.

# Scheduler

Scheduler sweeps on an interval and closes ACTIVE elections whose end
date has passed via the same CloseElection path used manually.
*/
package election
