// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

/*
Package main provides the entry point for the Consensus API server.

Consensus is an electronic voting platform: elections move through a
DRAFT → ACTIVE → CLOSED lifecycle, approved voters cast anonymous
ballots, and results are tabulated under pluggable counting rules
(first-past-the-post, instant-runoff, single transferable vote).

# Starting the Server

The server requires environment variables or CLI flags for
configuration:

	DATABASE_URL=file:consensus.db ADMIN_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 4416 -d "postgres://..." -t postgres

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 4416)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - SCHEDULER_INTERVAL (--scheduler-interval): Auto-close sweep
    interval (default: 1m)

# Architecture

The server composes services over a shared SQL store:

  - models: Domain and request/response types
  - strategy: Counting rules (FPTP, AV, STV)
  - voting: Vote casting preconditions, anonymization, tabulation
  - election: Lifecycle, observers, tie resolution, scheduler
  - store: SQLite/PostgreSQL persistence
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - auth: Admin key generation and validation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
