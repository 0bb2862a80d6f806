// Package pocketbook provides the functional core of a personal finance
// ledger. It is designed to be local-first and auditable: a single snapshot
// value holds every transaction and savings goal, and every operation
// derives from or returns such a snapshot.
//
// The core functionalities include:
//   - Ledger Management: Recording income and expense transactions in an
//     append-mostly log, and undoing them through reversal pairing rather
//     than deletion.
//   - Retention: Reversed records are retired, not removed; a sweeper purges
//     them once their 48-hour grace period has elapsed.
//   - Aggregation: Pure functions deriving the balance, period totals,
//     per-tag breakdowns and goal progress from a snapshot.
//   - Insights: Month-over-month trend, top spending category and a simple
//     income/expense forecast, produced as typed statements for any
//     presentation layer to render.
//   - Data Persistence: A single-slot store (JSON file or sqlite blob) that
//     rewrites the whole snapshot on every mutation and degrades to an
//     empty book rather than failing on corrupt data.
//
// This package serves as the foundational logic for the `pbk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package pocketbook
