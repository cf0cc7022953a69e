// Package stockroom provides the functions and types for tracking a
// single-user inventory: the items on the shelf, the categories they are
// filed under, and an append-only log of every withdrawal taken against
// them. It is designed to be local-first and auditable, so the full history
// of stock movements stays on disk and under the user's control.
//
// The core functionalities include:
//   - Item Ledger: creating, updating and deleting stock-keeping units,
//     each with a quantity and a current unit cost.
//   - Category Registry: a case-insensitively unique set of category names,
//     protected against deletion while any item still uses them.
//   - Withdrawal Ledger: an immutable record of stock reductions. Each
//     withdrawal freezes the item name, category and unit cost at the time
//     it happened, so later edits never rewrite history.
//   - Report Engine: pure aggregation over the withdrawal log (totals,
//     averages, the most withdrawn item) plus date-range and category
//     filtering.
//   - Data Persistence: named JSON collections behind a small Store
//     capability, with a SQLite file as the default backend.
//
// This package serves as the foundational logic for the `skr` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package stockroom
