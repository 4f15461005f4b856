// Package nivesh models a conservative, fixed-income investment portfolio
// and the small amount of logic behind its dashboard. It is designed to be
// local-first and auditable: the working portfolio is a flat, human-readable
// file, and every computation is a pure function over an immutable snapshot.
//
// The core functionalities include:
//   - Portfolio Model: an ordered set of assets (name, risk, reward range,
//     investment horizon, allocation weight, source, rationale) initialized
//     from a fixed default set of five fixed-income instruments.
//   - Allocation Normalizer: rescales allocation weights so they sum to
//     exactly 100.00, with a deterministic assignment of the rounding
//     residue to the largest entry.
//   - Validity Check: reports whether the current weights sum to 100% within
//     display tolerance, used for the dashboard banner.
//   - Capital Plan: splits a concrete corpus across the assets by normalized
//     weight without losing minor currency units.
//   - Data Interchange: encoding and decoding of the working portfolio as
//     JSONL, and import/export in the dashboard's CSV format.
//
// This package serves as the foundational logic for the `nivesh`
// command-line tool.
package nivesh
