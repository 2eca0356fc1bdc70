// Package captable computes equity ownership, vesting schedules and funding
// round dilution for startup co-founders.
//
// The package is a pure calculation engine: it holds no state, performs no
// I/O, and never reads the clock. Callers build a Company, check it with
// Validate, then derive cap tables, vesting splits and dilution reports
// from it. Share and money arithmetic is done in decimal so results are
// exact; rounding happens only when a value is rendered.
package captable
