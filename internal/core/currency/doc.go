// Package currency converts source-currency amounts into an organization's
// functional currency.
//
// Rounding is always round-half-to-even at an explicit number of decimal
// places, so identical inputs produce identical outputs regardless of any
// global state. The package performs no rate lookups itself: callers pass the
// rates they fetched.
package currency
