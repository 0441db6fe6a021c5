/*
Package tally aggregates the vote log into per-option counts and
percentages.

Both functions are pure functions of (votes, options) and never fail.
Re-aggregating the same inputs always yields the same result, so stats can
be recomputed on every request. Votes referencing options that were later
removed simply do not contribute to the current tally.

Display ordering is a presentation concern; the returned maps carry no
order.
*/
package tally
