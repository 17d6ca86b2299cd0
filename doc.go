// Package regretmin computes approximate Nash-equilibrium strategies for
// small two-player extensive-form games with imperfect information, using
// counterfactual regret minimization (CFR).
//
// The engine is split in two: PolicyTable owns one player's per-information-set
// regret, current strategy, and accumulated strategy weights, and Walker
// expands one full game tree per iteration, updating both players' tables as
// the recursion unwinds. Games plug in through the State interface; the
// subpackages under games/ provide several small examples, and cmd/solve is
// an iteration driver for the coin-toss game.
//
// Chance is deterministic here: each traversal consumes outcomes from an
// externally supplied sequence rather than enumerating and weighting chance
// children. See Walker.Walk for the consequences.
package regretmin
