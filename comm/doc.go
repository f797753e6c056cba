// Package comm provides the collective reduction primitives of the solver
// core. A Group models the SPMD process set: one Rank per mesh partition,
// each running single-threaded numerical work and meeting the others only at
// blocking collective calls.
//
// Protocol obligation on callers: every rank must issue the same sequence of
// collective calls in the same order. A rank that skips or reorders a call
// deadlocks the group or pairs contributions from different reductions; this
// package does not detect or recover from that, it is a programming error in
// the calling solver. There is no timeout and no partial result, a wedged
// collective is fatal to the run by design because a divergent global state
// is unsafe to continue from.
package comm
