// Package guard intercepts wizard transitions.
//
// For every (origin, destination) pair the guard returns Allow,
// AllowAfterReset or Block:
//
//   - Staying on the same route is always allowed and changes nothing.
//   - Leaving the installation options screen asks the user first. A
//     rejection, or a confirmer that fails in any way, blocks the transition
//     and leaves the wizard config exactly as it was.
//   - Entering the installation screen resets the wizard config. Entering
//     the options screen resets it but keeps the archive path. Every other
//     destination leaves it alone.
//
// Only one evaluation runs at a time. A transition requested while the user
// is still answering a confirmation is blocked.
package guard
