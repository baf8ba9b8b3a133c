// Package votingengine implements the community voting feature inside the
// community-voting context.
//
// The module owns the participant roster, the single voting-session flag, and
// the local client's current-vote reference. Vote casting moves tallies
// atomically (increment the new target, decrement the previous one floored at
// zero) through one of two backends selected once at startup: a transactional
// postgres repository when a DSN is configured and reachable, or a local JSON
// snapshot store when it is not. Business rules live in the application
// layer; infrastructure stays behind ports and adapters.
package votingengine
