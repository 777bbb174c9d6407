// Package state tracks per-user wizard progress and transient drafts.
// Flow positions are explicit tagged values rather than being inferred
// from whichever component identifier happens to arrive.
package state
