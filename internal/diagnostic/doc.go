// Package diagnostic provides structured, non-fatal findings surfaced
// to the operator after a generation run.
//
// The only diagnostic source today is the macro-name counter: every
// macro name the renderer generates is counted, and names generated
// more than once are reported as warnings once generation completes.
// Diagnostics are advisory; they never abort a run.
package diagnostic
