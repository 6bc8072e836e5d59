// Package auth drives login and organisation registration attempts from raw
// form input to a terminal button state.
//
// Each attempt validates its fields locally, and only when they pass reports
// "loading", calls the remote auth service once, and then either persists the
// issued token under SessionKey, reports "success" and navigates to RootPath,
// or reports "error" together with the message the user should see. Failures
// never escape as Go errors; they are reported through the Reporter and the
// returned AuthOutcome.
//
// The Service holds no per-attempt state. Concurrent attempts are independent
// and both drive whatever Reporter they were given; preventing double
// submission is the caller's job.
package auth
