package update

// Package update implements the one-shot startup update check. It fetches
// the latest release descriptor, compares its version with the installed
// one, and reports an offer when they differ. Failures are swallowed so the
// check can never disturb browsing.
