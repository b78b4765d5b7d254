package model

// Package model defines the small data structures shared across the shell:
// the release descriptor returned by the update endpoint, the offer shown to
// the user, page load progress, and the update check states.
