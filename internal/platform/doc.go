package platform

// Package platform contains OS integration glue: the network availability
// check and the hand-off of URLs to the system's external handler.
