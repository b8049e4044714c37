package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // Usage error or runtime failure (missing file, unreadable PDF)
	ExitConfigError = 2 // Invalid config file or environment override
	ExitDataError   = 3 // check found reference links without anchors
)
