package repository

// ListSessionsOptions filters ListSessions.
type ListSessionsOptions struct {
	// Watching keeps only sessions with reminders enabled.
	Watching bool
}
