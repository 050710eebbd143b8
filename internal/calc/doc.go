package calc

// Package calc implements the fetch+aggregate pipeline: it resolves the
// playlist identifier, pulls video metadata through the youtube client, parses
// per-video ISO-8601 durations, and reduces them to summary statistics. Videos
// whose duration cannot be parsed are counted and dropped, never escalated.
