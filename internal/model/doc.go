package model

// Package model defines domain data structures used across the app: playlist
// metadata, per-run statistics, and the aggregated calculation result.
// Structures hold raw values (seconds, counts); formatting lives in calc and
// export so the model stays presentation-free.
