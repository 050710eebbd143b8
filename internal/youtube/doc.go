package youtube

// Package youtube is a thin client for the YouTube Data API v3. It covers the
// three operations the app needs: playlist metadata lookup, paginated playlist
// item listing, and batched video duration lookup. Requests are not retried;
// transport and quota failures are reported to the caller as-is.
