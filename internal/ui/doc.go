package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires the input field and Calculate trigger to the
// calculation service, renders progress and results, and hosts the API-key
// dialog and report export. All UI strings are localized via Localization.
// Background workers never touch widgets directly; every update goes through
// fyne.Do.
