// Package autorace scrapes auto race cards from race-detail web pages.
// It fetches a single race page, parses its HTML and extracts race metadata
// and up to eight rider records into a typed Race.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, slog/).
package autorace
