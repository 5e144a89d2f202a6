// Package namelist scrapes complete name listings from behindthename.com
// and its surnames sister site. It walks the paginated listing, extracts
// each entry's name, usage and description, and streams them as CSV.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, slog/).
package namelist
