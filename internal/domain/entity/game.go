// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Game is a single entry of the locally curated GameSwap library.
// Entries are seeded by an out-of-core ingestion process and are immutable
// from the client's perspective.
type Game struct {
	ID          string // Document identifier, hex-encoded.
	Title       string // Display title of the game.
	Publisher   string // Publishing studio name.
	Released    string // Release date as provided by the seeding source.
	Description string // Free text; may contain markup until sanitized.
	Image       string // Cover image URL. Optional.
	Available   bool   // Whether the game can currently be rented.
}

// RentalRecord is a user's claim on a Game plus its computed return date.
// A user's rental set holds at most one record per game id.
type RentalRecord struct {
	GameID     string // Reference to the rented Game's id.
	ReturnDate string // Informational return date, formatted MMM-DD-YYYY.
	Game       *Game  // Resolved Game reference. Nil until populated.
}
