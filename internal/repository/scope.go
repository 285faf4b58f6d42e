package repository

// Tombstone filters shared by every visible-read query. Soft-deleted rows and
// archived goals must never leak through a listing or detail lookup, so the
// WHERE fragments live here instead of being retyped per query.
const (
	boardNotDeleted    = "boards.is_deleted = FALSE"
	categoryNotDeleted = "goal_categories.is_deleted = FALSE"
	goalNotArchived    = "goals.status <> 'archived'"
)
