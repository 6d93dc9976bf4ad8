package models

// Row statuses. Deletion is soft for most resources: the status flips to
// StatusDeleted and default listings stop returning the row.
const (
	StatusPublished = "published"
	StatusActive    = "active"
	StatusDeleted   = "deleted"
)
