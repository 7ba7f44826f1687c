package entity

// User is the aggregate root for the user domain.
// IDs are assigned by the store on insert and never change afterwards.
// Email is unique across all users.
type User struct {
	ID    int64
	Name  string
	Email string
}

// UserDraft carries incoming user data. A nil field means "not provided",
// which for updates reads as "keep the current value". This keeps an absent
// field distinct from one explicitly set to the empty string.
type UserDraft struct {
	Name  *string
	Email *string
}
