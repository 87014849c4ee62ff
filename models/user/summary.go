package user

// Summary is the compact user reference attached to events. The discovery
// engine treats it as a read-only back-reference.
type Summary struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name,omitempty"`

	// PointsAsCreator is a rating proxy. nil means the rating is unknown.
	PointsAsCreator *float64 `json:"points_as_creator,omitempty"`
}
