package models

// Session is the identity resolved by the authorization gate, stored in Redis
// keyed by session id.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
