package types

// UserProfile is the backend's view of the authenticated account.
type UserProfile struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	GroupNumber string    `json:"group_number,omitempty"`
	Balance     int64     `json:"balance"`
	Role        Role      `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   Timestamp `json:"created_at"`
}

// ProfileUpdate is a partial update of the caller's own profile.
// Nil fields are left untouched by the backend.
type ProfileUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Registration creates a new student account.
type Registration struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	GroupNumber string `json:"group_number"`
}
