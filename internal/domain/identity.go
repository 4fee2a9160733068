package domain

// Identity represents the signed-in user as reported by the identity
// provider. Email is the task-ownership key and never changes for the
// lifetime of the account.
type Identity struct {
	UID         string `json:"uid,omitempty"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// UserRecord is the profile document registered with the task backend
// after account creation. Team is captured at registration only.
type UserRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Team     string `json:"team,omitempty"`
	PhotoURL string `json:"photoURL,omitempty"`
	Role     string `json:"role"`
}

// DefaultRole is assigned to every newly registered user.
const DefaultRole = "member"
