package domain

// User mirrors the upstream account record. It is a transient view model
// built from a login/register response, never persisted locally.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Profile holds the editable profile fields attached to a user.
type Profile struct {
	Phone             string `json:"phone"`
	PreferredLanguage string `json:"preferred_language"`
}

// Account is the combined {user, profile} payload returned by the upstream
// "me" endpoint.
type Account struct {
	User    User    `json:"user"`
	Profile Profile `json:"profile"`
}

// AuthPayload is what the upstream login endpoint hands back: an access token
// plus the authenticated user. The token is opaque to this service; it is
// forwarded on every subsequent upstream call.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ResetRequest is the upstream response to a forgot-password request. Email is
// only present when the identifier matched an account.
type ResetRequest struct {
	Detail string `json:"detail"`
	Email  string `json:"email,omitempty"`
}

// Address is a billing address record, CRUD'd against the upstream.
type Address struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	IsDefault  bool   `json:"is_default"`
}
