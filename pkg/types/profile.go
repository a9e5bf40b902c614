package types

// ProfileID is the primary key of the only user profile row.
const ProfileID int64 = 0

// DefaultProfileName is stored when a profile is saved without a name.
const DefaultProfileName = "Invitado"

// UserProfile is the single local user of the application.
type UserProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUserProfile builds the profile written for the optional name and email
// arguments of a save request. A nil name becomes DefaultProfileName and a nil
// email becomes the empty string. The ID is always ProfileID.
func NewUserProfile(name, email *string) UserProfile {
	p := UserProfile{ID: ProfileID, Name: DefaultProfileName}
	if name != nil {
		p.Name = *name
	}
	if email != nil {
		p.Email = *email
	}
	return p
}
