package model

const (
	EntityName = "user"

	FieldID          = "user_id"
	FieldUsername    = "username"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldAssociation = "association"
	FieldEmail       = "email"
)

// User is the saved profile of a chat user, keyed by the platform's user id.
type User struct {
	ID          int64  `csv:"user_id,primary"`
	Username    string `csv:"username"`
	FirstName   string `csv:"first_name"`
	LastName    string `csv:"last_name"`
	Association string `csv:"association"`
	Email       string `csv:"email"`
}

// Identity is what the chat platform tells us about a user on every event.
type Identity struct {
	ID        int64  `json:"id"         validate:"required,gt=0"`
	Username  string `json:"username"   validate:"max=64"`
	FirstName string `json:"first_name" validate:"max=64"`
	LastName  string `json:"last_name"  validate:"max=64"`
}

// Overwrite copies the contact details of a newer reservation into the profile.
func (u *User) Overwrite(latest User) {
	u.Username = latest.Username
	u.FirstName = latest.FirstName
	u.LastName = latest.LastName
	u.Association = latest.Association
	u.Email = latest.Email
}
