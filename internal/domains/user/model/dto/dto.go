package dto

import (
	"cargobike/internal/domains/user/model"
)

// ProfileResponse is the stored profile as exposed by the admin API.
type ProfileResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Association string `json:"association"`
	Email       string `json:"email"`
}

func (r *ProfileResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Username = user.Username
	r.FirstName = user.FirstName
	r.LastName = user.LastName
	r.Association = user.Association
	r.Email = user.Email
}
