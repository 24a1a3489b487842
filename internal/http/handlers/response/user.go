package response

import (
	"roomie/internal/core/domain/user"
	"time"
)

// User deliberately has no representation for credential fields; password
// hashes and reset-token state never leave the server.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	ProfilePicture *string   `json:"profilePicture,omitempty"`
	About          *string   `json:"about,omitempty"`
	Age            *int      `json:"age,omitempty"`
	College        *string   `json:"college,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Name = du.Name
	u.Email = string(du.Email)
	u.Role = string(du.Role)
	if du.ProfilePicture.IsPresent {
		profilePicture := du.ProfilePicture.Value
		u.ProfilePicture = &profilePicture
	}
	if du.About.IsPresent {
		about := du.About.Value
		u.About = &about
	}
	if du.Age.IsPresent {
		age := du.Age.Value
		u.Age = &age
	}
	if du.College.IsPresent {
		college := du.College.Value
		u.College = &college
	}
	u.CreatedAt = du.CreatedAt
}
