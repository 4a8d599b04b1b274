package httpapi

import "github.com/teyvatdex/teyvatdex/internal/server/models"

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addFavoriteRequest struct {
	CharacterID int64 `json:"characterId"`
}

// userPayload is the outward shape of a user. The password hash never
// leaves the server.
type userPayload struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toUserPayload(u *models.User) userPayload {
	return userPayload{ID: u.ID, Username: u.Username, Email: u.Email}
}

type authResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    userPayload `json:"user"`
}
