package model

// AccessToken is the object carried inside the signed access token.
type AccessToken struct {
	Address string `json:"address"`
}

type LoginRequest struct {
	Address string `json:"address"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
