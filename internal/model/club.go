package model

type Club struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ShortName      string `json:"short_name"`
	FullName       string `json:"full_name"`
	Description    string `json:"description"`
	LogoURL        string `json:"logo_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	Slogan         string `json:"slogan"`
	Tagline        string `json:"tagline"`
}

type GetClubsRequest struct{}

type GetClubsResponse struct {
	Clubs []Club `json:"clubs"`
}

type GetClubRequest struct {
	ID string `json:"id"`
}

type GetClubResponse Club

type GetCurrentClubRequest struct{}

type GetCurrentClubResponse struct {
	ClubID string `json:"club_id"`
}

type SetCurrentClubRequest struct {
	ClubID string `json:"club_id"`
}

type SetCurrentClubResponse struct{}
