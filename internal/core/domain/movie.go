package domain

type Movie struct {
	Title      string `json:"title"`
	Overview   string `json:"overview"`
	Genre      string `json:"genre"`
	PosterPath string `json:"poster_path"`
}
