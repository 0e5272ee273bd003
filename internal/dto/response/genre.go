package response

import "moviehub/internal/data/entity"

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CompanyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MaxCompanies is how many production companies the detail page lists.
const MaxCompanies = 3

func GenresToResponse(genres []entity.Genre) []GenreResponse {
	out := make([]GenreResponse, 0, len(genres))
	for _, g := range genres {
		out = append(out, GenreResponse{ID: g.ID, Name: g.Name})
	}
	return out
}

func CompaniesToResponse(companies []entity.ProductionCompany) []CompanyResponse {
	if len(companies) > MaxCompanies {
		companies = companies[:MaxCompanies]
	}
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, CompanyResponse{ID: c.ID, Name: c.Name})
	}
	return out
}
