package response

import (
	"fmt"

	"moviehub/internal/data/entity"
)

const (
	NotRated           = "Not Rated"
	NoCertifications   = "Certification information is not available for this movie."
	CertificationTitle = "Movie Certifications"
)

var countryNames = map[string]string{
	"US": "United States",
	"GB": "United Kingdom",
	"CA": "Canada",
	"AU": "Australia",
	"DE": "Germany",
	"FR": "France",
	"IT": "Italy",
	"ES": "Spain",
	"JP": "Japan",
	"KR": "South Korea",
	"IN": "India",
	"BR": "Brazil",
	"MX": "Mexico",
	"RU": "Russia",
	"CN": "China",
}

// CountryName maps an ISO 3166-1 code to its display name. Codes outside
// the table are returned unchanged.
func CountryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}

type ReleaseResponse struct {
	Type          int    `json:"type"`
	TypeLabel     string `json:"type_label"`
	Certification string `json:"certification"`
	ReleaseDate   string `json:"release_date"`
	Language      string `json:"language"`
	Note          string `json:"note,omitempty"`
}

type CountryCertificationResponse struct {
	CountryCode  string            `json:"country_code"`
	CountryName  string            `json:"country_name"`
	ReleaseCount string            `json:"release_count"`
	Releases     []ReleaseResponse `json:"releases"`
}

type CertificationResponse struct {
	Title      string                         `json:"title"`
	Subtitle   string                         `json:"subtitle"`
	MovieHref  string                         `json:"movie_href"`
	Movie      MovieCardResponse              `json:"movie"`
	Countries  []CountryCertificationResponse `json:"countries"`
	EmptyLabel string                         `json:"empty_label,omitempty"`
}

func ReleaseToResponse(r entity.ReleaseEvent) ReleaseResponse {
	cert, ok := entity.Optional(r.Certification)
	if !ok {
		cert = NotRated
	}
	note, _ := entity.Optional(r.Note)

	return ReleaseResponse{
		Type:          int(r.Type),
		TypeLabel:     r.Type.Label(),
		Certification: cert,
		ReleaseDate:   FormatLongDate(r.ReleaseDate),
		Language:      LanguageCode(r.LanguageCode),
		Note:          note,
	}
}

// CountriesToResponse keeps the catalog's country and release order.
func CountriesToResponse(set *entity.CertificationSet) []CountryCertificationResponse {
	if set == nil {
		return []CountryCertificationResponse{}
	}

	out := make([]CountryCertificationResponse, 0, len(set.Countries))
	for _, c := range set.Countries {
		releases := make([]ReleaseResponse, 0, len(c.Releases))
		for _, r := range c.Releases {
			releases = append(releases, ReleaseToResponse(r))
		}

		out = append(out, CountryCertificationResponse{
			CountryCode:  c.CountryCode,
			CountryName:  CountryName(c.CountryCode),
			ReleaseCount: ReleaseCount(len(c.Releases)),
			Releases:     releases,
		})
	}
	return out
}

func ReleaseCount(n int) string {
	if n == 1 {
		return "1 release"
	}
	return fmt.Sprintf("%d releases", n)
}

func CertificationToResponse(movie *entity.MovieDetail, set *entity.CertificationSet, images Images) CertificationResponse {
	resp := CertificationResponse{
		Title:     CertificationTitle,
		Countries: CountriesToResponse(set),
	}

	if movie != nil {
		resp.Subtitle = `Ratings and certificates for "` + movie.Title + `"`
		resp.MovieHref = MovieHref(movie.ID)
		resp.Movie = MovieToCard(movie.MovieSummary, images)
	}
	if len(resp.Countries) == 0 {
		resp.EmptyLabel = NoCertifications
	}
	return resp
}
