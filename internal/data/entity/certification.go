package entity

type ReleaseType int

const (
	ReleaseTypePremiere ReleaseType = iota + 1
	ReleaseTypeTheatricalLimited
	ReleaseTypeTheatrical
	ReleaseTypeDigital
	ReleaseTypePhysical
	ReleaseTypeTV
)

// Label returns the display label of the release type, "Unknown" for values
// outside 1-6.
func (t ReleaseType) Label() string {
	switch t {
	case ReleaseTypePremiere:
		return "Premiere"
	case ReleaseTypeTheatricalLimited:
		return "Theatrical (Limited)"
	case ReleaseTypeTheatrical:
		return "Theatrical"
	case ReleaseTypeDigital:
		return "Digital"
	case ReleaseTypePhysical:
		return "Physical"
	case ReleaseTypeTV:
		return "TV"
	default:
		return "Unknown"
	}
}

type ReleaseEvent struct {
	Type          ReleaseType `json:"type"`
	Certification *string     `json:"certification"`
	ReleaseDate   string      `json:"release_date"`
	LanguageCode  *string     `json:"iso_639_1"`
	Note          *string     `json:"note"`
}

type CountryRelease struct {
	CountryCode string         `json:"iso_3166_1"`
	Releases    []ReleaseEvent `json:"release_dates"`
}

// CertificationSet is the per-country release history of one movie.
type CertificationSet struct {
	MovieID   int64            `json:"id"`
	Countries []CountryRelease `json:"results"`
}
