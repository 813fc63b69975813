package tmdb

// Genre is a TMDB genre entry.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionCountry is a production country on a movie payload.
type ProductionCountry struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

// CastMember is a cast entry from the credits sub-resource.
type CastMember struct {
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
	Order       int     `json:"order"`
}

// CrewMember is a crew entry from the credits sub-resource.
type CrewMember struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Credits holds the cast and crew lists returned with
// append_to_response=credits. Either list may be absent.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MovieDetails is the /movie/{id} payload. Nullable keys use pointers so
// an absent key is distinguishable from a present zero value.
type MovieDetails struct {
	ID                  int                 `json:"id"`
	Title               string              `json:"title"`
	OriginalTitle       string              `json:"original_title"`
	Tagline             string              `json:"tagline"`
	Overview            string              `json:"overview"`
	PosterPath          *string             `json:"poster_path"`
	ReleaseDate         string              `json:"release_date"`
	Runtime             int                 `json:"runtime"`
	Genres              []Genre             `json:"genres"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	VoteAverage         *float64            `json:"vote_average"`
	Credits             *Credits            `json:"credits"`
}

// TVCreator is an entry of the created_by list on a series payload.
type TVCreator struct {
	Name string `json:"name"`
}

// SeriesDetails is the /tv/{id} payload.
type SeriesDetails struct {
	ID               int         `json:"id"`
	Name             string      `json:"name"`
	OriginalName     string      `json:"original_name"`
	Overview         string      `json:"overview"`
	PosterPath       *string     `json:"poster_path"`
	FirstAirDate     string      `json:"first_air_date"`
	LastAirDate      string      `json:"last_air_date"`
	NumberOfSeasons  int         `json:"number_of_seasons"`
	NumberOfEpisodes int         `json:"number_of_episodes"`
	Genres           []Genre     `json:"genres"`
	OriginCountry    []string    `json:"origin_country"`
	VoteAverage      *float64    `json:"vote_average"`
	CreatedBy        []TVCreator `json:"created_by"`
	Credits          *Credits    `json:"credits"`
}

// Episode is a single episode of a season payload.
type Episode struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	EpisodeNumber int    `json:"episode_number"`
	AirDate       string `json:"air_date"`
}

// SeasonDetails is the /tv/{id}/season/{number} payload.
type SeasonDetails struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	PosterPath   *string   `json:"poster_path"`
	AirDate      string    `json:"air_date"`
	SeasonNumber int       `json:"season_number"`
	Episodes     []Episode `json:"episodes"`
}

// CollectionPart is a movie belonging to a collection.
type CollectionPart struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	ReleaseDate string   `json:"release_date"`
	Overview    string   `json:"overview"`
	VoteAverage *float64 `json:"vote_average"`
}

// CollectionDetails is the /collection/{id} payload.
type CollectionDetails struct {
	ID         int              `json:"id"`
	Name       string           `json:"name"`
	Overview   string           `json:"overview"`
	PosterPath *string          `json:"poster_path"`
	Parts      []CollectionPart `json:"parts"`
}

// ErrorResponse is the body TMDB returns on non-200 statuses.
type ErrorResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
