package media

// Record is the flat, display-ready view of one movie, series, season or
// collection. Every field has a deterministic default so the template
// renderer never sees a missing value: "N/A" for scalar text, the empty
// string for URLs and overviews, empty slices for lists.
type Record struct {
	Title            string
	OriginalTitle    string
	Tagline          string
	Overview         string
	PosterURL        string
	ReleaseDate      string
	Runtime          int
	RuntimeFormatted string
	Rating           string
	RatingBadge      string

	FirstAirDate  string
	LastAirDate   string
	AirDate       string
	SeasonsCount  int
	EpisodesCount int
	SeasonNumber  int
	PartsCount    int

	Genres       []string
	Countries    []string
	Directors    []string
	Creators     []string
	Actors       []string
	ActorsPhotos []string
	Parts        []string
}
