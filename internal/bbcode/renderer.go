package bbcode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bbgen/internal/media"
)

// Kind selects which presentation template a record is rendered with.
type Kind string

const (
	KindMovie      Kind = "movie"
	KindSeries     Kind = "series"
	KindSeason     Kind = "season"
	KindCollection Kind = "collection"
)

var ErrTemplateNotFound = errors.New("template file not found")

// Renderer substitutes {{FIELD}} placeholders in plain-text templates.
// There is no templating language: substitution is literal and one-pass.
type Renderer struct {
	dir string
}

func NewRenderer(dir string) *Renderer {
	return &Renderer{dir: dir}
}

// Render loads the template for kind and substitutes every placeholder
// with the matching record field. Textual lists join with ", ", actor
// photos are wrapped in [img] tags and joined with a single space.
func (r *Renderer) Render(kind Kind, rec media.Record) (string, error) {
	path := filepath.Join(r.dir, string(kind)+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		return "", fmt.Errorf("failed to read template %s: %w", path, err)
	}

	photos := make([]string, 0, len(rec.ActorsPhotos))
	for _, url := range rec.ActorsPhotos {
		photos = append(photos, "[img]"+url+"[/img]")
	}

	replacer := strings.NewReplacer(
		"{{TITLE}}", defaultNA(rec.Title),
		"{{ORIGINAL_TITLE}}", defaultNA(rec.OriginalTitle),
		"{{TAGLINE}}", rec.Tagline,
		"{{OVERVIEW}}", rec.Overview,
		"{{POSTER_URL}}", rec.PosterURL,
		"{{RELEASE_DATE}}", defaultNA(rec.ReleaseDate),
		"{{RUNTIME}}", defaultNA(rec.RuntimeFormatted),
		"{{RATING}}", defaultNA(rec.Rating),
		"{{RATING_BADGE}}", rec.RatingBadge,
		"{{FIRST_AIR_DATE}}", defaultNA(rec.FirstAirDate),
		"{{LAST_AIR_DATE}}", defaultNA(rec.LastAirDate),
		"{{AIR_DATE}}", defaultNA(rec.AirDate),
		"{{SEASON_NUMBER}}", strconv.Itoa(rec.SeasonNumber),
		"{{SEASONS_COUNT}}", strconv.Itoa(rec.SeasonsCount),
		"{{EPISODES_COUNT}}", strconv.Itoa(rec.EpisodesCount),
		"{{PARTS_COUNT}}", strconv.Itoa(rec.PartsCount),
		"{{GENRES}}", strings.Join(rec.Genres, ", "),
		"{{COUNTRIES}}", strings.Join(rec.Countries, ", "),
		"{{DIRECTORS}}", strings.Join(rec.Directors, ", "),
		"{{CREATORS}}", strings.Join(rec.Creators, ", "),
		"{{CAST}}", strings.Join(rec.Actors, ", "),
		"{{PARTS}}", strings.Join(rec.Parts, ", "),
		"{{ACTORS_PHOTOS}}", strings.Join(photos, " "),
	)

	return replacer.Replace(string(data)), nil
}

func defaultNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
