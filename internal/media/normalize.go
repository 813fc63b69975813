package media

import (
	"fmt"

	"bbgen/internal/clients/tmdb"
)

const (
	posterSize = "/original"
	photoSize  = "/w138_and_h175_face"

	actorLimit = 6
	photoLimit = 4
)

// Normalizer flattens raw TMDB payloads into Records. Missing optional
// sections never fail; they resolve to the Record defaults.
type Normalizer struct {
	imageBaseURL string
}

func NewNormalizer(imageBaseURL string) *Normalizer {
	return &Normalizer{imageBaseURL: imageBaseURL}
}

// NormalizeMovie flattens a movie payload.
func (n *Normalizer) NormalizeMovie(m *tmdb.MovieDetails) Record {
	countries := make([]string, 0, len(m.ProductionCountries))
	for _, pc := range m.ProductionCountries {
		countries = append(countries, TranslateCountry(pc.Name))
	}

	rec := Record{
		Title:            m.Title,
		OriginalTitle:    m.OriginalTitle,
		Tagline:          m.Tagline,
		Overview:         m.Overview,
		PosterURL:        n.posterURL(m.PosterPath),
		ReleaseDate:      FormatDate(m.ReleaseDate),
		Runtime:          m.Runtime,
		RuntimeFormatted: FormatRuntime(m.Runtime),
		Rating:           formatRating(m.VoteAverage),
		RatingBadge:      badge(m.VoteAverage),
		Genres:           genreNames(m.Genres),
		Countries:        countries,
	}
	rec.Directors = extractDirectors(m.Credits)
	rec.Actors = extractActors(m.Credits)
	rec.ActorsPhotos = n.extractActorsPhotos(m.Credits)
	return rec
}

// NormalizeSeries flattens a TV series payload.
func (n *Normalizer) NormalizeSeries(s *tmdb.SeriesDetails) Record {
	rec := Record{
		Title:         s.Name,
		OriginalTitle: s.OriginalName,
		Overview:      s.Overview,
		PosterURL:     n.posterURL(s.PosterPath),
		FirstAirDate:  FormatDate(s.FirstAirDate),
		LastAirDate:   FormatDate(s.LastAirDate),
		SeasonsCount:  s.NumberOfSeasons,
		EpisodesCount: s.NumberOfEpisodes,
		Rating:        formatRating(s.VoteAverage),
		RatingBadge:   badge(s.VoteAverage),
		Genres:        genreNames(s.Genres),
		Countries:     translateCodes(s.OriginCountry),
		Creators:      creatorNames(s.CreatedBy),
	}
	rec.Actors = extractActors(s.Credits)
	rec.ActorsPhotos = n.extractActorsPhotos(s.Credits)
	return rec
}

// NormalizeSeason merges a series payload with one of its seasons. The
// series supplies the general metadata, the season supplies the poster,
// air date, episode count and its own overview. A blank season overview
// falls back to the series overview.
func (n *Normalizer) NormalizeSeason(s *tmdb.SeriesDetails, season *tmdb.SeasonDetails) Record {
	overview := season.Overview
	if overview == "" {
		overview = s.Overview
	}

	rec := Record{
		Title:         s.Name,
		OriginalTitle: s.OriginalName,
		Overview:      overview,
		PosterURL:     n.posterURL(season.PosterPath),
		AirDate:       FormatDate(season.AirDate),
		SeasonNumber:  season.SeasonNumber,
		EpisodesCount: len(season.Episodes),
		Rating:        formatRating(s.VoteAverage),
		RatingBadge:   badge(s.VoteAverage),
		Genres:        genreNames(s.Genres),
		Countries:     translateCodes(s.OriginCountry),
		Creators:      creatorNames(s.CreatedBy),
	}
	rec.Actors = extractActors(s.Credits)
	rec.ActorsPhotos = n.extractActorsPhotos(s.Credits)
	return rec
}

// NormalizeCollection flattens a movie collection payload. The parts list
// keeps the payload ordering.
func (n *Normalizer) NormalizeCollection(c *tmdb.CollectionDetails) Record {
	parts := make([]string, 0, len(c.Parts))
	for _, p := range c.Parts {
		parts = append(parts, p.Title)
	}

	return Record{
		Title:      c.Name,
		Overview:   c.Overview,
		PosterURL:  n.posterURL(c.PosterPath),
		PartsCount: len(c.Parts),
		Parts:      parts,
	}
}

func (n *Normalizer) posterURL(path *string) string {
	if path == nil || *path == "" {
		return ""
	}
	return n.imageBaseURL + posterSize + *path
}

// formatRating follows the original presence check: a vote_average key
// that is present, even at exactly 0, still yields a numeric string.
func formatRating(vote *float64) string {
	if vote == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f/10", *vote)
}

// badge only fires for strictly positive ratings, so a 0.0 score shows
// "0.0/10" with no badge next to it.
func badge(vote *float64) string {
	if vote == nil || *vote <= 0 {
		return ""
	}
	return RatingBadge(*vote)
}

func extractDirectors(credits *tmdb.Credits) []string {
	if credits == nil {
		return []string{}
	}
	directors := []string{}
	for _, crew := range credits.Crew {
		if crew.Job == "Director" {
			directors = append(directors, crew.Name)
		}
	}
	return directors
}

func extractActors(credits *tmdb.Credits) []string {
	if credits == nil {
		return []string{}
	}
	cast := credits.Cast
	if len(cast) > actorLimit {
		cast = cast[:actorLimit]
	}
	actors := make([]string, 0, len(cast))
	for _, actor := range cast {
		actors = append(actors, actor.Name)
	}
	return actors
}

// extractActorsPhotos only considers the first photoLimit cast entries and
// then drops those without a profile photo, so the result is not simply a
// prefix of the actors list.
func (n *Normalizer) extractActorsPhotos(credits *tmdb.Credits) []string {
	if credits == nil {
		return []string{}
	}
	cast := credits.Cast
	if len(cast) > photoLimit {
		cast = cast[:photoLimit]
	}
	photos := []string{}
	for _, actor := range cast {
		if actor.ProfilePath != nil && *actor.ProfilePath != "" {
			photos = append(photos, n.imageBaseURL+photoSize+*actor.ProfilePath)
		}
	}
	return photos
}

func genreNames(genres []tmdb.Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

func creatorNames(creators []tmdb.TVCreator) []string {
	names := make([]string, 0, len(creators))
	for _, c := range creators {
		names = append(names, c.Name)
	}
	return names
}

func translateCodes(codes []string) []string {
	translated := make([]string, 0, len(codes))
	for _, code := range codes {
		translated = append(translated, TranslateCountryCode(code))
	}
	return translated
}
