package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"bbgen/internal/bbcode"
	"bbgen/internal/clients/qbittorrent"
	"bbgen/internal/clients/tmdb"
	"bbgen/internal/config"
	"bbgen/internal/media"
	"bbgen/internal/utils"
)

func main() {
	configPath := flag.String("config", "config.yml", "Path to configuration file")
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 || isHelp(args[0]) {
		printUsage()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: failed to load config:", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.App.Debug, cfg.App.DataPath)

	switch args[0] {
	case "generate":
		os.Exit(generateCmd(cfg, logger, args[1:]))
	case "torrent":
		os.Exit(torrentCmd(cfg, logger, args[1:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
}

func generateCmd(cfg *config.Config, logger zerolog.Logger, args []string) int {
	if len(args) < 2 {
		printGenerateUsage()
		return 2
	}

	kind := args[0]
	id, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid TMDB id %q\n", args[1])
		return 2
	}

	client := tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.Language, cfg.TMDB.BaseURL, logger)
	normalizer := media.NewNormalizer(cfg.TMDB.ImageBaseURL)
	renderer := bbcode.NewRenderer(cfg.Templates.Dir)
	ctx := context.Background()

	var (
		rec          media.Record
		templateKind bbcode.Kind
	)

	switch kind {
	case "movie":
		details, err := client.MovieDetails(ctx, id)
		if err != nil {
			return fail(logger, err)
		}
		rec = normalizer.NormalizeMovie(details)
		templateKind = bbcode.KindMovie

	case "series":
		details, err := client.SeriesDetails(ctx, id)
		if err != nil {
			return fail(logger, err)
		}
		rec = normalizer.NormalizeSeries(details)
		templateKind = bbcode.KindSeries

	case "season":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "season requires a season number")
			printGenerateUsage()
			return 2
		}
		seasonNumber, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid season number %q\n", args[2])
			return 2
		}
		// Both fetches must succeed before anything is rendered.
		series, err := client.SeriesDetails(ctx, id)
		if err != nil {
			return fail(logger, err)
		}
		season, err := client.SeasonDetails(ctx, id, seasonNumber)
		if err != nil {
			return fail(logger, err)
		}
		rec = normalizer.NormalizeSeason(series, season)
		templateKind = bbcode.KindSeason

	case "collection":
		details, err := client.CollectionDetails(ctx, id)
		if err != nil {
			return fail(logger, err)
		}
		rec = normalizer.NormalizeCollection(details)
		templateKind = bbcode.KindCollection

	default:
		fmt.Fprintf(os.Stderr, "unknown media kind %q\n\n", kind)
		printGenerateUsage()
		return 2
	}

	output, err := renderer.Render(templateKind, rec)
	if err != nil {
		return fail(logger, err)
	}

	fmt.Println(output)
	return 0
}

func torrentCmd(cfg *config.Config, logger zerolog.Logger, args []string) int {
	if len(args) < 1 || args[0] != "list" {
		printUsage()
		return 2
	}

	fs := flag.NewFlagSet("torrent list", flag.ContinueOnError)
	filter := fs.String("filter", "", "State filter (downloading, completed, ...)")
	category := fs.String("category", "", "Category filter")
	sortBy := fs.String("sort", "", "Sort field")
	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	client := qbittorrent.NewClient(cfg.QBittorrent.URL, cfg.QBittorrent.Username, cfg.QBittorrent.Password, logger)
	torrents := client.ListTorrents(context.Background(), qbittorrent.ListFilters{
		Filter:   *filter,
		Category: *category,
		Sort:     *sortBy,
	})

	if len(torrents) == 0 {
		// Connection failures are logged; an empty listing is not an error.
		fmt.Println("No torrents found or unable to connect to qBittorrent. Check logs for details.")
		return 0
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Name\tState\tSize\tProgress\tDL Speed\tUP Speed")
	for _, t := range torrents {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s/s\t%s/s\n",
			t.Name,
			t.State,
			utils.FormatBytes(t.Size),
			formatProgress(t.Progress),
			utils.FormatBytes(t.DLSpeed),
			utils.FormatBytes(t.UPSpeed),
		)
	}
	w.Flush()

	fmt.Printf("\nFound %d torrent(s).\n", len(torrents))
	return 0
}

func fail(logger zerolog.Logger, err error) int {
	logger.Error().Err(err).Msg("command failed")
	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}

// formatProgress renders a 0-1 ratio as a percentage rounded to two
// decimal places, trailing zeros dropped.
func formatProgress(progress float64) string {
	percent := math.Round(progress*10000) / 100
	return strconv.FormatFloat(percent, 'f', -1, 64) + "%"
}

func isHelp(arg string) bool {
	return arg == "help" || arg == "-h" || arg == "--help"
}

func printUsage() {
	fmt.Print(`bbgen - TMDB BBCode presentation generator

Usage:
  bbgen [-config config.yml] generate movie <tmdb-id>
  bbgen [-config config.yml] generate series <tmdb-id>
  bbgen [-config config.yml] generate season <tmdb-id> <season-number>
  bbgen [-config config.yml] generate collection <tmdb-id>
  bbgen [-config config.yml] torrent list [-filter f] [-category c] [-sort s]

The TMDB API key is read from the config file or the TMDB_API_KEY
environment variable (a .env file is honored).
`)
}

func printGenerateUsage() {
	fmt.Fprint(os.Stderr, `Usage:
  bbgen generate movie <tmdb-id>
  bbgen generate series <tmdb-id>
  bbgen generate season <tmdb-id> <season-number>
  bbgen generate collection <tmdb-id>
`)
}
