package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"
)

// A fake qBittorrent Web API for testing `bbgen torrent list` without a
// running instance. Accepts admin/adminadmin, hands out a SID cookie and
// serves a randomized torrent list.
func main() {
	http.HandleFunc("/api/v2/auth/login", loginHandler)
	http.HandleFunc("/api/v2/torrents/info", torrentsHandler)

	fmt.Println("Fake qBittorrent server starting on :8080")
	fmt.Println("Credentials: admin / adminadmin")
	log.Fatal(http.ListenAndServe(":8080", nil))
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	log.Printf("Login attempt for user %q", username)

	// The real API answers 200 with the literal body "Fails." on bad
	// credentials instead of an error status.
	if username != "admin" || password != "adminadmin" {
		fmt.Fprint(w, "Fails.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:  "SID",
		Value: fmt.Sprintf("fakesession%d", rand.Intn(1000000)),
		Path:  "/",
	})
	fmt.Fprint(w, "Ok.")
}

func torrentsHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("SID")
	if err != nil || cookie.Value == "" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	log.Printf("Torrent list request: %s", r.URL.String())

	states := []string{"downloading", "uploading", "stalledUP", "pausedDL", "queuedDL"}
	names := []string{
		"Some.Movie.2024.MULTI.1080p.WEB-DL.x264",
		"Another.Film.1999.2160p.BluRay.REMUX.HEVC",
		"Great.Series.S02.COMPLETE.720p.WEB-DL",
		"Documentary.Pack.Vol3.1080p.x265",
		"Old.Classic.1962.DVDRip.x264",
	}

	count := rand.Intn(len(names)) + 1
	torrents := make([]map[string]interface{}, 0, count)
	for i := 0; i < count; i++ {
		progress := rand.Float64()
		torrents = append(torrents, map[string]interface{}{
			"hash":     fmt.Sprintf("fakehash%08d", i),
			"name":     names[i],
			"state":    states[rand.Intn(len(states))],
			"size":     rand.Int63n(50000000000) + 500000000,
			"progress": progress,
			"dlspeed":  rand.Int63n(10000000),
			"upspeed":  rand.Int63n(2000000),
			"category": "movies",
			"ratio":    rand.Float64() * 3,
			"eta":      rand.Int63n(86400),
			"added_on": time.Now().Add(-time.Duration(rand.Intn(24*30)) * time.Hour).Unix(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(torrents)
}
