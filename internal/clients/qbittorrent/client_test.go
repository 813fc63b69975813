package qbittorrent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(server.URL, "admin", "adminadmin", zerolog.Nop())
}

func loginOK(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: "SID", Value: "abc123", Path: "/"})
	fmt.Fprint(w, "Ok.")
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2/auth/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("bad form: %v", err)
		}
		if r.PostFormValue("username") != "admin" || r.PostFormValue("password") != "adminadmin" {
			t.Errorf("credentials not forwarded")
		}
		loginOK(w)
	}))
	defer server.Close()

	client := newTestClient(server)
	if !client.Login(context.Background()) {
		t.Fatal("Login() = false, want true")
	}
	if client.cookie == nil || client.cookie.Value != "abc123" {
		t.Errorf("cookie = %+v, want SID=abc123", client.cookie)
	}
}

func TestClient_LoginFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"bad credentials body",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "Fails.")
			},
		},
		{
			"non-200 status",
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			"missing SID cookie",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "Ok.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient(server)
			if client.Login(context.Background()) {
				t.Error("Login() = true, want false")
			}
			if client.cookie != nil {
				t.Errorf("cookie = %+v, want nil", client.cookie)
			}
		})
	}
}

func TestClient_ListTorrents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/auth/login":
			loginOK(w)
		case "/api/v2/torrents/info":
			cookie, err := r.Cookie("SID")
			if err != nil || cookie.Value != "abc123" {
				t.Errorf("session cookie not sent: %v", err)
			}
			if r.Header.Get("Referer") == "" {
				t.Error("Referer header not set")
			}
			if r.URL.Query().Get("filter") != "downloading" {
				t.Errorf("filter = %q", r.URL.Query().Get("filter"))
			}
			json.NewEncoder(w).Encode([]Torrent{
				{Name: "Some.Movie.2024", State: "downloading", Size: 1536, Progress: 0.455, DLSpeed: 1048576},
			})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(server)
	torrents := client.ListTorrents(context.Background(), ListFilters{Filter: "downloading"})

	if len(torrents) != 1 {
		t.Fatalf("got %d torrents, want 1", len(torrents))
	}
	if torrents[0].Name != "Some.Movie.2024" {
		t.Errorf("Name = %q", torrents[0].Name)
	}
	if torrents[0].Progress != 0.455 {
		t.Errorf("Progress = %f", torrents[0].Progress)
	}
}

func TestClient_ListTorrentsReusesSession(t *testing.T) {
	logins := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/auth/login":
			logins++
			loginOK(w)
		case "/api/v2/torrents/info":
			fmt.Fprint(w, "[]")
		}
	}))
	defer server.Close()

	client := newTestClient(server)
	ctx := context.Background()
	client.ListTorrents(ctx, ListFilters{})
	client.ListTorrents(ctx, ListFilters{})

	if logins != 1 {
		t.Errorf("login called %d times, want 1", logins)
	}
}

func TestClient_ListTorrentsFailuresYieldEmpty(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"login rejected",
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "Fails.")
			},
		},
		{
			"list returns 403",
			func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/api/v2/auth/login" {
					loginOK(w)
					return
				}
				w.WriteHeader(http.StatusForbidden)
			},
		},
		{
			"list returns garbage",
			func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/api/v2/auth/login" {
					loginOK(w)
					return
				}
				fmt.Fprint(w, "not json")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			torrents := newTestClient(server).ListTorrents(context.Background(), ListFilters{})
			if len(torrents) != 0 {
				t.Errorf("got %d torrents, want empty result", len(torrents))
			}
		})
	}
}

func TestClient_ListTorrentsConnectionRefused(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "admin", "adminadmin", zerolog.Nop())
	torrents := client.ListTorrents(context.Background(), ListFilters{})
	if torrents != nil {
		t.Errorf("got %v, want nil on connection failure", torrents)
	}
}
