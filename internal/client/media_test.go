package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vidstream/backend/internal/config"
)

func newTestMediaClient(t *testing.T, baseURL string) *MediaClient {
	t.Helper()
	client, err := NewMediaClient(config.MediaConfig{
		CloudName: "demo",
		APIKey:    "key",
		APISecret: "secret",
		BaseURL:   baseURL,
	})
	if err != nil {
		t.Fatalf("NewMediaClient: %v", err)
	}
	return client
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/demo/video/upload" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if r.FormValue("api_key") != "key" || r.FormValue("signature") == "" {
			t.Errorf("missing auth fields: %v", r.MultipartForm.Value)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			t.Errorf("file part: %v", err)
		} else {
			file.Close()
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"public_id":"abc","secure_url":"https://res.example.com/demo/video/upload/v1/abc.mp4","duration":12.5}`))
	}))
	defer server.Close()

	client := newTestMediaClient(t, server.URL)
	result, err := client.Upload(context.Background(), strings.NewReader("data"), "clip.mp4", "video")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if result.PublicID != "abc" || result.Duration != 12.5 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestUploadSurfacesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"bad signature"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestMediaClient(t, server.URL)
	if _, err := client.Upload(context.Background(), strings.NewReader("data"), "a.png", "image"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestDestroy(t *testing.T) {
	var gotPublicID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/demo/image/destroy" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		gotPublicID = r.FormValue("public_id")
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	client := newTestMediaClient(t, server.URL)
	if err := client.Destroy(context.Background(), "abc", "image"); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if gotPublicID != "abc" {
		t.Fatalf("public_id not sent, got %q", gotPublicID)
	}
}

func TestPublicIDFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345/avatar1.png", "avatar1"},
		{"https://res.cloudinary.com/demo/video/upload/v99/clip.mp4?_s=abc", "clip"},
		{"https://res.cloudinary.com/demo/image/upload/avatar1.png", ""},
		{"not a url", ""},
	}
	for _, tc := range cases {
		if got := PublicIDFromURL(tc.url); got != tc.want {
			t.Errorf("PublicIDFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
