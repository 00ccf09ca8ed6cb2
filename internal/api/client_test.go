package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"kiib/internal/api"
	"kiib/internal/domain"
	"kiib/internal/store"
)

// newBackend starts a mock campus backend. Handlers record the last seen
// Authorization header into gotAuth.
func newBackend(t *testing.T, gotAuth *string) *httptest.Server {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, req *http.Request) {
		*gotAuth = req.Header.Get("Authorization")
		if err := req.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if req.PostFormValue("username") != "43K001" || req.PostFormValue("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok123",
			"token_type":   "bearer",
			"role":         "student",
		})
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/v1/auth/me", func(w http.ResponseWriter, req *http.Request) {
		*gotAuth = req.Header.Get("Authorization")
		if req.Header.Get("Authorization") != "Bearer tok123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": 1, "username": "43K001", "full_name": "Test Student",
			"balance": 42, "role": "student",
		})
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/v1/ledger/history", func(w http.ResponseWriter, req *http.Request) {
		*gotAuth = req.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]map[string]any{})
	}).Methods(http.MethodGet)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, base string) (*api.Client, domain.CredentialStore) {
	t.Helper()
	creds := store.NewCredentialFileStore(t.TempDir())
	return api.New(base+"/api/v1", &http.Client{}, creds), creds
}

func TestLogin_Scenario_StoresNothingButReturnsCredential(t *testing.T) {
	var gotAuth string
	srv := newBackend(t, &gotAuth)
	client, creds := newClient(t, srv.URL)

	cred, err := client.Login(context.Background(), "43K001", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if cred.AccessToken != "tok123" || cred.Role != domain.RoleStudent {
		t.Fatalf("unexpected credential %+v", cred)
	}
	// Persisting is the session service's job, not the client's.
	if _, ok, _ := creds.LoadCredential(); ok {
		t.Fatal("client must not persist the credential itself")
	}

	// After the credential is stored, /auth/me carries the exact header.
	if err := creds.SaveCredential(cred); err != nil {
		t.Fatalf("save: %v", err)
	}
	profile, err := client.Me(context.Background())
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("authorization header = %q, want %q", gotAuth, "Bearer tok123")
	}
	if profile.Username != "43K001" {
		t.Fatalf("unexpected profile %+v", profile)
	}
}

func TestRequest_NoCredential_NoAuthorizationHeader(t *testing.T) {
	gotAuth := "sentinel"
	srv := newBackend(t, &gotAuth)
	client, _ := newClient(t, srv.URL)

	if _, err := client.History(context.Background()); err != nil {
		t.Fatalf("history: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no authorization header, got %q", gotAuth)
	}
}

func TestUnauthorized_EvictsCredentialAndNotifies(t *testing.T) {
	var gotAuth string
	srv := newBackend(t, &gotAuth)
	client, creds := newClient(t, srv.URL)

	if err := creds.SaveCredential(domain.Credential{AccessToken: "stale", Role: domain.RoleStudent}); err != nil {
		t.Fatalf("save: %v", err)
	}
	notified := false
	client.OnUnauthorized(func() { notified = true })

	_, err := client.Me(context.Background())
	if !api.IsUnauthorized(err) {
		t.Fatalf("expected 401, got %v", err)
	}
	if !notified {
		t.Fatal("invalidation hook not fired")
	}
	if _, ok, _ := creds.LoadCredential(); ok {
		t.Fatal("credential still persisted after 401")
	}

	// A subsequent call must carry no authorization header.
	if _, err := client.History(context.Background()); err != nil {
		t.Fatalf("history: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no authorization header after eviction, got %q", gotAuth)
	}
}

func TestErrors_PassThroughWithDetail(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Rate limit exceeded: 5 per 1 minute"})
	})
	r.HandleFunc("/api/v1/ledger/accrue", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "admin only"})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, creds := newClient(t, srv.URL)
	if err := creds.SaveCredential(domain.Credential{AccessToken: "tok", Role: domain.RoleStudent}); err != nil {
		t.Fatalf("save: %v", err)
	}

	_, err := client.Login(context.Background(), "43K001", "secret")
	if !api.IsRateLimited(err) {
		t.Fatalf("expected 429, got %v", err)
	}
	if !strings.Contains(err.Error(), "Rate limit exceeded") {
		t.Fatalf("detail lost: %v", err)
	}

	_, err = client.Accrue(context.Background(), domain.AccrueRequest{Username: "43K002", Amount: 5, Reason: "x"})
	if !api.IsForbidden(err) {
		t.Fatalf("expected 403, got %v", err)
	}
	// Non-401 failures must not touch the stored credential.
	if _, ok, _ := creds.LoadCredential(); !ok {
		t.Fatal("credential evicted by a non-401 failure")
	}
}

func TestLogin_UnknownRole_RejectedAtBoundary(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access_token": "tok", "role": "superuser"})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, _ := newClient(t, srv.URL)
	if _, err := client.Login(context.Background(), "u", "p"); err == nil {
		t.Fatal("expected unknown role to be rejected")
	}
}

func TestCreatePost_MultipartFields(t *testing.T) {
	var gotTitle, gotContent, gotImage string
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/posts/", func(w http.ResponseWriter, req *http.Request) {
		if err := req.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, "bad multipart", http.StatusBadRequest)
			return
		}
		gotTitle = req.FormValue("title")
		gotContent = req.FormValue("content")
		if _, hdr, err := req.FormFile("image"); err == nil {
			gotImage = hdr.Filename
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "title": gotTitle, "content": gotContent})
	}).Methods(http.MethodPost)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, _ := newClient(t, srv.URL)
	post, err := client.CreatePost(context.Background(), domain.PostDraft{
		Title:     "CTF results",
		Content:   "Congratulations",
		ImageName: "banner.png",
		Image:     strings.NewReader("png-bytes"),
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.ID != 7 || gotTitle != "CTF results" || gotContent != "Congratulations" || gotImage != "banner.png" {
		t.Fatalf("multipart fields lost: title=%q content=%q image=%q", gotTitle, gotContent, gotImage)
	}
}

func TestUploadAchievement_SendsFilePart(t *testing.T) {
	var gotFilename string
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/achievements/upload", func(w http.ResponseWriter, req *http.Request) {
		if _, hdr, err := req.FormFile("file"); err == nil {
			gotFilename = hdr.Filename
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}).Methods(http.MethodPost)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, _ := newClient(t, srv.URL)
	err := client.UploadAchievement(context.Background(), "diploma.pdf", strings.NewReader("pdf-bytes"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if gotFilename != "diploma.pdf" {
		t.Fatalf("file part filename = %q", gotFilename)
	}
}
