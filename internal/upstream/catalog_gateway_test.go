package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/boipoka/storefront/internal/core/domain"
	"github.com/boipoka/storefront/internal/core/ports"
)

func TestCatalogGateway_ListBooks_QueryMapping(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"count":1,"results":[{"id":1,"slug":"gitanjali","title":"Gitanjali","price":"250.00","currency":"BDT"}]}`))
	}))
	defer srv.Close()

	gw := NewCatalogGateway(testClient(srv))
	books, err := gw.ListBooks(context.Background(), ports.BookFilter{
		Search:   "tagore",
		Category: "poetry",
		Tag:      "classic",
		Ordering: "-created_at",
		Page:     3,
	})
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}

	if gotPath != "/books/" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotQuery.Get("search") != "tagore" ||
		gotQuery.Get("categories__slug") != "poetry" ||
		gotQuery.Get("tags__slug") != "classic" ||
		gotQuery.Get("ordering") != "-created_at" ||
		gotQuery.Get("page") != "3" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}

	if len(books) != 1 || books[0].Slug != "gitanjali" {
		t.Fatalf("unexpected books: %+v", books)
	}
}

func TestCatalogGateway_ListBooks_EmptyFilterSendsNoQuery(t *testing.T) {
	var gotRawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	gw := NewCatalogGateway(testClient(srv))
	books, err := gw.ListBooks(context.Background(), ports.BookFilter{})
	if err != nil {
		t.Fatalf("ListBooks: %v", err)
	}
	if gotRawQuery != "" {
		t.Fatalf("expected no query string, got %q", gotRawQuery)
	}
	if books == nil || len(books) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", books)
	}
}

func TestCatalogGateway_GetBook_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not found."}`))
	}))
	defer srv.Close()

	gw := NewCatalogGateway(testClient(srv))
	if _, err := gw.GetBook(context.Background(), "missing"); err != domain.ErrBookNotFound {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}
