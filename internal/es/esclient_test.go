package es

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	elasticsearch "github.com/elastic/go-elasticsearch/v9"
	"github.com/stretchr/testify/require"

	"github.com/cemention/cemention/internal/models"
)

// newFakeES wires a client at a stub server. The product header is what the
// official client checks before it will talk to a node.
func newFakeES(t *testing.T, handler http.HandlerFunc) *elasticsearch.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return client
}

func TestNewClientUnconfigured(t *testing.T) {
	client, err := NewClient("", "", "")
	require.NoError(t, err)
	require.Nil(t, client)
}

func TestNilClientOps(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, IndexProduct(ctx, nil, &models.Product{ID: "p1"}))
	require.NoError(t, DeleteProduct(ctx, nil, "p1"))
}

func TestIndexProduct(t *testing.T) {
	var path string
	client := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"result": "created"})
	})

	err := IndexProduct(context.Background(), client, &models.Product{ID: "p1", Name: "OPC 53"})
	require.NoError(t, err)
	require.Equal(t, "/products/_doc/p1", path)
}

func TestDeleteProductMissingIsOK(t *testing.T) {
	client := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"result": "not_found"})
	})

	require.NoError(t, DeleteProduct(context.Background(), client, "ghost"))
}

func TestSearchProducts(t *testing.T) {
	var gotBody map[string]any
	client := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"hits": map[string]any{
				"total": map[string]any{"value": 2},
				"hits": []map[string]any{
					{"_source": map[string]any{"id": "p1", "name": "UltraStrong OPC 53"}},
					{"_source": map[string]any{"id": "p2", "name": "UltraStrong PPC"}},
				},
			},
		})
	})

	total, products, err := SearchProducts(context.Background(), client, "ultrastrong", 0, 20)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, products, 2)
	require.Equal(t, "p1", products[0].ID)
	require.Equal(t, "UltraStrong PPC", products[1].Name)

	// Query shape: fuzzy multi_match plus the active-only filter.
	query := gotBody["query"].(map[string]any)["bool"].(map[string]any)
	mm := query["must"].(map[string]any)["multi_match"].(map[string]any)
	require.Equal(t, "ultrastrong", mm["query"])
	term := query["filter"].(map[string]any)["term"].(map[string]any)
	require.Equal(t, true, term["is_active"])
}

func TestSearchProductsServerError(t *testing.T) {
	client := newFakeES(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"error": "boom"})
	})

	_, _, err := SearchProducts(context.Background(), client, "x", 0, 20)
	require.Error(t, err)
}
