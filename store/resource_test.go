package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bibek1604/epsalae-storefront/api"
	"github.com/Bibek1604/epsalae-storefront/models"
)

func newTestResource(t *testing.T, handler http.HandlerFunc) *Resource[models.Product] {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := api.NewClient(server.URL, nil)
	return NewResource[models.Product](client, "/products", func(p models.Product) string {
		return p.ID.String()
	})
}

func TestResourceFetchAllWrapped(t *testing.T) {
	res := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/", r.URL.Path)
		w.Write([]byte(`{"data":[{"id":"p1","name":"Keyboard"},{"id":"p2","name":"Mouse"}]}`))
	})

	require.NoError(t, res.FetchAll(context.Background(), nil))
	items := res.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Keyboard", items[0].Name)
	assert.NoError(t, res.Err())
	assert.False(t, res.Loading())
}

func TestResourceFetchAllBareArray(t *testing.T) {
	res := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"p1"}]`))
	})

	require.NoError(t, res.FetchAll(context.Background(), nil))
	assert.Len(t, res.Items(), 1)
}

func TestResourceFetchAllFailureEmptiesCache(t *testing.T) {
	fail := false
	res := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"boom"}`))
			return
		}
		w.Write([]byte(`{"data":[{"id":"p1"}]}`))
	})

	require.NoError(t, res.FetchAll(context.Background(), nil))
	require.Len(t, res.Items(), 1)

	fail = true
	err := res.FetchAll(context.Background(), nil)
	require.Error(t, err)
	assert.Empty(t, res.Items())
	assert.Error(t, res.Err())
}

func TestResourceCreateAppendsEcho(t *testing.T) {
	res := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Write([]byte(`{"data":[{"id":"p1","name":"Keyboard"}]}`))
			return
		}
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Mouse", body["name"])
		w.Write([]byte(`{"data":{"id":"p2","name":"Mouse","price":1500}}`))
	})

	require.NoError(t, res.FetchAll(context.Background(), nil))
	created, err := res.Create(context.Background(), Payload{
		Fields: map[string]interface{}{"name": "Mouse", "price": 1500},
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntityID("p2"), created.ID)

	items := res.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Mouse", items[1].Name)
}

func TestResourceUpdateReplacesMatching(t *testing.T) {
	res := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"data":[{"id":"p1","name":"Keyboard"},{"id":"p2","name":"Mouse"}]}`))
		case http.MethodPut:
			assert.Equal(t, "/products/p2", r.URL.Path)
			w.Write([]byte(`{"data":{"id":"p2","name":"Gaming Mouse"}}`))
		}
	})

	require.NoError(t, res.FetchAll(context.Background(), nil))
	updated, err := res.Update(context.Background(), "p2", Payload{
		Fields: map[string]interface{}{"name": "Gaming Mouse"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Gaming Mouse", updated.Name)

	items := res.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Keyboard", items[0].Name)
	assert.Equal(t, "Gaming Mouse", items[1].Name)
}

func TestResourceDeleteDropsEntry(t *testing.T) {
	res := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"data":[{"id":"p1"},{"id":"p2"}]}`))
		case http.MethodDelete:
			assert.Equal(t, "/products/p1", r.URL.Path)
			w.Write([]byte(`{"message":"deleted"}`))
		}
	})

	require.NoError(t, res.FetchAll(context.Background(), nil))
	require.NoError(t, res.Delete(context.Background(), "p1"))

	items := res.Items()
	require.Len(t, items, 1)
	assert.Equal(t, models.EntityID("p2"), items[0].ID)
}

func TestResourceDeleteFailureKeepsCache(t *testing.T) {
	res := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"data":[{"id":"p1"}]}`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"already gone"}`))
		}
	})

	require.NoError(t, res.FetchAll(context.Background(), nil))
	err := res.Delete(context.Background(), "p1")
	require.Error(t, err)
	assert.Len(t, res.Items(), 1)
}

func TestResourceFetchOneAndFind(t *testing.T) {
	res := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/":
			w.Write([]byte(`{"data":[{"id":"p1","name":"Keyboard"}]}`))
		case "/products/p1":
			w.Write([]byte(`{"data":{"id":"p1","name":"Keyboard","price":2500}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	item, err := res.FetchOne(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 2500.0, item.Price)

	require.NoError(t, res.FetchAll(context.Background(), nil))
	found, ok := res.Find("p1")
	assert.True(t, ok)
	assert.Equal(t, "Keyboard", found.Name)
	_, ok = res.Find("missing")
	assert.False(t, ok)
}

func TestResourceRejectsRawBase64Image(t *testing.T) {
	res := newTestResource(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the backend")
	})

	_, err := res.Create(context.Background(), Payload{
		Fields: map[string]interface{}{"name": "Bad"},
		Image:  "iVBORw0KGgoAAAANSUhEUg",
	})
	require.Error(t, err)
}
