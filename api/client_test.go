package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bibek1604/epsalae-storefront/models"
	"github.com/Bibek1604/epsalae-storefront/utils"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() string { return s.token }

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens{token: "tok123"})
	var out []models.Product
	require.NoError(t, client.Get(context.Background(), "/products", nil, &out))
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestClientOmitsEmptyToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens{})
	var out []models.Product
	require.NoError(t, client.Get(context.Background(), "/products", nil, &out))
	assert.Empty(t, gotAuth)
}

func TestClientUnauthorizedFiresHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticTokens{token: "stale"})
	hookFired := false
	client.OnUnauthorized(func() { hookFired = true })

	var out []models.Product
	err := client.Get(context.Background(), "/orders", nil, &out)
	require.Error(t, err)
	assert.True(t, utils.IsUnauthorizedError(err))
	assert.True(t, hookFired)
}

func TestClientNotFoundCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Product not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	var out models.Product
	err := client.Get(context.Background(), "/products/missing", nil, &out)
	require.Error(t, err)
	assert.True(t, utils.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "Product not found")
}

func TestClientServerErrorMapsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"price must be positive"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.Post(context.Background(), "/products", map[string]interface{}{"price": -1}, nil)
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Contains(t, appErr.Message, "price must be positive")
}

func TestClientGetForwardsQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	query := url.Values{}
	query.Set("page", "2")
	query.Set("search", "mouse")
	var out []models.Product
	require.NoError(t, client.Get(context.Background(), "/products", query, &out))
	assert.Equal(t, "2", gotQuery.Get("page"))
	assert.Equal(t, "mouse", gotQuery.Get("search"))
}

func TestClientSendMultipart(t *testing.T) {
	var gotName, gotFilename string
	var gotImage []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotName = r.FormValue("name")
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Errorf("image part missing: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		buf := make([]byte, header.Size)
		file.Read(buf)
		gotImage = buf
		w.Write([]byte(`{"data":{"id":"p1","name":"Keyboard"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	image := &utils.ImageUpload{
		Filename:    "keyboard.png",
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	}
	var out models.Product
	err := client.SendMultipart(context.Background(), http.MethodPost, "/products",
		map[string]string{"name": "Keyboard"}, image, &out)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", gotName)
	assert.Equal(t, "keyboard.png", gotFilename)
	assert.Equal(t, image.Data, gotImage)
	assert.Equal(t, models.EntityID("p1"), out.ID)
}

func TestClientUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, nil)
	var out []models.Product
	err := client.Get(context.Background(), "/products", nil, &out)
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, appErr.Code)
}
