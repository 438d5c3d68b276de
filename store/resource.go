package store

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/Bibek1604/epsalae-storefront/api"
	"github.com/Bibek1604/epsalae-storefront/utils"
)

// Payload carries an admin form submission toward the backend. Fields holds
// the scalar attributes; Image holds whatever the form captured for the image
// slot: an http(s) URL passed through as "imageUrl", or a base64 data URI
// converted into a binary "image" part before it reaches the wire.
type Payload struct {
	Fields map[string]interface{}
	Image  string
}

// Resource is the cache shared by every server-backed entity store: the
// last-fetched list plus a loading flag and the last error. Handlers on
// separate connections share one instance, so access is mutex-guarded, but
// overlapping fetches are not otherwise synchronized; the last response to
// resolve wins.
type Resource[T any] struct {
	client *api.Client
	path   string
	idOf   func(T) string

	mu         sync.Mutex
	items      []T
	loading    bool
	err        error
	pagination *api.Pagination
}

// NewResource creates a store for the collection mounted at path
func NewResource[T any](client *api.Client, path string, idOf func(T) string) *Resource[T] {
	return &Resource[T]{client: client, path: path, idOf: idOf}
}

// FetchAll replaces the cached list with the server's collection. On failure
// the error is recorded and the list emptied; the loading flag toggles on
// entry and exit regardless of outcome.
func (r *Resource[T]) FetchAll(ctx context.Context, query url.Values) error {
	r.setLoading(true)
	defer r.setLoading(false)

	env, err := r.client.GetEnvelope(ctx, r.path+"/", query)
	if err != nil {
		r.setItems(nil, err, nil)
		return err
	}

	var items []T
	if decodeErr := env.Decode(&items); decodeErr != nil {
		err = utils.UpstreamError("Unexpected response from server", decodeErr)
		r.setItems(nil, err, nil)
		return err
	}

	r.setItems(items, nil, env.Pagination)
	return nil
}

// Create posts the payload and appends the server-echoed entity to the cache.
// The error is returned to the caller: the invoking form shows it and stays
// open for correction.
func (r *Resource[T]) Create(ctx context.Context, payload Payload) (T, error) {
	var created T
	r.setLoading(true)
	defer r.setLoading(false)

	if err := r.send(ctx, "POST", r.path+"/", payload, &created); err != nil {
		return created, err
	}

	r.mu.Lock()
	r.items = append(r.items, created)
	r.err = nil
	r.mu.Unlock()
	return created, nil
}

// Update puts the payload and replaces the matching cached entry
func (r *Resource[T]) Update(ctx context.Context, id string, payload Payload) (T, error) {
	var updated T
	r.setLoading(true)
	defer r.setLoading(false)

	if err := r.send(ctx, "PUT", r.path+"/"+url.PathEscape(id), payload, &updated); err != nil {
		return updated, err
	}

	r.mu.Lock()
	for i, item := range r.items {
		if r.idOf(item) == id {
			r.items[i] = updated
			break
		}
	}
	r.err = nil
	r.mu.Unlock()
	return updated, nil
}

// Delete removes the entity server-side and drops it from the cache
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	r.setLoading(true)
	defer r.setLoading(false)

	if err := r.client.Delete(ctx, r.path+"/"+url.PathEscape(id)); err != nil {
		return err
	}

	r.mu.Lock()
	kept := r.items[:0]
	for _, item := range r.items {
		if r.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	r.err = nil
	r.mu.Unlock()
	return nil
}

// FetchOne loads a single entity by id, bypassing the cache. Detail views
// refetch on every mount; a 404 surfaces as a not-found state.
func (r *Resource[T]) FetchOne(ctx context.Context, id string) (T, error) {
	var item T
	err := r.client.Get(ctx, r.path+"/"+url.PathEscape(id), nil, &item)
	return item, err
}

// Find returns the cached entity with the given id
func (r *Resource[T]) Find(id string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var zero T
	for _, item := range r.items {
		if r.idOf(item) == id {
			return item, true
		}
	}
	return zero, false
}

// Items returns a copy of the cached list
func (r *Resource[T]) Items() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Loading reports whether a request is in flight
func (r *Resource[T]) Loading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}

// Err returns the last recorded error, nil after a successful operation
func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Pagination returns the pagination block of the last fetch, if any
func (r *Resource[T]) Pagination() *api.Pagination {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pagination
}

// send routes a payload either as JSON or, when an image is present, as a
// multipart form per the backend's upload contract.
func (r *Resource[T]) send(ctx context.Context, method, path string, payload Payload, out interface{}) error {
	if payload.Image == "" {
		if method == "POST" {
			return r.client.Post(ctx, path, payload.Fields, out)
		}
		return r.client.Put(ctx, path, payload.Fields, out)
	}

	fields := make(map[string]string, len(payload.Fields)+1)
	for key, value := range payload.Fields {
		fields[key] = fmt.Sprint(value)
	}

	var image *utils.ImageUpload
	switch {
	case utils.IsDataURI(payload.Image):
		decoded, err := utils.DecodeDataURI(payload.Image)
		if err != nil {
			return utils.BadRequestError(utils.ErrInvalidImage, err)
		}
		image = decoded
	case utils.IsImageURL(payload.Image):
		fields["imageUrl"] = payload.Image
	default:
		return utils.BadRequestError(utils.ErrInvalidImage, nil)
	}

	return r.client.SendMultipart(ctx, method, path, fields, image, out)
}

func (r *Resource[T]) setLoading(v bool) {
	r.mu.Lock()
	r.loading = v
	r.mu.Unlock()
}

func (r *Resource[T]) setItems(items []T, err error, p *api.Pagination) {
	r.mu.Lock()
	r.items = items
	r.err = err
	r.pagination = p
	r.mu.Unlock()
}
