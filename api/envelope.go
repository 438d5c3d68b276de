package api

import (
	"bytes"
	"encoding/json"
)

// Pagination mirrors the optional pagination block some collection endpoints
// include alongside their data.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// Envelope is the one canonical response shape the rest of the codebase sees.
// The backend is not consistent: some endpoints wrap payloads in {"data":...},
// some return bare arrays or objects. Everything is normalized here so no
// store ever has to guess at the envelope.
type Envelope struct {
	Data       json.RawMessage
	Pagination *Pagination
}

// Normalize unwraps a response body into an Envelope. A missing or null data
// payload normalizes to an empty list.
func Normalize(body []byte) (*Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return &Envelope{Data: json.RawMessage("[]")}, nil
	}

	// Bare array: the whole body is the data.
	if trimmed[0] == '[' {
		return &Envelope{Data: normalizeIDs(trimmed)}, nil
	}

	var wrapper struct {
		Data       json.RawMessage `json:"data"`
		Pagination *Pagination     `json:"pagination"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, err
	}

	data := wrapper.Data
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		// No data key: the object itself is the entity.
		data = trimmed
	}

	return &Envelope{Data: normalizeIDs(data), Pagination: wrapper.Pagination}, nil
}

// Decode unmarshals the normalized data payload into out
func (e *Envelope) Decode(out interface{}) error {
	if out == nil {
		return nil
	}
	return json.Unmarshal(e.Data, out)
}

// normalizeIDs rewrites Mongo-style "_id" keys to the canonical "id" on the
// top level of an entity object or each element of an entity array. An
// explicit "id" always wins over "_id".
func normalizeIDs(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return raw
	}

	switch trimmed[0] {
	case '{':
		if fixed, ok := aliasID(trimmed); ok {
			return fixed
		}
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return raw
		}
		changed := false
		for i, elem := range elems {
			if fixed, ok := aliasID(bytes.TrimSpace(elem)); ok {
				elems[i] = fixed
				changed = true
			}
		}
		if changed {
			if out, err := json.Marshal(elems); err == nil {
				return out
			}
		}
	}
	return raw
}

func aliasID(obj json.RawMessage) (json.RawMessage, bool) {
	if len(obj) == 0 || obj[0] != '{' {
		return obj, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(obj, &m); err != nil {
		return obj, false
	}
	alt, hasAlt := m["_id"]
	if !hasAlt {
		return obj, false
	}
	if _, hasID := m["id"]; !hasID {
		m["id"] = alt
	}
	delete(m, "_id")
	out, err := json.Marshal(m)
	if err != nil {
		return obj, false
	}
	return out, true
}
