package gfycat

import (
	"bytes"
	"encoding/json"
)

// decodeRecord unmarshals body into v after checking that every required
// top-level key is present and not null. Optional keys are left to the
// struct's pointer and slice fields.
func decodeRecord(body []byte, record string, required []string, v any) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return err
	}
	for _, name := range required {
		if raw, ok := fields[name]; !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return &MissingFieldError{Record: record, Field: name}
		}
	}
	return json.Unmarshal(body, v)
}

// decodeMediaItem unwraps the {"gfyItem": {...}} envelope.
func decodeMediaItem(body []byte) (*MediaItem, error) {
	var envelope struct {
		GfyItem json.RawMessage `json:"gfyItem"`
	}
	if err := decodeRecord(body, "gfycat response", []string{"gfyItem"}, &envelope); err != nil {
		return nil, err
	}

	var item MediaItem
	if err := decodeRecord(envelope.GfyItem, "gfyItem", mediaItemRequired, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
