package collinalitics

import (
	"encoding/json"
)

// payloadKind classifies the shape of a list response body.
type payloadKind int

const (
	payloadFlat         payloadKind = iota // plain JSON array
	payloadEnvelope                        // {"count":N,"next":...,"previous":...,"results":[...]}
	payloadUnrecognized                    // anything else; degrades to an empty list
)

// listPayload is the resolved form of a raw list response. The shape is
// classified exactly once here; callers never probe the raw JSON again.
type listPayload struct {
	kind     payloadKind
	items    json.RawMessage
	count    *int
	next     *string
	previous *string
	pageSize *int
}

// decodeListPayload classifies a raw list response body. A flat array
// is used as-is; an object with a "results" array is treated as a
// pagination envelope; any other shape is unrecognized and yields an
// empty list rather than an error, since partial or missing pagination
// metadata must not break the caller.
//
// Metadata fields are decoded one by one so a type-mismatched value
// (say, a count serialized as a string) reads as absent instead of
// discarding the results array with it.
func decodeListPayload(raw json.RawMessage) listPayload {
	var flat []json.RawMessage
	if err := json.Unmarshal(raw, &flat); err == nil {
		return listPayload{kind: payloadFlat, items: raw}
	}

	var envelope struct {
		Count    json.RawMessage `json:"count"`
		Next     json.RawMessage `json:"next"`
		Previous json.RawMessage `json:"previous"`
		PageSize json.RawMessage `json:"page_size"`
		Results  json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return listPayload{kind: payloadUnrecognized}
	}

	var results []json.RawMessage
	if err := json.Unmarshal(envelope.Results, &results); err != nil {
		return listPayload{kind: payloadUnrecognized}
	}

	return listPayload{
		kind:     payloadEnvelope,
		items:    envelope.Results,
		count:    intField(envelope.Count),
		next:     stringField(envelope.Next),
		previous: stringField(envelope.Previous),
		pageSize: intField(envelope.PageSize),
	}
}

// intField decodes a metadata field as an int, treating a missing,
// null or type-mismatched value as absent.
func intField(raw json.RawMessage) *int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// stringField decodes a metadata field as a string, treating a
// missing, null or type-mismatched value as absent.
func stringField(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return &v
}

// decodeItems unmarshals the payload's item list into typed values. An
// unrecognized payload decodes to an empty, non-nil slice.
func decodeItems[T any](p listPayload) ([]*T, error) {
	if p.kind == payloadUnrecognized || len(p.items) == 0 {
		return []*T{}, nil
	}
	var items []*T
	if err := json.Unmarshal(p.items, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}
