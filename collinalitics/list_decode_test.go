package collinalitics

import (
	"encoding/json"
	"testing"
)

func TestDecodeListPayload(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantKind  payloadKind
		wantItems int
		wantCount *int
	}{
		{
			name:      "flat array",
			raw:       `[{"id":1,"slug":"a"},{"id":2,"slug":"b"}]`,
			wantKind:  payloadFlat,
			wantItems: 2,
		},
		{
			name:      "empty flat array",
			raw:       `[]`,
			wantKind:  payloadFlat,
			wantItems: 0,
		},
		{
			name:      "paginated envelope",
			raw:       `{"count":42,"next":null,"previous":null,"results":[{"id":1,"slug":"a"}]}`,
			wantKind:  payloadEnvelope,
			wantItems: 1,
			wantCount: Int(42),
		},
		{
			name:      "envelope without count",
			raw:       `{"results":[{"id":1,"slug":"a"},{"id":2,"slug":"b"}]}`,
			wantKind:  payloadEnvelope,
			wantItems: 2,
		},
		{
			name:      "envelope with non-numeric count",
			raw:       `{"count":"2","results":[{"id":1,"slug":"a"},{"id":2,"slug":"b"}]}`,
			wantKind:  payloadEnvelope,
			wantItems: 2,
		},
		{
			name:      "envelope with non-numeric page_size",
			raw:       `{"count":2,"page_size":"ten","results":[{"id":1,"slug":"a"},{"id":2,"slug":"b"}]}`,
			wantKind:  payloadEnvelope,
			wantItems: 2,
			wantCount: Int(2),
		},
		{
			name:      "object without results",
			raw:       `{"detail":"something else"}`,
			wantKind:  payloadUnrecognized,
			wantItems: 0,
		},
		{
			name:      "results is not an array",
			raw:       `{"results":"oops"}`,
			wantKind:  payloadUnrecognized,
			wantItems: 0,
		},
		{
			name:      "scalar payload",
			raw:       `42`,
			wantKind:  payloadUnrecognized,
			wantItems: 0,
		},
		{
			name:      "null payload",
			raw:       `null`,
			wantKind:  payloadFlat,
			wantItems: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := decodeListPayload(json.RawMessage(tt.raw))

			if payload.kind != tt.wantKind {
				t.Errorf("decodeListPayload() kind = %v, want %v", payload.kind, tt.wantKind)
			}

			items, err := decodeItems[Project](payload)
			if err != nil {
				t.Fatalf("decodeItems() unexpected error: %v", err)
			}
			if items == nil {
				t.Fatal("decodeItems() returned nil slice, want non-nil")
			}
			if len(items) != tt.wantItems {
				t.Errorf("decodeItems() returned %d items, want %d", len(items), tt.wantItems)
			}

			if tt.wantCount != nil {
				if payload.count == nil || *payload.count != *tt.wantCount {
					t.Errorf("decodeListPayload() count = %v, want %d", payload.count, *tt.wantCount)
				}
			}
		})
	}
}

func TestDecodeListPayload_MismatchedMetadata(t *testing.T) {
	raw := json.RawMessage(`{"count":"2","next":7,"previous":false,"page_size":"ten","results":[{"slug":"a"}]}`)

	payload := decodeListPayload(raw)

	if payload.kind != payloadEnvelope {
		t.Fatalf("kind = %v, want payloadEnvelope (results must survive bad metadata)", payload.kind)
	}
	if payload.count != nil {
		t.Errorf("count = %v, want nil for a non-numeric value", *payload.count)
	}
	if payload.pageSize != nil {
		t.Errorf("pageSize = %v, want nil for a non-numeric value", *payload.pageSize)
	}
	if payload.next != nil {
		t.Errorf("next = %v, want nil for a non-string value", *payload.next)
	}
	if payload.previous != nil {
		t.Errorf("previous = %v, want nil for a non-string value", *payload.previous)
	}
}

func TestDecodeListPayload_PreservesOrder(t *testing.T) {
	raw := json.RawMessage(`{"results":[{"slug":"c"},{"slug":"a"},{"slug":"b"}]}`)

	items, err := decodeItems[Post](decodeListPayload(raw))
	if err != nil {
		t.Fatalf("decodeItems() unexpected error: %v", err)
	}

	want := []string{"c", "a", "b"}
	for i, slug := range want {
		if items[i].Slug != slug {
			t.Errorf("items[%d].Slug = %q, want %q (server order must be preserved)", i, items[i].Slug, slug)
		}
	}
}

func TestDecodeItems_MalformedItems(t *testing.T) {
	raw := json.RawMessage(`{"results":[{"id":"not-an-int"}]}`)

	_, err := decodeItems[Project](decodeListPayload(raw))
	if err == nil {
		t.Error("decodeItems() expected error for items that do not match the type, got nil")
	}
}
