package collinalitics

import (
	"context"
	"net/http"
)

// ContactsService handles communication with the contact form endpoint
// of the site API. This is the only write operation the client
// performs; it is fired once per user submission and never retried
// automatically.
type ContactsService service

const contactPath = "contact/"

// Submit sends a contact-form inquiry and returns the stored record.
// The honeypot field must be left empty; the server rejects filled
// values as spam.
func (s *ContactsService) Submit(ctx context.Context, inquiry *Inquiry) (*Inquiry, *Response, error) {
	req, err := s.client.NewRequest(http.MethodPost, contactPath, inquiry)
	if err != nil {
		return nil, nil, err
	}

	var created *Inquiry
	resp, err := s.client.Do(ctx, req, &created)
	if err != nil {
		return nil, resp, err
	}

	return created, resp, nil
}
