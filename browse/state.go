// Package browse implements the stateful front-end side of list pages:
// filter state bound to a URL query string, facet derivation, and a
// controller that drives the loading/error/empty/success cycle of a
// paginated list.
package browse

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterState holds every filter a list page understands. Which subset
// is relevant depends on the page: the blog uses page/q/tag, the
// portfolio uses tag/industry/status, services use category. The query
// string is the single source of truth; FilterState values are derived
// from it on demand and never mutated in place.
type FilterState struct {
	Page     int
	Q        string
	Tag      string
	Industry string
	Status   string
	Category string
}

// ParseFilterState derives a FilterState from URL query parameters.
// A missing, unparseable or sub-1 page reads as page 1; textual
// filters default to empty.
func ParseFilterState(values url.Values) FilterState {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return FilterState{
		Page:     page,
		Q:        values.Get("q"),
		Tag:      values.Get("tag"),
		Industry: values.Get("industry"),
		Status:   values.Get("status"),
		Category: values.Get("category"),
	}
}

// Values encodes the state as canonical minimal query parameters:
// empty values are omitted, and page 1 (the default) is omitted too so
// URLs stay clean and shareable.
func (f FilterState) Values() url.Values {
	values := url.Values{}
	if f.Page > 1 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	set := func(key, val string) {
		if val != "" {
			values.Set(key, val)
		}
	}
	set("q", f.Q)
	set("tag", f.Tag)
	set("industry", f.Industry)
	set("status", f.Status)
	set("category", f.Category)
	return values
}

// Encode returns the canonical query string for the state.
func (f FilterState) Encode() string {
	return f.Values().Encode()
}

// WithPage returns a copy with only the page changed; pagination
// clicks must preserve every other filter.
func (f FilterState) WithPage(page int) FilterState {
	if page < 1 {
		page = 1
	}
	f.Page = page
	return f
}

// WithQuery returns a copy with the search query changed and the page
// reset to 1.
func (f FilterState) WithQuery(q string) FilterState {
	f.Q = strings.TrimSpace(q)
	f.Page = 1
	return f
}

// WithTagToggled returns a copy with single-select toggle semantics:
// toggling the currently active tag clears it, any other tag replaces
// the selection. The page resets to 1 either way.
func (f FilterState) WithTagToggled(tag string) FilterState {
	if tag == "" {
		return f
	}
	if strings.EqualFold(f.Tag, tag) {
		f.Tag = ""
	} else {
		f.Tag = tag
	}
	f.Page = 1
	return f
}

// WithIndustry returns a copy with the industry filter changed and the
// page reset to 1.
func (f FilterState) WithIndustry(industry string) FilterState {
	f.Industry = industry
	f.Page = 1
	return f
}

// WithStatus returns a copy with the status filter changed and the
// page reset to 1.
func (f FilterState) WithStatus(status string) FilterState {
	f.Status = status
	f.Page = 1
	return f
}

// WithCategory returns a copy with the category filter changed and the
// page reset to 1.
func (f FilterState) WithCategory(category string) FilterState {
	f.Category = category
	f.Page = 1
	return f
}

// Cleared returns the un-filtered baseline state.
func (f FilterState) Cleared() FilterState {
	return FilterState{Page: 1}
}

// History is the navigation surface a Binder writes through. In a
// browser this would be the location bar and history stack; the CLI
// backs it with its session state. Replace must overwrite the current
// entry rather than push a new one, so rapid filter changes do not
// pollute back/forward navigation.
type History interface {
	Current() url.Values
	Replace(url.Values)
}

// Binder keeps a FilterState and a History in sync, with the History's
// query parameters as the single source of truth.
type Binder struct {
	history History
}

// NewBinder returns a Binder writing through the given History.
func NewBinder(history History) *Binder {
	return &Binder{history: history}
}

// State derives the current FilterState from the History.
func (b *Binder) State() FilterState {
	return ParseFilterState(b.history.Current())
}

// Apply writes the given state back as the canonical query string,
// replacing the current history entry.
func (b *Binder) Apply(next FilterState) FilterState {
	b.history.Replace(next.Values())
	return next
}

// ToggleTag toggles a tag on the current state and applies the result.
func (b *Binder) ToggleTag(tag string) FilterState {
	return b.Apply(b.State().WithTagToggled(tag))
}

// SetQuery updates the search query and applies the result.
func (b *Binder) SetQuery(q string) FilterState {
	return b.Apply(b.State().WithQuery(q))
}

// SetIndustry updates the industry filter and applies the result.
func (b *Binder) SetIndustry(industry string) FilterState {
	return b.Apply(b.State().WithIndustry(industry))
}

// SetStatus updates the status filter and applies the result.
func (b *Binder) SetStatus(status string) FilterState {
	return b.Apply(b.State().WithStatus(status))
}

// SetCategory updates the category filter and applies the result.
func (b *Binder) SetCategory(category string) FilterState {
	return b.Apply(b.State().WithCategory(category))
}

// SetPage moves to another page, preserving all other filters.
func (b *Binder) SetPage(page int) FilterState {
	return b.Apply(b.State().WithPage(page))
}

// Clear resets every filter and applies the baseline state.
func (b *Binder) Clear() FilterState {
	return b.Apply(b.State().Cleared())
}
