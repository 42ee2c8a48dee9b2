package views

import (
	"net/url"

	"github.com/oarkflow/zeit/pkg/models"
)

// Query carries the selectors and filters of a page request.
type Query map[string]string

func (q Query) Get(key, fallback string) string {
	if v, ok := q[key]; ok && v != "" {
		return v
	}
	return fallback
}

func (q Query) clone() Query {
	out := make(Query, len(q)+1)
	for k, v := range q {
		out[k] = v
	}
	return out
}

// With returns a copy of q with key set to value.
func (q Query) With(key, value string) Query {
	out := q.clone()
	out[key] = value
	return out
}

// Toggle returns the query that flips key between value and unset,
// preserving every other selector.
func (q Query) Toggle(key, value string) Query {
	out := q.clone()
	if q[key] == value {
		delete(out, key)
	} else {
		out[key] = value
	}
	return out
}

func (q Query) Encode() string {
	values := url.Values{}
	for k, v := range q {
		if v != "" {
			values.Set(k, v)
		}
	}
	return values.Encode()
}

// Href is the relative link to the same view with q applied.
func (q Query) Href() string {
	return "?" + q.Encode()
}

type Choice struct {
	Value    string
	Label    string
	Selected bool
	URL      string
}

// choose resolves the selector key against options, falling back to fallback
// when the query value is not one of them.
func choose(q Query, key string, options []models.Option, fallback string) (string, []Choice) {
	value := q.Get(key, fallback)
	selected := fallback
	for _, o := range options {
		if o.Value == value {
			selected = value
			break
		}
	}
	out := make([]Choice, 0, len(options))
	for _, o := range options {
		out = append(out, Choice{
			Value:    o.Value,
			Label:    o.Label,
			Selected: o.Value == selected,
			URL:      q.With(key, o.Value).Href(),
		})
	}
	return selected, out
}
