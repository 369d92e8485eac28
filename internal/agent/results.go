package agent

import (
	"encoding/json"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Results holds the output of every executed step keyed by step ID.
// Entries keep the order in which steps completed and are never overwritten.
type Results struct {
	m *orderedmap.OrderedMap[string, string]
}

func NewResults() *Results {
	return &Results{m: orderedmap.New[string, string]()}
}

// Len returns the number of completed steps.
func (r *Results) Len() int {
	if r == nil {
		return 0
	}
	return r.m.Len()
}

func (r *Results) Get(id string) (string, bool) {
	if r == nil {
		return "", false
	}
	return r.m.Get(id)
}

// Has reports whether a result was already recorded for id.
func (r *Results) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// add records a result. It returns false without changing anything when id is
// already present.
func (r *Results) add(id, value string) bool {
	if r.Has(id) {
		return false
	}
	r.m.Set(id, value)
	return true
}

// Keys returns the step IDs in completion order.
func (r *Results) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, r.m.Len())
	for pair := r.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Substitute replaces every occurrence of each recorded step ID in s with that
// step's result, walking the entries in completion order. IDs that have no
// result yet are left untouched.
//
// Replacement is plain substring replacement: "#E1" also matches the first
// three characters of "#E10".
func (r *Results) Substitute(s string) string {
	if r == nil {
		return s
	}
	for pair := r.m.Oldest(); pair != nil; pair = pair.Next() {
		s = strings.ReplaceAll(s, pair.Key, pair.Value)
	}
	return s
}

// MarshalJSON encodes the results as a JSON object with keys in completion order.
func (r *Results) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.m)
}
