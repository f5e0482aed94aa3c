package model

import (
	"sort"

	"github.com/goccy/go-json"
)

// FavoriteSet is the set of favorited product IDs. The zero value is empty.
type FavoriteSet struct {
	ids map[string]struct{}
}

// Toggle flips membership of productID and reports whether it is now a favorite.
func (f *FavoriteSet) Toggle(productID string) bool {
	if _, ok := f.ids[productID]; ok {
		delete(f.ids, productID)
		return false
	}
	if f.ids == nil {
		f.ids = make(map[string]struct{})
	}
	f.ids[productID] = struct{}{}
	return true
}

func (f *FavoriteSet) Contains(productID string) bool {
	_, ok := f.ids[productID]
	return ok
}

func (f *FavoriteSet) Len() int {
	return len(f.ids)
}

// IDs returns the favorited product IDs sorted ascending.
func (f *FavoriteSet) IDs() []string {
	ids := make([]string, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (f *FavoriteSet) Clone() FavoriteSet {
	clone := FavoriteSet{}
	for id := range f.ids {
		clone.Toggle(id)
	}
	return clone
}

func (f FavoriteSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.IDs())
}

func (f *FavoriteSet) UnmarshalJSON(data []byte) error {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	f.ids = nil
	for _, id := range ids {
		if !f.Contains(id) {
			f.Toggle(id)
		}
	}
	return nil
}
