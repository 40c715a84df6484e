// pkg/storeclient/favorites.go
package storeclient

import "sync"

const favoritesKey = "favorites"

// Favorites is the saved-products container. Every mutation writes
// through to the mirror; an empty list always means the mirror key is
// deleted, so "no favorites" looks the same no matter which path got
// there.
type Favorites struct {
	mu     sync.Mutex
	items  []Product
	mirror *Mirror
}

// NewFavorites restores the persisted list. A missing or corrupt mirror
// value starts empty.
func NewFavorites(mirror *Mirror) *Favorites {
	f := &Favorites{mirror: mirror}
	var items []Product
	if mirror != nil && mirror.Load(favoritesKey, &items) {
		f.items = items
	}
	return f
}

func (f *Favorites) persistLocked() {
	if f.mirror == nil {
		return
	}
	if len(f.items) == 0 {
		f.mirror.Delete(favoritesKey)
		return
	}
	f.mirror.Store(favoritesKey, f.items)
}

// Add saves a product. Adding one already saved is a no-op.
func (f *Favorites) Add(p Product) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == p.ID {
			return
		}
	}
	f.items = append(f.items, p)
	f.persistLocked()
}

func (f *Favorites) Remove(productID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == productID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.persistLocked()
			return
		}
	}
}

// Toggle adds an unsaved product and removes a saved one. It reports
// whether the product is saved afterwards.
func (f *Favorites) Toggle(p Product) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == p.ID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.persistLocked()
			return false
		}
	}
	f.items = append(f.items, p)
	f.persistLocked()
	return true
}

func (f *Favorites) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = nil
	f.persistLocked()
}

func (f *Favorites) Contains(productID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

func (f *Favorites) Items() []Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	items := make([]Product, len(f.items))
	copy(items, f.items)
	return items
}

func (f *Favorites) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}
