package control

import (
	"sort"

	"github.com/scylladb/go-set/strset"
)

// Key identifies a physical key by the name the host reports for it.
type Key string

const (
	KeyA          Key = "a"
	KeyD          Key = "d"
	KeyW          Key = "w"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
)

// HeldKeys is the set of keys currently held down.
type HeldKeys struct {
	set *strset.Set
}

func NewHeldKeys() *HeldKeys {
	return &HeldKeys{set: strset.New()}
}

// Press inserts k. Pressing a held key is a no-op.
func (h *HeldKeys) Press(k Key) {
	if h == nil || k == "" {
		return
	}
	if h.set == nil {
		h.set = strset.New()
	}
	h.set.Add(string(k))
}

// Release removes k. Releasing a key that is not held is a no-op.
func (h *HeldKeys) Release(k Key) {
	if h == nil || h.set == nil {
		return
	}
	h.set.Remove(string(k))
}

func (h *HeldKeys) Has(k Key) bool {
	if h == nil || h.set == nil || k == "" {
		return false
	}
	return h.set.Has(string(k))
}

func (h *HeldKeys) Len() int {
	if h == nil || h.set == nil {
		return 0
	}
	return h.set.Size()
}

// Keys returns the held keys in sorted order.
func (h *HeldKeys) Keys() []Key {
	if h == nil || h.set == nil {
		return nil
	}
	names := h.set.List()
	sort.Strings(names)
	out := make([]Key, 0, len(names))
	for _, name := range names {
		out = append(out, Key(name))
	}
	return out
}
