package guard

import (
	"fmt"
	"sync"
)

// Guard sites are registered by catalogs generated with tools/guardscan
// and marked as they are evaluated, so guards that never ran can be
// reported after a test run or workload.

type siteRegistry struct {
	mutex sync.Mutex
	ids   []string
	index map[string]int
	seen  bitSet
}

var sites = siteRegistry{index: make(map[string]int)}

// RegisterSiteRaw records a guard site discovered at scan time. It is
// designed to be called from generated catalog files; regular users of the
// guard package should not call it.
func RegisterSiteRaw(guardName, packageName, funcName, filename string, line int) {
	key := fmt.Sprintf("%s|%d", filename, line)
	sites.mutex.Lock()
	defer sites.mutex.Unlock()
	if _, ok := sites.index[key]; ok {
		return
	}
	sites.index[key] = len(sites.ids)
	sites.ids = append(sites.ids, fmt.Sprintf("%s in %s.%s at %s:%d", guardName, packageName, funcName, filename, line))
}

func markEvaluated(key string) {
	sites.mutex.Lock()
	defer sites.mutex.Unlock()
	if idx, ok := sites.index[key]; ok {
		sites.seen.Set(idx)
	}
}

// DormantSites lists registered guard sites that have never been
// evaluated.
func DormantSites() []string {
	sites.mutex.Lock()
	defer sites.mutex.Unlock()
	dormant := []string{}
	for idx, id := range sites.ids {
		if !sites.seen.Get(idx) {
			dormant = append(dormant, id)
		}
	}
	return dormant
}

// bitSet is a rudimentary set-only bit vector. One can set bits; one
// cannot unset them. Callers hold the registry mutex.
type bitSet struct {
	slots []uint64
}

func (b *bitSet) slotAndBit(index int) (int, int) {
	return index / 64, index % 64
}

// Get returns the value at this index.
func (b *bitSet) Get(index int) bool {
	slot, bit := b.slotAndBit(index)
	if slot >= len(b.slots) {
		return false
	}
	return b.slots[slot]&(uint64(1)<<bit) != 0
}

// Set will only switch a bit on. Expansion is cheap; Go manages the
// capacity under the covers.
func (b *bitSet) Set(index int) {
	slot, bit := b.slotAndBit(index)
	if slot >= len(b.slots) {
		b.slots = append(b.slots, make([]uint64, 1+slot-len(b.slots))...)
	}
	b.slots[slot] |= uint64(1) << bit
}
