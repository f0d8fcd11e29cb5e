package guard

import (
	"sync"

	"github.com/guardkit/guardkit-go/internal"
)

type trackerEntry struct {
	passCount int
	failCount int
}

type guardTrackerMap map[string]*trackerEntry

// guardTracker keeps per-site evaluation counts so each site emits at most
// one passing and one failing record.
var (
	guardTracker      = make(guardTrackerMap)
	guardTrackerMutex sync.Mutex
)

func (tracker guardTrackerMap) getTrackerEntry(key string) *trackerEntry {
	guardTrackerMutex.Lock()
	defer guardTrackerMutex.Unlock()
	entry, ok := tracker[key]
	if !ok {
		entry = &trackerEntry{}
		tracker[key] = entry
	}
	return entry
}

func (e *trackerEntry) emit(gi *guardInfo) {
	if e == nil || gi == nil {
		return
	}

	guardTrackerMutex.Lock()
	first := false
	if gi.Condition {
		first = e.passCount == 0
		e.passCount++
	} else {
		first = e.failCount == 0
		e.failCount++
	}
	guardTrackerMutex.Unlock()

	if first {
		_ = internal.JSONData(wrappedGuardInfo{gi})
	}
}
