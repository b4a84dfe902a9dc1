package models

import (
	"sync"
	"time"
)

// Journal holds the canonical in-memory mood collection, most-recent-first.
// Readers only ever see copies; every change flows back through the owning
// service so durable state and memory never diverge.
type Journal struct {
	Mutex   sync.RWMutex
	Entries []MoodEntry
}

func NewJournal() *Journal {
	return &Journal{Entries: make([]MoodEntry, 0)}
}

func (j *Journal) Len() int {
	j.Mutex.RLock()
	defer j.Mutex.RUnlock()
	return len(j.Entries)
}

// Snapshot returns a copy of the collection.
func (j *Journal) Snapshot() []MoodEntry {
	j.Mutex.RLock()
	defer j.Mutex.RUnlock()

	cp := make([]MoodEntry, len(j.Entries))
	copy(cp, j.Entries)
	return cp
}

// Replace swaps the whole collection.
func (j *Journal) Replace(entries []MoodEntry) {
	j.Mutex.Lock()
	defer j.Mutex.Unlock()
	j.Entries = entries
}

// Prepend inserts a fresh entry at the head.
func (j *Journal) Prepend(entry MoodEntry) {
	j.Mutex.Lock()
	defer j.Mutex.Unlock()
	j.Entries = append([]MoodEntry{entry}, j.Entries...)
}

// Get returns a copy of the entry with the given id.
func (j *Journal) Get(id string) (MoodEntry, bool) {
	j.Mutex.RLock()
	defer j.Mutex.RUnlock()

	for i := range j.Entries {
		if j.Entries[i].ID == id {
			return j.Entries[i], true
		}
	}
	return MoodEntry{}, false
}

// Apply merges a patch into the entry with the given id. Returns false when
// no such entry exists.
func (j *Journal) Apply(id string, patch MoodPatch) bool {
	j.Mutex.Lock()
	defer j.Mutex.Unlock()

	for i := range j.Entries {
		if j.Entries[i].ID != id {
			continue
		}
		mergePatch(&j.Entries[i], patch)
		return true
	}
	return false
}

// Remove deletes the entry with the given id. Returns false when absent.
func (j *Journal) Remove(id string) bool {
	j.Mutex.Lock()
	defer j.Mutex.Unlock()

	for i := range j.Entries {
		if j.Entries[i].ID == id {
			j.Entries = append(j.Entries[:i], j.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// FindOnDay returns a copy of the entry matching label on the given local
// calendar day, if one exists.
func (j *Journal) FindOnDay(label string, day time.Time) (MoodEntry, bool) {
	key := DayKey(day)

	j.Mutex.RLock()
	defer j.Mutex.RUnlock()

	for i := range j.Entries {
		if j.Entries[i].Label == label && DayKey(j.Entries[i].Time()) == key {
			return j.Entries[i], true
		}
	}
	return MoodEntry{}, false
}

// CountOnDay counts entries on the given local calendar day.
func (j *Journal) CountOnDay(day time.Time) int {
	key := DayKey(day)

	j.Mutex.RLock()
	defer j.Mutex.RUnlock()

	n := 0
	for i := range j.Entries {
		if DayKey(j.Entries[i].Time()) == key {
			n++
		}
	}
	return n
}

func mergePatch(entry *MoodEntry, patch MoodPatch) {
	if patch.Level != nil {
		entry.Level = *patch.Level
	}
	if patch.IconName != nil {
		entry.IconName = *patch.IconName
	}
	if patch.ChatHistory != nil {
		history := make([]ChatMessage, len(*patch.ChatHistory))
		copy(history, *patch.ChatHistory)
		entry.ChatHistory = history
	}
	if patch.ChatSummary != nil {
		entry.ChatSummary = *patch.ChatSummary
	}
}
