package logger

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
)

type CollectionConfig struct {
	MaxEntries int           // cap on distinct retained entries (e.g. 200)
	MaxAge     time.Duration // entries older than this are dropped on read
}

type AggregatedLogEntry struct {
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields"`
	Caller    string                 `json:"caller"`
	Count     int                    `json:"count"`
	FirstSeen time.Time              `json:"first_seen"`
	LastSeen  time.Time              `json:"last_seen"`
}

// LogCollector keeps a bounded, deduplicated window of recent warn/error
// logs so the diagnostics endpoint can serve them without touching the
// log file. Identical messages collapse into one entry with a count.
type LogCollector struct {
	config *CollectionConfig
	logMap map[string]*AggregatedLogEntry
	mutex  sync.RWMutex
}

func NewLogCollector(config *CollectionConfig) *LogCollector {
	if config.MaxEntries <= 0 {
		config.MaxEntries = 200
	}
	return &LogCollector{
		config: config,
		logMap: make(map[string]*AggregatedLogEntry),
	}
}

func (d *LogCollector) AddLog(level, message string, fields map[string]interface{}, caller string) {
	now := time.Now()
	key := d.generateKey(level, message, fields, caller)

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if entry, exists := d.logMap[key]; exists {
		entry.Count++
		entry.LastSeen = now
		return
	}

	if len(d.logMap) >= d.config.MaxEntries {
		d.evictOldest()
	}

	d.logMap[key] = &AggregatedLogEntry{
		Level:     level,
		Message:   message,
		Fields:    fields,
		Caller:    caller,
		Count:     1,
		FirstSeen: now,
		LastSeen:  now,
	}
}

// Snapshot returns retained entries, newest last seen first. Entries past
// MaxAge are dropped.
func (d *LogCollector) Snapshot() []AggregatedLogEntry {
	cutoff := time.Time{}
	if d.config.MaxAge > 0 {
		cutoff = time.Now().Add(-d.config.MaxAge)
	}

	d.mutex.Lock()
	entries := make([]AggregatedLogEntry, 0, len(d.logMap))
	for key, e := range d.logMap {
		if !cutoff.IsZero() && e.LastSeen.Before(cutoff) {
			delete(d.logMap, key)
			continue
		}
		entries = append(entries, *e)
	}
	d.mutex.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].LastSeen.After(entries[j].LastSeen)
	})
	return entries
}

func (d *LogCollector) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for key, e := range d.logMap {
		if oldestKey == "" || e.LastSeen.Before(oldest) {
			oldestKey = key
			oldest = e.LastSeen
		}
	}
	if oldestKey != "" {
		delete(d.logMap, oldestKey)
	}
}

func (d *LogCollector) generateKey(level, message string, fields map[string]interface{}, caller string) string {
	// Create a consistent hash from level + message + fields + caller
	data := struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields"`
		Caller  string                 `json:"caller"`
	}{
		Level:   level,
		Message: message,
		Fields:  fields,
		Caller:  caller,
	}

	jsonData, _ := json.Marshal(data)
	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%x", hash)
}

func (d *LogCollector) Close() {
	d.mutex.Lock()
	d.logMap = make(map[string]*AggregatedLogEntry)
	d.mutex.Unlock()
}
