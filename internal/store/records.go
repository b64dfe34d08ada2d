package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DirName is the fixed storage directory created under the project directory.
const DirName = ".ctxkeep"

const summaryFileName = "summary.json"

// RecordStore persists one SessionRecord file per preservation run and
// maintains the rolling summary index next to them.
type RecordStore struct {
	workDir string
	dir     string
}

func NewRecordStore(workDir string) *RecordStore {
	return &RecordStore{
		workDir: workDir,
		dir:     filepath.Join(workDir, DirName),
	}
}

func (s *RecordStore) Dir() string {
	return s.dir
}

// Persist writes a timestamped record file and refreshes the summary index.
// It never panics or returns an error: every failure is logged to stderr and
// reported as a false result, so the calling hook can still exit cleanly.
// A summary index failure does not undo a record write that already succeeded.
func (s *RecordStore) Persist(sessionID string, items []ContextItem) bool {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		diagf("create %s dir: %v", DirName, err)
		return false
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	record := SessionRecord{
		SessionID:   sessionID,
		PreservedAt: now,
		WorkingDir:  s.workDir,
		ItemCount:   len(items),
		Items:       make([]RecordItem, 0, len(items)),
	}
	for _, it := range items {
		record.Items = append(record.Items, RecordItem{
			Category:  it.Category,
			Content:   it.Content,
			Role:      it.Role,
			Timestamp: it.Timestamp,
		})
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		diagf("encode record: %v", err)
		return false
	}

	path := filepath.Join(s.dir, RecordFileName(sessionID, now))
	if err := os.WriteFile(path, data, 0644); err != nil {
		diagf("write record %s: %v", filepath.Base(path), err)
		return false
	}

	if err := s.updateSummary(sessionID, now, len(items)); err != nil {
		diagf("update summary index: %v", err)
	}
	return true
}

// RecordFileName builds the per-run file name from the session ID and a
// timestamp, with colons and dots replaced so the name is filesystem-safe.
func RecordFileName(sessionID, timestamp string) string {
	r := strings.NewReplacer(":", "-", ".", "-")
	return sessionID + "_" + r.Replace(timestamp) + ".json"
}

// LoadSummary reads the summary index. A missing, unreadable, or corrupt file
// yields an empty index together with the underlying error; callers that only
// report aggregates treat that as "no preserved context".
func (s *RecordStore) LoadSummary() (SummaryIndex, error) {
	var idx SummaryIndex
	data, err := os.ReadFile(filepath.Join(s.dir, summaryFileName))
	if err != nil {
		return SummaryIndex{}, err
	}
	if err := json.Unmarshal(data, &idx); err != nil {
		return SummaryIndex{}, fmt.Errorf("parse %s: %w", summaryFileName, err)
	}
	return idx, nil
}

func (s *RecordStore) updateSummary(sessionID, preservedAt string, itemCount int) error {
	// A broken or absent index is rebuilt from scratch rather than treated
	// as fatal; the per-run record is the authoritative artifact.
	idx, _ := s.LoadSummary()

	entry := SummaryEntry{
		SessionID:       sessionID,
		LastPreservedAt: preservedAt,
		ItemCount:       itemCount,
	}

	found := false
	for i := range idx.Sessions {
		if idx.Sessions[i].SessionID == sessionID {
			idx.Sessions[i] = entry
			found = true
			break
		}
	}
	if !found {
		idx.Sessions = append(idx.Sessions, entry)
	}
	if n := len(idx.Sessions); n > SummaryCapacity {
		idx.Sessions = idx.Sessions[n-SummaryCapacity:]
	}

	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	// Write-then-rename keeps a concurrent reader from seeing a torn file.
	// Two racing writers still end up last-writer-wins; that is accepted.
	tmp := filepath.Join(s.dir, summaryFileName+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, summaryFileName)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace summary: %w", err)
	}
	return nil
}

// RecordFiles returns the record file paths for a session, oldest first.
func (s *RecordStore) RecordFiles(sessionID string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, sessionID+"_*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// LatestRecord loads the most recent record file for a session.
func (s *RecordStore) LatestRecord(sessionID string) (*SessionRecord, error) {
	files, err := s.RecordFiles(sessionID)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no preserved records for session %q", sessionID)
	}
	return LoadRecord(files[len(files)-1])
}

func LoadRecord(path string) (*SessionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	var rec SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", filepath.Base(path), err)
	}
	return &rec, nil
}

func diagf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ctxkeep: "+format+"\n", args...)
}
