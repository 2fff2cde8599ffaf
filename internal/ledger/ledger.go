// Package ledger implements the Diff & Ledger Writer: the canonical
// snapshot, the cumulative new/removed CSVs, and the URL-keyed set algebra
// that keeps them in sync with the current run.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/learnbot/jobatlas/internal/model"
)

// SnapshotFields is the canonical field order shared by the snapshot and
// both ledgers (§4.7).
var SnapshotFields = []string{
	"url", "title", "location", "company", "ats_id", "ats_type",
	"salary_currency", "salary_period", "salary_summary", "experience",
	"lat", "lon", "posted_at", "date",
}

// legacyColumns are stripped on load when found in an inherited ledger row.
var legacyColumns = map[string]bool{
	"employment_type": true, "is_remote": true, "salary_min": true, "salary_max": true,
}

// Row is one CSV line, keyed by column name, plus the parsed DateAdded for
// new-ledger rows (empty for snapshot/removed-ledger rows).
type Row struct {
	Fields    map[string]string
	DateAdded string
}

// URL returns the row's identity key.
func (r Row) URL() string { return r.Fields["url"] }

// JobToRow converts a canonical job record into a ledger row, preserving
// date as given (callers apply the date-preservation rule before calling).
func JobToRow(j model.Job, date string) Row {
	fields := map[string]string{
		"url":             j.URL,
		"title":           j.Title,
		"location":        j.Location,
		"company":         j.Company,
		"ats_id":          j.ATSID,
		"ats_type":        string(j.ATSType),
		"salary_currency": j.SalaryCurrency,
		"salary_period":   j.SalaryPeriod,
		"salary_summary":  j.SalarySummary,
		"experience":      j.Experience,
		"posted_at":       j.PostedAt,
		"date":            date,
	}
	if j.Lat != nil {
		fields["lat"] = strconv.FormatFloat(*j.Lat, 'f', -1, 64)
	}
	if j.Lon != nil {
		fields["lon"] = strconv.FormatFloat(*j.Lon, 'f', -1, 64)
	}
	return Row{Fields: fields}
}

// WriteCSV writes rows in RFC 4180 form with the given field order (plus
// date_added appended when withDateAdded is set), UTF-8, no BOM, \n
// newlines, atomically (write-then-rename).
func WriteCSV(path string, rows []Row, withDateAdded bool) error {
	fields := append([]string{}, SnapshotFields...)
	if withDateAdded {
		fields = append(fields, "date_added")
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("ledger: create %s: %w", tmp, err)
	}

	w := csv.NewWriter(f)
	w.UseCRLF = false
	if err := w.Write(fields); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("ledger: write header %s: %w", path, err)
	}
	for _, row := range rows {
		record := make([]string, len(fields))
		for i, col := range fields {
			if col == "date_added" {
				record[i] = row.DateAdded
				continue
			}
			record[i] = row.Fields[col]
		}
		if err := w.Write(record); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("ledger: write row %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("ledger: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("ledger: close %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("ledger: rename %s: %w", path, err)
	}
	return nil
}

// ReadCSV reads a ledger or snapshot CSV, stripping any deprecated legacy
// columns it encounters. A missing file yields (nil, nil): the diff
// algorithm treats that as empty prior state (§7's "Diff I/O failure"
// class).
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("ledger: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("ledger: read header %s: %w", path, err)
	}

	var rows []Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("ledger: read row %s: %w", path, err)
		}
		fields := map[string]string{}
		dateAdded := ""
		for i, col := range header {
			if i >= len(record) {
				continue
			}
			if legacyColumns[col] {
				continue
			}
			if col == "date_added" {
				dateAdded = record[i]
				continue
			}
			fields[col] = record[i]
		}
		rows = append(rows, Row{Fields: fields, DateAdded: dateAdded})
	}
	return rows, nil
}

var datedSnapshotRe = regexp.MustCompile(`^ai-(\d{2})-(\d{2})-(\d{4})\.csv$`)

// PreviousSnapshotPath finds the most-recent dated snapshot in dir,
// excluding today's, per §4.7's "max by file mtime excluding today's"
// rule: "most recent" is determined by the file's modification time, not
// the date embedded in its filename, so a backfilled or re-synced file
// is ranked by when it actually landed on disk.
func PreviousSnapshotPath(dir string, today time.Time) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	todayStr := today.Format("02-01-2006")

	var best string
	var bestMTime time.Time
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := datedSnapshotRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		dateStr := fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
		if dateStr == todayStr {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		mtime := info.ModTime()
		if best == "" || mtime.After(bestMTime) {
			best = e.Name()
			bestMTime = mtime
		}
	}
	if best == "" {
		return "", false
	}
	return filepath.Join(dir, best), true
}

// DatedSnapshotPath formats today's dated-snapshot filename per §4.7.
func DatedSnapshotPath(dir string, today time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("ai-%s.csv", today.Format("02-01-2006")))
}

// ApplyDatePreservation implements §4.7 rule 3 and invariant §8.1: a URL's
// `date` is reused from the canonical snapshot rows if present there, else
// from the previous rows; otherwise it is stamped to nowISO. The runner
// passes only the most recent prior dated snapshot as previous, so older
// dated snapshots are not consulted.
func ApplyDatePreservation(jobs []model.Job, canonical, previous []Row, nowISO string) []Row {
	existingDate := map[string]string{}
	for _, r := range canonical {
		existingDate[r.URL()] = r.Fields["date"]
	}
	for _, r := range previous {
		if _, ok := existingDate[r.URL()]; !ok {
			existingDate[r.URL()] = r.Fields["date"]
		}
	}

	rows := make([]Row, 0, len(jobs))
	for _, j := range jobs {
		date := nowISO
		if d, ok := existingDate[j.URL]; ok && d != "" {
			date = d
		}
		rows = append(rows, JobToRow(j, date))
	}
	return rows
}

// urlSet builds a URL -> Row lookup.
func urlSet(rows []Row) map[string]Row {
	m := make(map[string]Row, len(rows))
	for _, r := range rows {
		m[r.URL()] = r
	}
	return m
}

// UpdateNewLedger implements §4.7's new-ledger algorithm: drop rows whose
// URL left the current snapshot, then append the newly-added subset
// (current - previous) stamped with dateAddedStamp, preserving "previously
// active rows (in file order), followed by newly-added rows for today"
// (§5 ordering guarantee).
func UpdateNewLedger(existing []Row, current, previous []Row, dateAddedStamp string) []Row {
	currentURLs := urlSet(current)
	previousURLs := urlSet(previous)
	currentRows := urlSet(current)

	kept := make([]Row, 0, len(existing))
	keptURLs := map[string]bool{}
	for _, r := range existing {
		if _, ok := currentURLs[r.URL()]; !ok {
			continue
		}
		kept = append(kept, r)
		keptURLs[r.URL()] = true
	}

	var fresh []Row
	for _, r := range current {
		if _, wasPrevious := previousURLs[r.URL()]; wasPrevious {
			continue
		}
		if keptURLs[r.URL()] {
			continue
		}
		row := currentRows[r.URL()]
		row.DateAdded = dateAddedStamp
		fresh = append(fresh, row)
		keptURLs[r.URL()] = true
	}

	sort.SliceStable(fresh, func(i, j int) bool { return fresh[i].URL() < fresh[j].URL() })
	return append(kept, fresh...)
}

// UpdateRemovedLedger implements §4.7's removed-ledger algorithm: retain
// only existing rows still absent from the current snapshot (drops
// reappeared URLs), then union with the newly-removed set (previous -
// current).
func UpdateRemovedLedger(existing []Row, current, previous []Row) []Row {
	currentURLs := urlSet(current)
	previousRows := urlSet(previous)

	retained := make([]Row, 0, len(existing))
	retainedURLs := map[string]bool{}
	for _, r := range existing {
		if _, stillPresent := currentURLs[r.URL()]; stillPresent {
			continue
		}
		retained = append(retained, r)
		retainedURLs[r.URL()] = true
	}

	var newlyRemoved []Row
	for _, r := range previous {
		if _, stillPresent := currentURLs[r.URL()]; stillPresent {
			continue
		}
		if retainedURLs[r.URL()] {
			continue
		}
		newlyRemoved = append(newlyRemoved, previousRows[r.URL()])
		retainedURLs[r.URL()] = true
	}

	sort.SliceStable(newlyRemoved, func(i, j int) bool { return newlyRemoved[i].URL() < newlyRemoved[j].URL() })
	return append(retained, newlyRemoved...)
}

// NowISO formats t per §6's timestamp format: UTC, seconds precision, Z
// suffix.
func NowISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// DateAddedStamp formats t per §4.7's `date_added` format:
// DD-MM-YYYY-HH-MM.
func DateAddedStamp(t time.Time) string {
	return t.UTC().Format("02-01-2006-15-04")
}

// DirtyDataFilter implements §4.6's dirty-data filter: drop any row whose
// company is "nintendo" and whose title contains the token TEST
// (case-sensitive substring on the trimmed title).
func DirtyDataFilter(jobs []model.Job) []model.Job {
	filtered := make([]model.Job, 0, len(jobs))
	for _, j := range jobs {
		if strings.EqualFold(j.Company, "nintendo") && strings.Contains(strings.TrimSpace(j.Title), "TEST") {
			continue
		}
		filtered = append(filtered, j)
	}
	return filtered
}
