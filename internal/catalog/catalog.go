// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog builds the in-memory course collections the ranking
// engine reads. Catalogs load once at startup, concurrently, and the
// store is read-only afterwards: a missing or broken data file degrades
// that platform to an empty collection with a warning, never a failure.
package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pdiddy/skillpath/pkg/types"
)

// courseraURLBase prefixes the slug-derived Coursera deep links.
const courseraURLBase = "https://www.coursera.org/learn/"

// Store holds the validated per-platform course collections. It is
// immutable once Load returns; concurrent reads during ranking never
// race with mutation because no writer exists after initialization.
type Store struct {
	platforms []types.Platform
	courses   map[types.Platform][]types.CourseRecord
	dropped   map[types.Platform]int
}

// Courses returns the records loaded for one platform, in file order.
func (s *Store) Courses(p types.Platform) []types.CourseRecord {
	return s.courses[p]
}

// All returns every record across platforms. Within a platform the order
// is file order; platforms appear in load-configuration order. This is
// the insertion order the ranking tie-break preserves.
func (s *Store) All() []types.CourseRecord {
	var all []types.CourseRecord
	for _, p := range s.platforms {
		all = append(all, s.courses[p]...)
	}
	return all
}

// Len returns the total number of admitted records.
func (s *Store) Len() int {
	n := 0
	for _, records := range s.courses {
		n += len(records)
	}
	return n
}

// Dropped returns how many rows a platform rejected during load.
func (s *Store) Dropped(p types.Platform) int {
	return s.dropped[p]
}

// Platforms returns the configured platforms in load order.
func (s *Store) Platforms() []types.Platform {
	return s.platforms
}

// source describes one catalog file to load.
type source struct {
	platform types.Platform
	path     string
	parse    func(header []string, row []string) (types.CourseRecord, bool)
}

// Load reads the configured catalog files concurrently and returns the
// frozen store. Load never fails because of a missing or malformed data
// file: those platforms come back empty and the problem is logged.
func Load(cfg types.CatalogConfig, log zerolog.Logger) *Store {
	sources := []source{
		{platform: types.PlatformUdemy, path: cfg.UdemyPath, parse: parseUdemyRow},
		{platform: types.PlatformCoursera, path: cfg.CourseraPath, parse: parseCourseraRow},
	}

	store := &Store{
		courses: make(map[types.Platform][]types.CourseRecord, len(sources)),
		dropped: make(map[types.Platform]int, len(sources)),
	}
	for _, src := range sources {
		store.platforms = append(store.platforms, src.platform)
	}

	type loadResult struct {
		platform types.Platform
		records  []types.CourseRecord
		dropped  int
	}

	ch := make(chan loadResult, len(sources))
	var wg sync.WaitGroup

	for _, src := range sources {
		wg.Add(1)
		go func(src source) {
			defer wg.Done()
			records, dropped := loadFile(src, log)
			ch <- loadResult{platform: src.platform, records: records, dropped: dropped}
		}(src)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	for r := range ch {
		store.courses[r.platform] = r.records
		store.dropped[r.platform] = r.dropped
	}

	return store
}

// loadFile reads one catalog CSV. Row-level problems skip the row;
// file-level problems degrade the whole platform to empty.
func loadFile(src source, log zerolog.Logger) ([]types.CourseRecord, int) {
	f, err := os.Open(src.path)
	if err != nil {
		log.Warn().Str("platform", string(src.platform)).Str("path", src.path).
			Err(err).Msg("catalog file unavailable, platform will be empty")
		return nil, 0
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		log.Warn().Str("platform", string(src.platform)).Str("path", src.path).
			Err(err).Msg("catalog header unreadable, platform will be empty")
		return nil, 0
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var (
		records []types.CourseRecord
		dropped int
	)
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A row that cannot be tokenized is skipped individually.
			// Reaching unrecoverable state mid-file keeps what parsed so far.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				dropped++
				log.Debug().Str("platform", string(src.platform)).Int("line", parseErr.Line).
					Msg("skipping malformed catalog row")
				continue
			}
			log.Warn().Str("platform", string(src.platform)).Err(err).
				Msg("catalog read aborted, keeping rows parsed so far")
			break
		}

		record, ok := src.parse(header, row)
		if !ok {
			dropped++
			continue
		}
		records = append(records, record)
	}

	log.Info().Str("platform", string(src.platform)).
		Int("courses", len(records)).Int("dropped", dropped).Msg("catalog loaded")
	return records, dropped
}

// rawFields maps every row column by its lowercased header name.
func rawFields(header, row []string) map[string]string {
	raw := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(row) {
			raw[name] = row[i]
		}
	}
	return raw
}

// parseUdemyRow admits a row when both course_title and url are present
// and non-empty.
func parseUdemyRow(header, row []string) (types.CourseRecord, bool) {
	raw := rawFields(header, row)
	title := strings.TrimSpace(raw["course_title"])
	url := strings.TrimSpace(raw["url"])
	if title == "" || url == "" {
		return types.CourseRecord{}, false
	}
	return types.CourseRecord{
		Platform: types.PlatformUdemy,
		Title:    title,
		URL:      url,
		Raw:      raw,
	}, true
}

// parseCourseraRow admits a row when course_title and course_id are
// present and non-empty. Coursera rows carry no direct URL; the deep
// link is derived from the title slug.
func parseCourseraRow(header, row []string) (types.CourseRecord, bool) {
	raw := rawFields(header, row)
	title := strings.TrimSpace(raw["course_title"])
	id := strings.TrimSpace(raw["course_id"])
	if title == "" || id == "" {
		return types.CourseRecord{}, false
	}
	return types.CourseRecord{
		Platform: types.PlatformCoursera,
		Title:    title,
		URL:      courseraURL(title),
		Raw:      raw,
	}, true
}

// courseraURL builds the slug-derived deep link for a Coursera title.
func courseraURL(title string) string {
	return courseraURLBase + Slugify(title)
}

// Slugify derives a URL-safe slug from a title: lowercase, strip
// everything outside [a-z0-9 _-], collapse runs of whitespace,
// underscore, and hyphen into a single hyphen, and trim leading and
// trailing hyphens. An empty input yields an empty slug, never an error.
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '\t' || r == '\n' || r == '_' || r == '-':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), "-")
}

// FromRecords builds a store directly from already-validated records.
// Tests and the index builder use it; production loading goes through Load.
func FromRecords(records map[types.Platform][]types.CourseRecord, order ...types.Platform) *Store {
	if len(order) == 0 {
		order = []types.Platform{types.PlatformUdemy, types.PlatformCoursera}
	}
	s := &Store{
		platforms: order,
		courses:   make(map[types.Platform][]types.CourseRecord, len(records)),
		dropped:   make(map[types.Platform]int),
	}
	for p, rs := range records {
		s.courses[p] = rs
	}
	return s
}
