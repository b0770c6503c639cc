// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/skillpath/pkg/types"
)

func writeCatalog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(udemy, coursera string) types.CatalogConfig {
	return types.CatalogConfig{UdemyPath: udemy, CourseraPath: coursera}
}

func TestLoadBothPlatforms(t *testing.T) {
	dir := t.TempDir()
	udemy := writeCatalog(t, dir, "udemy.csv",
		"course_title,url,price\n"+
			"Python Fundamentals for Beginners,https://www.udemy.com/course/python-fundamentals,19.99\n"+
			"SQL Bootcamp,https://www.udemy.com/course/sql-bootcamp,9.99\n")
	coursera := writeCatalog(t, dir, "coursera.csv",
		"course_id,course_title,rating\n"+
			"c101,Intro to Data Visualization,4.7\n")

	store := Load(testConfig(udemy, coursera), zerolog.Nop())

	assert.Equal(t, 3, store.Len())
	assert.Len(t, store.Courses(types.PlatformUdemy), 2)
	assert.Len(t, store.Courses(types.PlatformCoursera), 1)

	u := store.Courses(types.PlatformUdemy)[0]
	assert.Equal(t, "Python Fundamentals for Beginners", u.Title)
	assert.Equal(t, "https://www.udemy.com/course/python-fundamentals", u.URL)
	assert.Equal(t, "19.99", u.Raw["price"])

	c := store.Courses(types.PlatformCoursera)[0]
	assert.Equal(t, "Intro to Data Visualization", c.Title)
	assert.Equal(t, "https://www.coursera.org/learn/intro-to-data-visualization", c.URL)
}

func TestLoadMissingFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	coursera := writeCatalog(t, dir, "coursera.csv",
		"course_id,course_title\nc1,Machine Learning Basics\n")

	store := Load(testConfig(filepath.Join(dir, "absent.csv"), coursera), zerolog.Nop())

	assert.Empty(t, store.Courses(types.PlatformUdemy))
	assert.Len(t, store.Courses(types.PlatformCoursera), 1)
	assert.Equal(t, 1, store.Len())
}

func TestLoadSkipsIncompleteRows(t *testing.T) {
	dir := t.TempDir()
	udemy := writeCatalog(t, dir, "udemy.csv",
		"course_title,url\n"+
			"Good Course,https://www.udemy.com/course/good\n"+
			",https://www.udemy.com/course/no-title\n"+
			"No URL Course,\n")

	store := Load(testConfig(udemy, filepath.Join(dir, "absent.csv")), zerolog.Nop())

	assert.Len(t, store.Courses(types.PlatformUdemy), 1)
	assert.Equal(t, 2, store.Dropped(types.PlatformUdemy))
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	// The bare quote makes the middle row unparsable; its neighbors survive.
	udemy := writeCatalog(t, dir, "udemy.csv",
		"course_title,url\n"+
			"First Course,https://www.udemy.com/course/first\n"+
			"broken \"row, with stray quote\n"+
			"Last Course,https://www.udemy.com/course/last\n")

	store := Load(testConfig(udemy, filepath.Join(dir, "absent.csv")), zerolog.Nop())

	records := store.Courses(types.PlatformUdemy)
	require.Len(t, records, 2)
	assert.Equal(t, "First Course", records[0].Title)
	assert.Equal(t, "Last Course", records[1].Title)
	assert.Equal(t, 1, store.Dropped(types.PlatformUdemy))
}

func TestLoadEmptyFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	udemy := writeCatalog(t, dir, "udemy.csv", "")

	store := Load(testConfig(udemy, filepath.Join(dir, "absent.csv")), zerolog.Nop())

	assert.Empty(t, store.Courses(types.PlatformUdemy))
	assert.Equal(t, 0, store.Len())
}

func TestLoadHeaderCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	udemy := writeCatalog(t, dir, "udemy.csv",
		"Course_Title, URL \nUppercase Headers,https://www.udemy.com/course/upper\n")

	store := Load(testConfig(udemy, filepath.Join(dir, "absent.csv")), zerolog.Nop())

	require.Len(t, store.Courses(types.PlatformUdemy), 1)
	assert.Equal(t, "Uppercase Headers", store.Courses(types.PlatformUdemy)[0].Title)
}

func TestAllKeepsInsertionOrder(t *testing.T) {
	dir := t.TempDir()
	udemy := writeCatalog(t, dir, "udemy.csv",
		"course_title,url\nU1,https://u/1\nU2,https://u/2\n")
	coursera := writeCatalog(t, dir, "coursera.csv",
		"course_id,course_title\nc1,C1\n")

	store := Load(testConfig(udemy, coursera), zerolog.Nop())

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, "U1", all[0].Title)
	assert.Equal(t, "U2", all[1].Title)
	assert.Equal(t, "C1", all[2].Title)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Machine Learning", "machine-learning"},
		{"punctuation stripped", " C++ Basics! ", "c-basics"},
		{"underscores and hyphens collapse", "deep__learning--basics", "deep-learning-basics"},
		{"digits kept", "Python 3 in Depth", "python-3-in-depth"},
		{"already a slug", "data-science", "data-science"},
		{"empty input", "", ""},
		{"symbols only", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{"Intro to Data Visualization", " C++ Basics! ", "deep__learning"}
	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once), "slug of %q should be stable", title)
	}
}
