// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/skillpath/pkg/types"
)

func indexStore() *Store {
	return FromRecords(map[types.Platform][]types.CourseRecord{
		types.PlatformUdemy: {
			{Platform: types.PlatformUdemy, Title: "Python Fundamentals for Beginners", URL: "https://www.udemy.com/course/python-fundamentals"},
			{Platform: types.PlatformUdemy, Title: "SQL Bootcamp", URL: "https://www.udemy.com/course/sql-bootcamp"},
		},
		types.PlatformCoursera: {
			{Platform: types.PlatformCoursera, Title: "Intro to Data Visualization", URL: "https://www.coursera.org/learn/intro-to-data-visualization"},
		},
	})
}

func TestBuildAndSearchIndex(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "index", "catalog.db")

	n, err := BuildIndex(ctx, indexStore(), dbPath)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	results, err := SearchIndex(ctx, dbPath, "python", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Python Fundamentals for Beginners", results[0].Title)
	assert.Equal(t, types.PlatformUdemy, results[0].Platform)

	results, err = SearchIndex(ctx, dbPath, "visualization", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, types.PlatformCoursera, results[0].Platform)
}

func TestBuildIndexReplacesStaleIndex(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	_, err := BuildIndex(ctx, indexStore(), dbPath)
	require.NoError(t, err)

	smaller := FromRecords(map[types.Platform][]types.CourseRecord{
		types.PlatformUdemy: {
			{Platform: types.PlatformUdemy, Title: "Rust for Systems Programmers", URL: "https://www.udemy.com/course/rust"},
		},
	})
	n, err := BuildIndex(ctx, smaller, dbPath)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The old rows must be gone after the rebuild.
	results, err := SearchIndex(ctx, dbPath, "python", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchIndexLimit(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	store := FromRecords(map[types.Platform][]types.CourseRecord{
		types.PlatformUdemy: {
			{Platform: types.PlatformUdemy, Title: "SQL One", URL: "https://u/1"},
			{Platform: types.PlatformUdemy, Title: "SQL Two", URL: "https://u/2"},
			{Platform: types.PlatformUdemy, Title: "SQL Three", URL: "https://u/3"},
		},
	})
	_, err := BuildIndex(ctx, store, dbPath)
	require.NoError(t, err)

	results, err := SearchIndex(ctx, dbPath, "sql", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchIndexErrors(t *testing.T) {
	ctx := context.Background()

	_, err := SearchIndex(ctx, filepath.Join(t.TempDir(), "missing.db"), "python", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = SearchIndex(ctx, "irrelevant.db", "", 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query is empty")
}
