package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscovery(t *testing.T) {
	basePath := "/test/base"
	discovery := NewDiscovery(basePath)

	assert.NotNil(t, discovery)
	assert.Equal(t, basePath, discovery.BasePath())
}

func TestFindFiles(t *testing.T) {
	tests := []struct {
		name          string
		files         []string
		ext           string
		expectedCount int
		description   string
	}{
		{
			name:          "only CSV files",
			files:         []string{"data1.csv", "data2.CSV", "report.csv"},
			ext:           ".csv",
			expectedCount: 3,
			description:   "Should find all CSV files regardless of case",
		},
		{
			name:          "mixed file types",
			files:         []string{"data.csv", "report.xlsx", "doc.pdf"},
			ext:           ".csv",
			expectedCount: 1,
			description:   "Should find only CSV files",
		},
		{
			name:          "workbooks",
			files:         []string{"data.csv", "a.xlsx", "b.xlsx"},
			ext:           ".xlsx",
			expectedCount: 2,
			description:   "Should honor the requested extension",
		},
		{
			name:          "empty directory",
			files:         []string{},
			ext:           ".csv",
			expectedCount: 0,
			description:   "Should handle empty directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			discovery := NewDiscovery(tmpDir)

			testDir := "flexstand"
			fullTestDir := filepath.Join(tmpDir, testDir)
			require.NoError(t, os.MkdirAll(fullTestDir, 0755))

			for _, filename := range tt.files {
				filePath := filepath.Join(fullTestDir, filename)
				require.NoError(t, os.WriteFile(filePath, []byte("a,b\n1,2\n"), 0644))
			}

			files, err := discovery.FindFiles(testDir, tt.ext)
			assert.NoError(t, err, tt.description)
			assert.Equal(t, tt.expectedCount, len(files), tt.description)

			for _, file := range files {
				assert.NotEmpty(t, file.Name)
				assert.Equal(t, filepath.Join(fullTestDir, file.Name), file.Path)
				assert.False(t, file.IsDir)
				assert.Greater(t, file.Size, int64(0))
			}
		})
	}
}

func TestFindFiles_NotRecursive(t *testing.T) {
	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "hs", "nested")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "deep.csv"), []byte("a\n1\n"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "hs", "dir.csv"), 0755))

	files, err := NewDiscovery(tmpDir).FindFiles("hs", ".csv")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	discovery := NewDiscovery(tmpDir)

	for _, dir := range []string{"hs", "emptyone", "flexstand"} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, dir, "inner"), 0755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "othercontent.csv"), []byte("x"), 0644))

	dirs, err := discovery.ListDirectories("")
	require.NoError(t, err)
	require.Len(t, dirs, 3)

	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		assert.True(t, d.IsDir)
		assert.Equal(t, filepath.Join(tmpDir, d.Name), d.Path)
		names = append(names, d.Name)
	}
	assert.ElementsMatch(t, []string{"emptyone", "flexstand", "hs"}, names)
}

func TestListDirectories_AbsolutePath(t *testing.T) {
	other := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(other, "squat"), 0755))

	dirs, err := NewDiscovery("/unused/base").ListDirectories(other)
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	assert.Equal(t, "squat", dirs[0].Name)
}

func TestListDirectories_Missing(t *testing.T) {
	_, err := NewDiscovery(t.TempDir()).ListDirectories("missing")
	assert.Error(t, err)
}
