package services

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadDestination(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	service, err := NewUploadService(dir, "https://shop.example.com")
	require.NoError(t, err)
	assert.DirExists(t, dir)

	filename, path := service.Destination("photo.PNG")
	assert.Regexp(t, regexp.MustCompile(`^product_\d+\.PNG$`), filename)
	assert.Equal(t, filepath.Join(dir, filename), path)
	assert.Equal(t, "https://shop.example.com/images/"+filename, service.PublicURL(filename))

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		name, _ := service.Destination("a.jpg")
		assert.False(t, seen[name], "duplicate filename %s", name)
		seen[name] = true
	}
}
