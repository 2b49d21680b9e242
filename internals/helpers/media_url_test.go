package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediaURL(t *testing.T) {
	base := "https://api.techclub.example"

	assert.Equal(t, "https://x/y", MediaURL(base, "https://x/y"))
	assert.Equal(t, "http://x/y", MediaURL(base, "http://x/y"))
	assert.Equal(t, base+"/storage/a.png", MediaURL(base, "/storage/a.png"))
	assert.Equal(t, "/placeholder.svg", MediaURL(base, "/placeholder.svg"))
	assert.Equal(t, base+"/a.png", MediaURL(base, "a.png"))
	assert.Equal(t, "", MediaURL(base, ""))
}

func TestMediaURLTrailingSlashBase(t *testing.T) {
	assert.Equal(t, "https://api.x/storage/a.png", MediaURL("https://api.x/", "/storage/a.png"))
	assert.Equal(t, "https://api.x/a.png", MediaURL("https://api.x/", "a.png"))
}
