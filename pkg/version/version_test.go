package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortenTruncatesLongRevisions(t *testing.T) {
	assert.Equal(t, "a3f8c2d1", shorten("a3f8c2d1e99b0f4c"))
	assert.Equal(t, "dev", shorten("dev"))
}

func TestFullPrefixesAppName(t *testing.T) {
	assert.Equal(t, AppName+"/"+GitCommit, Full())
	assert.NotEmpty(t, GitCommit)
}
