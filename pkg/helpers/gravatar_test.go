package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL(t *testing.T) {
	// md5("alice@example.com")
	want := "https://gravatar.com/avatar/c160f8cc69a4f0bf2b0362752353d060?s=200&r=pg&d=mm"
	assert.Equal(t, want, GravatarURL("alice@example.com"))
}

func TestGravatarURL_NormalizesEmail(t *testing.T) {
	assert.Equal(t, GravatarURL("alice@example.com"), GravatarURL("  Alice@Example.COM "))
}
