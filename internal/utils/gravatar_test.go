package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGravatarURL_KnownHash(t *testing.T) {
	// md5("myemailaddress@example.com") per the gravatar documentation
	got := GravatarURL("MyEmailAddress@example.com ")

	assert.Equal(t, "//www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?s=200&r=pg&d=mm", got)
}

func TestGravatarURL_Deterministic(t *testing.T) {
	// case and surrounding whitespace must not change the derived URL
	assert.Equal(t, GravatarURL("john@example.com"), GravatarURL("  John@Example.COM "))
}

func TestGravatarURL_DifferentEmails(t *testing.T) {
	assert.NotEqual(t, GravatarURL("john@example.com"), GravatarURL("jane@example.com"))
}
