package device

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"caseregistry/pkg/requestcontext"
)

func TestParse(t *testing.T) {
	assert.Equal(t, requestcontext.DeviceInfo{}, Parse(""))

	desktop := Parse("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	assert.Equal(t, "Chrome", desktop.Browser)
	assert.False(t, desktop.Mobile)
	assert.False(t, desktop.Bot)

	bot := Parse("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
	assert.True(t, bot.Bot)
}
