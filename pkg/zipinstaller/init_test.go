package zipinstaller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccentColor(t *testing.T) {
	assert.Equal(t, uint32(0x112233), accentColor("#112233"))
	assert.Equal(t, uint32(0x0078D4), accentColor(""))
	assert.Equal(t, uint32(0x0078D4), accentColor("teal"))
}
