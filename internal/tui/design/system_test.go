package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCategoryStyle(t *testing.T) {
	assert.Equal(t, TextInfoStyle.GetForeground(), GetCategoryStyle("relationship").GetForeground())
	assert.Equal(t, TextWarningStyle.GetForeground(), GetCategoryStyle("principle").GetForeground())
	assert.Equal(t, TextSuccessStyle.GetForeground(), GetCategoryStyle("pattern").GetForeground())
	assert.Equal(t, TextStyle.GetForeground(), GetCategoryStyle("other").GetForeground())
}

func TestGetLogLevelStyle(t *testing.T) {
	assert.True(t, GetLogLevelStyle("DEBUG").GetItalic())
	assert.Equal(t, ColorError, GetLogLevelStyle("ERROR").GetForeground())
	assert.Equal(t, ColorText, GetLogLevelStyle("INFO").GetForeground())
}
