package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type classifyTestcase struct {
	name         string
	typeAttr     string
	hasType      bool
	languageAttr string
	hasLanguage  bool
	want         bool
}

var classifyTests = []classifyTestcase{
	{"no type or language", "", false, "", false, true},
	{"empty type", "", true, "", false, true},
	{"whitespace-only type", " \t\n", true, "", false, true},
	{"empty type with bogus language", "", true, "basic", true, true},
	{"standard type", "text/javascript", true, "", false, true},
	{"type with surrounding spaces", "  text/javascript \t", true, "", false, true},
	{"non-script type", "text/plain", true, "", false, false},
	{"module type", "module", true, "", false, false},
	{"case-sensitive type", "Text/JavaScript", true, "", false, false},
	{"empty language", "", false, "", true, true},
	{"javascript language", "", false, "javascript", true, true},
	{"legacy language", "", false, "livescript", true, true},
	{"non-script language", "", false, "basic", true, false},
	{"type wins over language", "text/plain", true, "javascript", true, false},
}

func TestClassify(t *testing.T) {
	for _, tt := range classifyTests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.typeAttr, tt.hasType, tt.languageAttr, tt.hasLanguage)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every entry of the legacy MIME list must classify as executable on both the
// type path and the text/-prefixed language path.
func TestClassifyLegacyMIMEList(t *testing.T) {
	for _, mime := range scriptJSMimes {
		t.Run(mime, func(t *testing.T) {
			assert.True(t, classify(mime, true, "", false))
		})
	}
	assert.True(t, classify("", false, "jscript", true))
	assert.False(t, isScriptMIME("text/plain"))
}
