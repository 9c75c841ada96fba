package script

import "strings"

// htmlSpaceCharacters is https://infra.spec.whatwg.org/#ascii-whitespace.
const htmlSpaceCharacters = " \t\n\f\r"

// Supported script types as defined by
// https://html.spec.whatwg.org/multipage/scripting.html#support-the-scripting-language
var scriptJSMimes = []string{
	"application/ecmascript",
	"application/javascript",
	"application/x-ecmascript",
	"application/x-javascript",
	"text/ecmascript",
	"text/javascript",
	"text/javascript1.0",
	"text/javascript1.1",
	"text/javascript1.2",
	"text/javascript1.3",
	"text/javascript1.4",
	"text/javascript1.5",
	"text/jscript",
	"text/livescript",
	"text/x-ecmascript",
	"text/x-javascript",
}

func isScriptMIME(s string) bool {
	for _, mime := range scriptJSMimes {
		if s == mime {
			return true
		}
	}
	return false
}

// classify decides from the declared type and language attributes whether a
// script block holds the supported scripting language. A missing attribute is
// signalled with its has flag, matching the attribute store's get contract.
func classify(typeAttr string, hasType bool, languageAttr string, hasLanguage bool) bool {
	if hasType {
		trimmed := strings.Trim(typeAttr, htmlSpaceCharacters)
		if trimmed == "" {
			// type attr exists, but empty means js
			return true
		}
		return isScriptMIME(trimmed)
	}
	if hasLanguage {
		if languageAttr == "" {
			return true
		}
		return isScriptMIME("text/" + languageAttr)
	}
	// neither attribute, inferring js
	return true
}
