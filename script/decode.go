package script

import "golang.org/x/text/encoding/unicode"

// decodeReplace decodes b as UTF-8, substituting U+FFFD for ill-formed
// sequences. Charset negotiation is not supported; every external script is
// read with this fixed default, so decoding never fails.
func decodeReplace(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		// The replacing decoder does not produce errors for malformed
		// input, so this path is unreachable in practice.
		return string(b)
	}
	return string(out)
}
