// Package devutil has small helpers for inspecting records from the CLI.
package devutil

import "encoding/json"

// Pick flattens v through its JSON form and keeps only the requested keys.
// Keys follow JSON tag names, so a certificate is picked with
// "certificateNumber", not "CertificateNumber". Fields elided by omitempty
// are simply absent. Debug/print helper, not for hot paths.
func Pick(v any, keys ...string) map[string]any {
	out := make(map[string]any, len(keys))

	b, err := json.Marshal(v)
	if err != nil {
		return out
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return out
	}

	for _, k := range keys {
		if val, ok := m[k]; ok {
			out[k] = val
		}
	}
	return out
}
