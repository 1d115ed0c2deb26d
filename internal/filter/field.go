package filter

import (
	"github.com/tidwall/gjson"
)

// Field returns the value stored under the literal top-level key. When the
// key is repeated the last occurrence wins. The result does not exist if
// rec is not an object or lacks the key.
func Field(rec gjson.Result, key string) gjson.Result {
	var out gjson.Result
	if !rec.IsObject() {
		return out
	}
	rec.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			out = v
		}
		return true
	})
	return out
}
