package objprint

import (
	"fmt"

	"github.com/goccy/go-json"
)

// AsJSON renders v as compact JSON. Values JSON cannot encode fall back to
// their natural text form.
//
//	objprint.Printing[Address](cfg).Using(func(a Address) string { return objprint.AsJSON(a) })
func AsJSON(v any) string {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}
