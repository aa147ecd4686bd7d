package owl

import "fmt"

// Key is a structural identity for model values. Model values hold no
// pointers or maps, so values that compare equal have equal keys.
func Key(v any) string {
	return fmt.Sprintf("%#v", v)
}
