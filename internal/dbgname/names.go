// Package dbgname converts arbitrary pointer-identity values into random
// readable names, for turning "0xc0000a4010" into something a human can
// track across a debug dump of a graph, ring, or tree. It flagrantly leaks
// memory but generates names lazily, so it only matters if you're actually
// using it.
package dbgname

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

var (
	mu   sync.Mutex
	memo = map[any]string{}
)

func init() {
	// Names are generated in order of demand, so make them nondeterministic
	// to remind the reader that a name doesn't refer to the same thing
	// between runs.
	petname.NonDeterministicMode()
}

// Of returns a stable, human-readable name for obj for the lifetime of the
// process. Passing a nil pointer returns "Ø".
func Of(obj any) string {
	if isNilPointer(obj) {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if name, ok := memo[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
	memo[obj] = name
	return name
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func isNilPointer(obj any) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
