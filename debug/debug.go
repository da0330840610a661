package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Build bool
	Drop  bool
	Eval  bool
	Patch bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TILDE_DEBUG_PARSE")
	d.Build = boolEnv("TILDE_DEBUG_BUILD")
	d.Drop = boolEnv("TILDE_DEBUG_DROP")
	d.Eval = boolEnv("TILDE_DEBUG_EVAL")
	d.Patch = boolEnv("TILDE_DEBUG_PATCH")
	d.Diff = boolEnv("TILDE_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Build() bool {
	return d.Build
}
func Drop() bool {
	return d.Drop
}
func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
