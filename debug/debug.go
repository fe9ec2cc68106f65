// Package debug gates diagnostic logging behind environment variables,
// read once at start up.
//
//	TAGLINE_DEBUG_PARSE   statements produced for each parsed line
//	TAGLINE_DEBUG_EXEC    statements as they are executed
//	TAGLINE_DEBUG_SCHEMA  schema rules as they are checked
//	TAGLINE_DEBUG_QUERY   compiled queries and their inputs
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Exec   bool
	Schema bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TAGLINE_DEBUG_PARSE")
	d.Exec = boolEnv("TAGLINE_DEBUG_EXEC")
	d.Schema = boolEnv("TAGLINE_DEBUG_SCHEMA")
	d.Query = boolEnv("TAGLINE_DEBUG_QUERY")
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
func Exec() bool {
	return d.Exec
}
func Schema() bool {
	return d.Schema
}
func Query() bool {
	return d.Query
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
