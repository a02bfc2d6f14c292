package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Walk bool
	Expr bool
	Op   bool
	Warn bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("TAL_DEBUG_WALK")
	d.Expr = boolEnv("TAL_DEBUG_EXPR")
	d.Op = boolEnv("TAL_DEBUG_OP")
	d.Warn = boolEnv("TAL_DEBUG_WARN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Expr() bool {
	return d.Expr
}
func Op() bool {
	return d.Op
}
func Warn() bool {
	return d.Warn
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
