package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/sciformats/go-sciformats/ir"
)

type debug struct {
	Scan   bool
	JDX    bool
	Export bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("SCIFORMATS_DEBUG_SCAN")
	d.JDX = boolEnv("SCIFORMATS_DEBUG_JDX")
	d.Export = boolEnv("SCIFORMATS_DEBUG_EXPORT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func JDX() bool {
	return d.JDX
}
func Export() bool {
	return d.Export
}

// Logf writes to stderr. *ir.Node arguments are rendered as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			b, err := json.Marshal(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = string(b)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
