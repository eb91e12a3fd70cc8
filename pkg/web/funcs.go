package web

import (
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/getzep/sprig/v3"
)

func add(a, b int) int {
	return a + b
}

func humanBytes(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}

// millis formats a duration rounded to the millisecond, e.g. "42ms".
func millis(d time.Duration) string {
	if d < time.Millisecond {
		return "<1ms"
	}
	return d.Round(time.Millisecond).String()
}

// templateFuncs is sprig's function map plus our own helpers.
func templateFuncs() template.FuncMap {
	own := template.FuncMap{
		"ToLower":    strings.ToLower,
		"Add":        add,
		"HumanBytes": humanBytes,
		"Comma":      comma,
		"Millis":     millis,
	}

	funcs := sprig.FuncMap()
	for name, fn := range own {
		funcs[name] = fn
	}
	return funcs
}
