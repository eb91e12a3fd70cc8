package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTemplateFuncs(t *testing.T) {
	funcs := templateFuncs()

	assert.Equal(t, "test", funcs["ToLower"].(func(string) string)("TEST"), "ToLower function failed")
	assert.Equal(t, 15, funcs["Add"].(func(int, int) int)(10, 5), "Add function failed")
	assert.Equal(t, "80 B", funcs["HumanBytes"].(func(int) string)(80))
	assert.Equal(t, "1.2 kB", funcs["HumanBytes"].(func(int) string)(1200))
	assert.Equal(t, "12,345", funcs["Comma"].(func(int) string)(12345))

	// sprig functions are available too
	assert.Contains(t, funcs, "upper")
	assert.Contains(t, funcs, "default")
}

func TestMillis(t *testing.T) {
	assert.Equal(t, "<1ms", millis(300*time.Microsecond))
	assert.Equal(t, "43ms", millis(42600*time.Microsecond))
	assert.Equal(t, "1.5s", millis(1500*time.Millisecond))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "datasetdocumentation", slugify("Dataset Documentation"))
	assert.Equal(t, "nerinference", slugify("NER Inference!"))
}
