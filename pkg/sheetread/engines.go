package sheetread

import (
	"github.com/ukaji3/sheetread-go/pkg/sheetread/engine"
	"github.com/ukaji3/sheetread-go/pkg/sheetread/parser"
)

func init() {
	engine.Register(parser.ExcelizeEngine, parser.OpenExcelize)
	engine.Register(parser.TealegEngine, parser.OpenTealeg)
}

// Engines returns the names of the registered engines, sorted.
func Engines() []string {
	return engine.Names()
}
