// Package lisplib is used to conveniently load the standard library into an
// interpreter.  The library is written in lisp and embedded in the binary.
package lisplib

import (
	"embed"
	"path"

	"github.com/bmatsuo/tlisp/lisp"
	"github.com/bmatsuo/tlisp/parser"
)

//go:embed lib/*.lisp
var libFS embed.FS

// Fragments lists the library source files in load order.  Later fragments
// may use functions defined by earlier ones.
var Fragments = []string{
	"core.lisp",
	"list.lisp",
	"math.lisp",
	"string.lisp",
}

// LoadLibrary loads each library fragment into ip.  A fragment which cannot
// be loaded is logged and skipped, so LoadLibrary never fails.
func LoadLibrary(ip *lisp.Interpreter) error {
	for _, name := range Fragments {
		err := loadFragment(ip, name)
		if err != nil {
			ip.Logger().Warn("unable to load library fragment", "fragment", name, "error", err)
			continue
		}
		ip.Logger().Debug("loaded library fragment", "fragment", name)
	}
	return nil
}

func loadFragment(ip *lisp.Interpreter, name string) error {
	f, err := libFS.Open(path.Join("lib", name))
	if err != nil {
		return err
	}
	defer f.Close()
	return ip.Load(name, f)
}

// NewInterpreter returns an interpreter using the default reader with the
// standard library loaded.  The library is loaded after config has been
// applied.
func NewInterpreter(config ...lisp.Config) *lisp.Interpreter {
	all := make([]lisp.Config, 0, len(config)+2)
	all = append(all, lisp.WithReader(parser.NewReader()))
	all = append(all, config...)
	all = append(all, lisp.WithLoader(LoadLibrary))
	return lisp.NewInterpreter(all...)
}
