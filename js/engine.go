// Package js executes page scripts against a goja runtime.
package js

import (
	"net/url"
	"strings"

	"github.com/dop251/goja"
	"github.com/sirupsen/logrus"
)

// Engine evaluates script sources handed over by the activation algorithm.
// It only ever receives plain strings and URLs; it holds no references into
// the document tree.
type Engine struct {
	vm *goja.Runtime
}

// New creates an engine with a fresh goja runtime and a console shim.
func New() *Engine {
	vm := goja.New()
	registerConsole(vm)
	return &Engine{vm: vm}
}

// ExecuteScript runs source attributed to originURL. Script errors are logged
// and swallowed; a broken script must not take the page down.
func (e *Engine) ExecuteScript(source string, originURL *url.URL) {
	name := "inline"
	if originURL != nil {
		name = originURL.String()
	}
	if _, err := e.vm.RunScript(name, source); err != nil {
		logrus.Errorf("error running script %s: %v", name, err)
	}
}

// Bind exposes a host value as a global in the runtime.
func (e *Engine) Bind(name string, value interface{}) error {
	return e.vm.Set(name, value)
}

func registerConsole(vm *goja.Runtime) {
	log := func(level logrus.Level) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			parts := make([]string, 0, len(call.Arguments))
			for _, arg := range call.Arguments {
				parts = append(parts, arg.String())
			}
			logrus.StandardLogger().Logf(level, "console: %s", strings.Join(parts, " "))
			return goja.Undefined()
		}
	}
	console := vm.NewObject()
	_ = console.Set("log", log(logrus.InfoLevel))
	_ = console.Set("info", log(logrus.InfoLevel))
	_ = console.Set("warn", log(logrus.WarnLevel))
	_ = console.Set("error", log(logrus.ErrorLevel))
	_ = vm.Set("console", console)
}
