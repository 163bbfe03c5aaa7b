// Package config loads assembler settings from a Starlark build script.
//
// A build script is a Starlark file that may set these globals:
//
//	out = "prog.v"             # output file
//	listing = "prog.lst"       # listing file
//	verbose = True             # verbose assembly
//	defines = {"BASE": 0x40}   # predefined symbols (int or literal string)
//
// Any other globals are ignored, so scripts may compute values freely.
package config

import (
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Define is a predefined symbol.
type Define struct {
	Name  string
	Value string // Integer literal.
}

// Config holds the settings of a build script.
type Config struct {
	Out     string   // Output file, if set.
	Listing string   // Listing file, if set.
	Verbose bool     // Verbose assembly.
	Defines []Define // Predefined symbols, in script order.
}

// Load executes a build script file.
func Load(path string) (cfg *Config, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	return Parse(path, src)
}

// Parse executes a build script.
func Parse(name string, src []byte) (cfg *Config, err error) {
	thread := starlark.Thread{Name: name}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, name, src, nil)
	if err != nil {
		return
	}

	cfg = &Config{}

	cfg.Out, err = stringOf(globals, "out")
	if err != nil {
		return
	}

	cfg.Listing, err = stringOf(globals, "listing")
	if err != nil {
		return
	}

	if value, ok := globals["verbose"]; ok {
		cfg.Verbose = bool(value.Truth())
	}

	cfg.Defines, err = definesOf(globals)
	if err != nil {
		return
	}

	return
}

// stringOf returns a string global, or the empty string if it is not set.
func stringOf(globals starlark.StringDict, key string) (str string, err error) {
	value, ok := globals[key]
	if !ok || value == starlark.None {
		return
	}

	str, ok = starlark.AsString(value)
	if !ok {
		err = &ErrType{Name: key, Want: "string", Got: value.Type()}
	}
	return
}

// definesOf returns the 'defines' dictionary global.
func definesOf(globals starlark.StringDict) (defines []Define, err error) {
	value, ok := globals["defines"]
	if !ok || value == starlark.None {
		return
	}

	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = &ErrType{Name: "defines", Want: "dict", Got: value.Type()}
		return
	}

	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = &ErrType{Name: "defines key", Want: "string", Got: item[0].Type()}
			return
		}

		var literal string
		switch v := item[1].(type) {
		case starlark.Int:
			literal = v.String()
		case starlark.String:
			literal = string(v)
		default:
			err = &ErrType{Name: "defines[" + name + "]", Want: "int or string", Got: v.Type()}
			return
		}

		defines = append(defines, Define{Name: name, Value: literal})
	}

	return
}
