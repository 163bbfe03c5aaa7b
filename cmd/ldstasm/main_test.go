package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ldst/ldst"
)

const roundTrip = "START: ; entry\n  ld #1\n  st a\n  jmp START\n"

func execute(t *testing.T, args ...string) (stderr string, err error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	err = cmd.Execute()
	stderr = buf.String()
	return
}

func writeSource(t *testing.T, dir, name, text string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_Mem(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	src := writeSource(t, dir, "prog.asm", roundTrip)
	out := filepath.Join(dir, "prog.mem")

	_, err := execute(t, "-o", out, src)
	assert.NoError(err)

	data, err := os.ReadFile(out)
	assert.NoError(err)
	assert.Equal("201\n100\n800\n", string(data))
}

func TestRun_Verilog(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	src := writeSource(t, dir, "prog.asm", roundTrip)
	out := filepath.Join(dir, "prog.v")

	_, err := execute(t, "--out", out, src)
	assert.NoError(err)

	data, err := os.ReadFile(out)
	assert.NoError(err)
	assert.True(strings.HasPrefix(string(data), "module LDST_PROGRAM_ROM (clock, address, data_out);\n"))
	assert.Contains(string(data), "2'h0002: data_out = 12'h800;\n")
}

func TestRun_OtherExtension(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	src := writeSource(t, dir, "prog.asm", roundTrip)
	out := filepath.Join(dir, "prog.hex")

	_, err := execute(t, "-o", out, src)
	assert.NoError(err)

	data, err := os.ReadFile(out)
	assert.NoError(err)
	assert.Equal("201\n100\n800\n", string(data))
}

func TestRun_DefaultOutput(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	src := writeSource(t, dir, "prog.asm", roundTrip)

	t.Chdir(dir)

	_, err := execute(t, src)
	assert.NoError(err)

	data, err := os.ReadFile(filepath.Join(dir, "a.mem"))
	assert.NoError(err)
	assert.Equal("201\n100\n800\n", string(data))
}

func TestRun_Deterministic(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	src := writeSource(t, dir, "prog.asm", roundTrip)

	for _, name := range []string{"first.v", "second.v"} {
		_, err := execute(t, "-o", filepath.Join(dir, name), src)
		assert.NoError(err)
	}

	first, err := os.ReadFile(filepath.Join(dir, "first.v"))
	assert.NoError(err)
	second, err := os.ReadFile(filepath.Join(dir, "second.v"))
	assert.NoError(err)
	assert.Equal(first, second)
}

func TestRun_Undefined(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	src := writeSource(t, dir, "prog.asm", "ld #1\njmp NOWHERE\n")
	out := filepath.Join(dir, "prog.mem")

	_, err := execute(t, "-o", out, src)
	assert.True(errors.Is(err, ldst.ErrSymbolUndefined("")))

	_, err = os.Stat(out)
	assert.True(errors.Is(err, fs.ErrNotExist))
}

func TestRun_Syntax(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	src := writeSource(t, dir, "prog.asm", "ld #1\nadd a\n")
	out := filepath.Join(dir, "prog.mem")

	_, err := execute(t, "-o", out, src)
	var le *ldst.ErrLine
	if assert.True(errors.As(err, &le)) {
		assert.Equal(src, le.File)
		assert.Equal(2, le.LineNo)
	}
	assert.True(errors.Is(err, ldst.ErrSyntax))

	_, err = os.Stat(out)
	assert.True(errors.Is(err, fs.ErrNotExist))
}

func TestRun_Missing(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	_, err := execute(t, "-o", filepath.Join(dir, "a.mem"), filepath.Join(dir, "missing.asm"))
	assert.True(errors.Is(err, fs.ErrNotExist))

	_, err = execute(t)
	assert.Error(err)

	_, err = execute(t, "one.asm", "two.asm")
	assert.Error(err)
}

func TestRun_Defines(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	src := writeSource(t, dir, "prog.asm", "ld #WORD.H\nld #WORD.L\n")
	out := filepath.Join(dir, "prog.mem")

	_, err := execute(t, "-D", "word=0x1234", "-o", out, src)
	assert.NoError(err)

	data, err := os.ReadFile(out)
	assert.NoError(err)
	assert.Equal("212\n234\n", string(data))

	_, err = execute(t, "-D", "WORD", "-o", out, src)
	assert.Equal(ErrDefineFlag("WORD"), err)

	_, err = execute(t, "-D", "A=1", "-o", out, src)
	assert.True(errors.Is(err, ldst.ErrSymbolDuplicate("")))
}

func TestRun_Config(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	src := writeSource(t, dir, "prog.asm", "ld #WORD.L\njmp BASE\n")
	rom := filepath.Join(dir, "script.v")
	listing := filepath.Join(dir, "script.lst")
	script := writeSource(t, dir, "build.star",
		"out = \""+filepath.ToSlash(rom)+"\"\n"+
			"listing = \""+filepath.ToSlash(listing)+"\"\n"+
			"defines = {\"WORD\": 0x1234, \"BASE\": \"0x10\"}\n")

	_, err := execute(t, "-c", script, src)
	assert.NoError(err)

	data, err := os.ReadFile(rom)
	assert.NoError(err)
	assert.Contains(string(data), "12'h234;")
	assert.Contains(string(data), "12'h810;")

	data, err = os.ReadFile(listing)
	assert.NoError(err)
	assert.Contains(string(data), "0001 810     2 JMP BASE")
	assert.Contains(string(data), "; jmp 0x10\n")

	// Command line flags override the script.
	out := filepath.Join(dir, "flag.mem")
	_, err = execute(t, "-c", script, "-D", "BASE=0x20", "-o", out, src)
	assert.NoError(err)

	data, err = os.ReadFile(out)
	assert.NoError(err)
	assert.Equal("234\n820\n", string(data))

	bad := writeSource(t, dir, "bad.star", "out = 1\n")
	_, err = execute(t, "-c", bad, src)
	assert.Error(err)
}

func TestRun_Symbols(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	src := writeSource(t, dir, "prog.asm", roundTrip)

	stderr, err := execute(t, "--symbols", "-o", filepath.Join(dir, "a.mem"), src)
	assert.NoError(err)
	assert.Contains(stderr, "START")
	assert.Contains(stderr, "SAR")
	assert.Contains(stderr, "Builtin: true")
	assert.Contains(stderr, "Builtin: false")
}
