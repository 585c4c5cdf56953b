// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

//go:build !windows
// +build !windows

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/creack/pty"
	qt "github.com/frankban/quicktest"
)

func TestDetectColor(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("TERM", "xterm")

	ptmx, tty, err := pty.Open()
	qt.Assert(t, err, qt.IsNil)
	defer ptmx.Close()
	defer tty.Close()

	file, err := os.Create(filepath.Join(t.TempDir(), "out"))
	qt.Assert(t, err, qt.IsNil)
	defer file.Close()

	qt.Assert(t, detectColor(tty), qt.IsTrue)
	qt.Assert(t, detectColor(file), qt.IsFalse)
	qt.Assert(t, detectColor(&bytes.Buffer{}), qt.IsFalse)

	t.Setenv("TERM", "dumb")
	qt.Assert(t, detectColor(tty), qt.IsFalse)

	t.Setenv("FORCE_COLOR", "true")
	qt.Assert(t, detectColor(&bytes.Buffer{}), qt.IsTrue)
}
