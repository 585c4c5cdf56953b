// Copyright (c) 2026, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	maybeio "github.com/google/renameio/v2/maybe"
	"github.com/pkg/diff"
	diffwrite "github.com/pkg/diff/write"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"mvdan.cc/editorconfig"

	"mvdan.cc/braces/expand"
	"mvdan.cc/braces/syntax"
)

var (
	showVersion = flag.Bool("version", false, "")

	command = flag.String("c", "", "")
	newline = flag.Bool("n", false, "")
	simple  = flag.Bool("s", false, "")
	count   = flag.Bool("count", false, "")
	toJSON  = flag.Bool("tojson", false, "")

	list    = flag.Bool("l", false, "")
	write   = flag.Bool("w", false, "")
	diffOut = flag.Bool("d", false, "")

	// useEditorConfig will be false if -n was used.
	useEditorConfig = true

	in    io.Reader = os.Stdin
	out   io.Writer = os.Stdout
	color bool

	version = "(devel)" // to match the default from runtime/debug
)

// options holds the per-file settings, which may come from flags or from
// EditorConfig files.
type options struct {
	newline bool
	simple  bool
}

func main() {
	os.Exit(main1())
}

func main1() int {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: braceexp [flags] [path ...]

Each line of input is a brace pattern, such as "{a,b}{c,d}", which is replaced
by its expansion. If the only argument is a dash ('-') or no arguments are
given, standard input will be used. If a given path is a directory, it will be
recursively searched for files ending in ".braces".

  -version  show version and exit

  -c str    expand the given pattern instead of reading any input
  -n        print one expansion per line instead of space-separated
  -s        simplify the patterns instead of expanding them
  -count    print the number of expansions of each pattern
  -tojson   print the syntax tree of each pattern as JSON

  -l        list files whose expansion differs from their content
  -w        write result to file instead of stdout
  -d        error with a diff when the expansion differs
`)
	}
	flag.Parse()

	if *showVersion {
		// don't overwrite the version if it was set by -ldflags=-X
		if info, ok := debug.ReadBuildInfo(); ok && version == "(devel)" {
			mod := &info.Main
			if mod.Replace != nil {
				mod = mod.Replace
			}
			if mod.Version != "" {
				version = mod.Version
			}
		}
		fmt.Fprintln(out, version)
		return 0
	}
	if *simple && (*count || *toJSON) {
		fmt.Fprintln(os.Stderr, "-s cannot be used with -count or -tojson")
		return 1
	}
	if *count && *toJSON {
		fmt.Fprintln(os.Stderr, "-count and -tojson cannot coexist")
		return 1
	}
	if (*count || *toJSON) && (*list || *write || *diffOut) {
		fmt.Fprintln(os.Stderr, "-count and -tojson cannot be used with -l, -w or -d")
		return 1
	}
	if os.Getenv("BRACEEXP_NO_EDITORCONFIG") == "true" {
		useEditorConfig = false
	}
	commandSet := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			useEditorConfig = false
		case "c":
			commandSet = true
		}
	})
	color = detectColor(out)

	if commandSet {
		if flag.NArg() > 0 {
			fmt.Fprintln(os.Stderr, "-c cannot be used with paths")
			return 1
		}
		if *list || *write || *diffOut {
			fmt.Fprintln(os.Stderr, "-c cannot be used with -l, -w or -d")
			return 1
		}
		if err := writeResult(out, []byte(*command), flagOptions(), true); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}
	if flag.NArg() == 0 || (flag.NArg() == 1 && flag.Arg(0) == "-") {
		if err := expandStdin("<standard input>"); err != nil {
			if err != errChangedWithDiff {
				fmt.Fprintln(os.Stderr, err)
			}
			return 1
		}
		return 0
	}
	status := 0
	var jobs []*job
	for _, path := range flag.Args() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			// When given paths to files directly, always expand
			// them, no matter their extension.
			j, err := newJob(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			jobs = append(jobs, j)
			continue
		}
		if err := filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			j, err := walkPath(path, info)
			switch err {
			case nil:
				if j != nil {
					jobs = append(jobs, j)
				}
			case filepath.SkipDir:
				return err
			default:
				fmt.Fprintln(os.Stderr, err)
				status = 1
			}
			return nil
		}); err != nil {
			// Something went wrong walking the filesystem; stop.
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	if runJobs(jobs) {
		status = 1
	}
	return status
}

// detectColor reports whether diffs written to w should be coloured.
func detectColor(w io.Writer) bool {
	if os.Getenv("FORCE_COLOR") == "true" {
		// Undocumented way to force color; used in the tests.
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var errChangedWithDiff = errors.New("")

func expandStdin(name string) error {
	if *write {
		return fmt.Errorf("-w cannot be used on standard input")
	}
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	opts := flagOptions()
	if *count || *toJSON {
		return writeResult(out, src, opts, false)
	}
	return expandBytes(out, src, name, opts)
}

var vcsDir = regexp.MustCompile(`^\.(git|svn|hg)$`)

// walkPath returns the job for a path found while walking a directory, or
// nil if the path should be skipped.
func walkPath(path string, info os.FileInfo) (*job, error) {
	if info.IsDir() && vcsDir.MatchString(info.Name()) {
		return nil, filepath.SkipDir
	}
	opts := flagOptions()
	if useEditorConfig {
		props, err := findProps(path)
		if err != nil {
			return nil, err
		}
		if props.Get("ignore") == "true" {
			if info.IsDir() {
				return nil, filepath.SkipDir
			}
			return nil, nil
		}
		opts = propsOptions(props)
	}
	if info.IsDir() || filepath.Ext(path) != ".braces" {
		return nil, nil
	}
	return &job{path: path, opts: opts}, nil
}

var ecQuery = editorconfig.Query{
	FileCache:   make(map[string]*editorconfig.File),
	RegexpCache: make(map[string]*regexp.Regexp),
}

// findProps queries the EditorConfig properties for a path. Queries share a
// cache, so they must only happen from the main goroutine.
var findProps = func(path string) (editorconfig.Section, error) {
	return ecQuery.Find(path)
}

func flagOptions() options {
	return options{newline: *newline, simple: *simple}
}

func propsOptions(props editorconfig.Section) options {
	opts := flagOptions()
	opts.newline = props.Get("brace_newline") == "true"
	return opts
}

// job is the expansion of a single file, which may run concurrently with
// others. Its output is buffered so that it can be written in order.
type job struct {
	path string
	opts options

	out bytes.Buffer
	err error
}

// newJob creates the job for a file given directly as an argument.
func newJob(path string) (*job, error) {
	opts := flagOptions()
	if useEditorConfig {
		props, err := findProps(path)
		if err != nil {
			return nil, err
		}
		opts = propsOptions(props)
	}
	return &job{path: path, opts: opts}, nil
}

func (j *job) run() {
	src, err := os.ReadFile(j.path)
	if err != nil {
		j.err = err
		return
	}
	if *count || *toJSON {
		j.err = writeResult(&j.out, src, j.opts, false)
		return
	}
	j.err = expandBytes(&j.out, src, j.path, j.opts)
}

// runJobs runs all jobs with bounded concurrency, writing their output and
// errors in order. It reports whether any of the jobs failed.
func runJobs(jobs []*job) (failed bool) {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			j.run()
			return nil
		})
	}
	g.Wait()
	for _, j := range jobs {
		if _, err := out.Write(j.out.Bytes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return true
		}
		switch j.err {
		case nil:
		case errChangedWithDiff:
			failed = true
		default:
			fmt.Fprintln(os.Stderr, j.err)
			failed = true
		}
	}
	return failed
}

// expandSource replaces each line in src with its expansion, or with its
// simplified form.
func expandSource(src []byte, opts options) []byte {
	var buf bytes.Buffer
	eachLine(src, func(line string, last bool) {
		if opts.simple {
			word := syntax.Parse(line)
			syntax.Simplify(word)
			buf.WriteString(word.String())
		} else if opts.newline {
			for i, field := range expand.Fields(line) {
				if i > 0 {
					buf.WriteByte('\n')
				}
				buf.WriteString(field)
			}
		} else {
			buf.WriteString(expand.Expand(line))
		}
		if !last {
			buf.WriteByte('\n')
		}
	})
	return buf.Bytes()
}

// eachLine calls fn for every line in src, without its trailing newline. last
// is true only for a final line not followed by a newline.
func eachLine(src []byte, fn func(line string, last bool)) {
	text := string(src)
	for text != "" {
		line, rest, found := strings.Cut(text, "\n")
		fn(line, !found)
		text = rest
	}
}

// writeResult writes the -count or -tojson output for src, or its expansion
// if neither flag was used.
func writeResult(w io.Writer, src []byte, opts options, single bool) error {
	if !*count && !*toJSON {
		res := expandSource(src, opts)
		if single {
			res = append(res, '\n')
		}
		_, err := w.Write(res)
		return err
	}
	var err error
	eachLine(src, func(line string, last bool) {
		if err != nil {
			return
		}
		word := syntax.Parse(line)
		if *toJSON {
			err = writeJSON(w, word, single)
			return
		}
		_, err = io.WriteString(w, strconv.Itoa(syntax.Count(word))+"\n")
	})
	return err
}

func expandBytes(w io.Writer, src []byte, path string, opts options) error {
	res := expandSource(src, opts)
	if !bytes.Equal(src, res) {
		if *list {
			if _, err := fmt.Fprintln(w, path); err != nil {
				return err
			}
		}
		if *write {
			info, err := os.Lstat(path)
			if err != nil {
				return err
			}
			perm := info.Mode().Perm()
			// On Windows, maybeio falls back to a regular write.
			if err := maybeio.WriteFile(path, res, perm); err != nil {
				return err
			}
		}
		if *diffOut {
			var diffOpts []diffwrite.Option
			if color {
				diffOpts = append(diffOpts, diffwrite.TerminalColor())
			}
			if err := diff.Text(path+".orig", path, src, res, w, diffOpts...); err != nil {
				return fmt.Errorf("computing diff: %w", err)
			}
			return errChangedWithDiff
		}
	}
	if !*list && !*write && !*diffOut {
		if _, err := w.Write(res); err != nil {
			return err
		}
	}
	return nil
}
