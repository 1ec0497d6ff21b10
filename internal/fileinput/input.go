package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input source.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line is one line of source text along with where it came from.
type Line struct {
	Location
	Text string
}

func (il Line) String() string { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. The last line read is retained to facilitate user feedback.
type Input struct {
	Queue []io.Reader
	Last  Line

	rd   *bufio.Reader
	cur  io.Reader
	name string
	line int
}

// ReadLine returns the next line from the current input stream, moving on
// through the Queue as each stream is exhausted. Returns io.EOF once every
// stream has been consumed. Streams that implement io.Closer are closed once
// consumed. Lines may be any length; the line ending, "\n" or "\r\n", is not
// included in the returned Text.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.rd == nil && !in.nextIn() {
			return Line{}, io.EOF
		}
		text, err := in.rd.ReadString('\n')
		if err != nil && err != io.EOF {
			return Line{}, fmt.Errorf("%v: %w", Location{in.name, in.line + 1}, err)
		}
		if text != "" {
			in.line++
			in.Last = Line{Location{in.name, in.line}, trimEOL(text)}
			return in.Last, nil
		}
		in.closeCur()
	}
}

func trimEOL(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}

// Location returns the location of the last line read.
func (in *Input) Location() Location {
	return Location{in.name, in.line}
}

// Close closes the current stream and any that remain queued.
func (in *Input) Close() (err error) {
	if cerr := in.closeCur(); err == nil {
		err = cerr
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) closeCur() (err error) {
	if cl, ok := in.cur.(io.Closer); ok {
		err = cl.Close()
	}
	in.cur = nil
	in.rd = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.cur = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.rd = bufio.NewReader(in.cur)
	in.name = nameOf(in.cur)
	in.line = 0
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a name to a reader for use in Location.
func NamedReader(name string, r io.Reader) io.Reader {
	if cl, ok := r.(io.Closer); ok {
		return namedReadCloser{namedReader{r, name}, cl}
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

type namedReadCloser struct {
	namedReader
	io.Closer
}

func (nr namedReader) Name() string { return nr.name }
