// Package console adapts line-oriented terminal streams to app.Learner.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

type Learner struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLearner(in io.Reader, out io.Writer) *Learner {
	return &Learner{in: bufio.NewReader(in), out: out}
}

func (l *Learner) Write(p []byte) (int, error) {
	return l.out.Write(p)
}

// ReadLine blocks until a full line arrives. The whole line is consumed, so
// any junk after a bad answer never leaks into the next read. A final line
// without a newline is still returned before io.EOF.
func (l *Learner) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := l.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
