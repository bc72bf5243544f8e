package quiz

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// LineReader реализует InputSource поверх io.Reader.
// Чтение идёт в отдельной горутине, поэтому ReadLine можно прервать через ctx,
// не теряя строку: непрочитанная строка достанется следующему вызову.
type LineReader struct {
	lines chan string
	done  chan struct{}
	stop  chan struct{}
	err   error
}

// NewLineReader создаёт LineReader и запускает чтение из in.
func NewLineReader(in io.Reader) *LineReader {
	r := &LineReader{
		lines: make(chan string),
		done:  make(chan struct{}),
		stop:  make(chan struct{}),
	}

	go r.scan(in)

	return r
}

func (r *LineReader) scan(in io.Reader) {
	defer close(r.done)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case r.lines <- scanner.Text():
		case <-r.stop:
			r.err = io.ErrClosedPipe
			return
		}
	}

	r.err = scanner.Err()
	if r.err == nil {
		r.err = io.EOF
	}
}

// ReadLine возвращает очередную строку без пробелов по краям.
// После окончания ввода возвращает io.EOF.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	select {
	case line := <-r.lines:
		return strings.TrimSpace(line), nil
	case <-r.done:
		return "", r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close останавливает фоновое чтение.
func (r *LineReader) Close() error {
	select {
	case <-r.stop:
	default:
		close(r.stop)
	}

	return nil
}
