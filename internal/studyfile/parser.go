package studyfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/rote-cli/internal/core/domain"
	"github.com/custodia-labs/rote-cli/internal/logger"
)

const byteOrderMark = "\ufeff"

// Result is the outcome of parsing a study file.
type Result struct {
	// Entries are the answered questions in file order.
	Entries []domain.Entry

	// Dropped are the questions skipped because no answer followed them.
	Dropped []domain.DroppedEntry
}

// DecodeError reports input that is not valid UTF-8.
// It matches domain.ErrDecode with errors.Is.
type DecodeError struct {
	// Line is the 1-based line number of the first invalid line.
	Line int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, domain.ErrDecode)
}

// Unwrap returns domain.ErrDecode.
func (e *DecodeError) Unwrap() error {
	return domain.ErrDecode
}

// Parse parses a complete study file held in memory.
func Parse(data []byte) (*Result, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseString parses study file text.
func ParseString(text string) (*Result, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader parses a study file line by line as it is read from r.
func ParseReader(r io.Reader) (*Result, error) {
	br := bufio.NewReader(r)
	p := &parser{}

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if line != "" {
			if ferr := p.feed(lineNo, line); ferr != nil {
				return nil, ferr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read study file: %w", err)
		}
	}

	return p.finish(), nil
}

// IsQuestionMarker reports whether line opens a new question: one or more
// decimal digits immediately followed by a '.'.
func IsQuestionMarker(line string) bool {
	digits := 0
	for _, r := range line {
		if unicode.IsDigit(r) {
			digits++
			continue
		}
		return digits > 0 && r == '.'
	}
	return false
}

// parser holds the pending question and its answer lines while scanning.
type parser struct {
	result Result

	open     bool
	question string
	line     int
	answer   []string
}

func (p *parser) feed(lineNo int, line string) error {
	if lineNo == 1 {
		line = strings.TrimPrefix(line, byteOrderMark)
	}
	if !utf8.ValidString(line) {
		return &DecodeError{Line: lineNo}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if strings.TrimSpace(line) == "" {
		return nil
	}

	if IsQuestionMarker(line) {
		p.flush()
		p.open = true
		p.question = line
		p.line = lineNo
		p.answer = p.answer[:0]
		return nil
	}

	if !p.open {
		logger.Debug("line %d: no question yet, skipped", lineNo)
		return nil
	}
	p.answer = append(p.answer, line)
	return nil
}

// flush emits the pending question, or drops it when it has no answer.
func (p *parser) flush() {
	if !p.open {
		return
	}
	p.open = false

	if len(p.answer) == 0 {
		logger.Warn("line %d: question %q has no answer, skipped", p.line, p.question)
		p.result.Dropped = append(p.result.Dropped, domain.DroppedEntry{
			Question: p.question,
			Line:     p.line,
		})
		return
	}

	p.result.Entries = append(p.result.Entries, domain.Entry{
		Question: p.question,
		Answer:   strings.Join(p.answer, "\n"),
	})
}

func (p *parser) finish() *Result {
	p.flush()
	return &p.result
}
