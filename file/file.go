// Package file maps source offsets to line and column positions and loads
// source text from disk.
package file

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/reloopjs/reloop/ast"
)

// Position is a human readable source location. Line and Column are 1-based;
// Column counts runes.
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	name := p.Filename
	if name == "" {
		name = "<input>"
	}
	if p.Line == 0 {
		return name
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
}

// File is a named source text with a line table.
type File struct {
	name  string
	src   string
	lines []uint32 // byte offset of each line start
}

// NewFile indexes src. Sources larger than 4GiB are rejected by Load; NewFile
// panics on them.
func NewFile(name, src string) *File {
	f := &File{name: name, src: src, lines: []uint32{0}}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
		case '\n':
		case 0xE2:
			// U+2028 and U+2029 are line terminators too.
			if i+2 < len(src) && src[i+1] == 0x80 && (src[i+2] == 0xA8 || src[i+2] == 0xA9) {
				i += 2
				break
			}
			continue
		default:
			continue
		}
		f.lines = append(f.lines, safecast.MustConv[uint32](i+1))
	}
	return f
}

// Load reads path and decodes it to UTF-8. A byte order mark selects UTF-16
// decoding; without one the content must be UTF-8.
func Load(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(fd, decoder))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if _, err := safecast.Conv[uint32](len(data)); err != nil {
		return nil, fmt.Errorf("%s: file too large", path)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: invalid UTF-8", path)
	}
	return NewFile(path, string(data)), nil
}

func (f *File) Name() string { return f.name }

func (f *File) Source() string { return f.src }

// LineCount returns the number of lines, counting a trailing partial line.
func (f *File) LineCount() int { return len(f.lines) }

// Position resolves idx. The zero index belongs to synthetic nodes and
// resolves to a position without a line.
func (f *File) Position(idx ast.Idx) Position {
	if idx <= 0 {
		return Position{Filename: f.name}
	}
	offset := min(int(idx)-1, len(f.src))
	line := sort.Search(len(f.lines), func(i int) bool {
		return int(f.lines[i]) > offset
	}) - 1
	start := int(f.lines[line])
	return Position{
		Filename: f.name,
		Line:     line + 1,
		Column:   utf8.RuneCountInString(f.src[start:offset]) + 1,
	}
}

// Line returns the text of the 1-based line n without its terminator.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lines) {
		return ""
	}
	start := int(f.lines[n-1])
	end := len(f.src)
	if n < len(f.lines) {
		end = int(f.lines[n])
	}
	return strings.TrimRight(f.src[start:end], "\r\n\u2028\u2029")
}

// Context renders the line holding idx with a caret under its column.
func (f *File) Context(idx ast.Idx) string {
	pos := f.Position(idx)
	if pos.Line == 0 {
		return ""
	}
	text := strings.ReplaceAll(f.Line(pos.Line), "\t", " ")
	prefix := []rune(text)
	prefix = prefix[:min(pos.Column-1, len(prefix))]
	// Wide characters take two cells.
	pad := runewidth.StringWidth(string(prefix))
	return fmt.Sprintf("%5d: %s\n%s^", pos.Line, text, strings.Repeat(" ", pad+7))
}
