package files

import (
	"os"
	"path/filepath"
	"strings"
)

// LineFormat records how a file terminates its lines so a rewrite can keep
// the endings the user chose.
type LineFormat struct {
	CRLF            bool
	TrailingNewline bool
}

// DefaultLineFormat is used for files that do not exist yet.
var DefaultLineFormat = LineFormat{TrailingNewline: true}

// DetectLineFormat inspects input. A file is CRLF when its first line break
// is CRLF.
func DetectLineFormat(input string) LineFormat {
	f := LineFormat{TrailingNewline: strings.HasSuffix(input, "\n")}
	if i := strings.IndexByte(input, '\n'); i > 0 && input[i-1] == '\r' {
		f.CRLF = true
	}
	return f
}

func (f LineFormat) separator() string {
	if f.CRLF {
		return "\r\n"
	}
	return "\n"
}

// ReadLines loads a text file as lines. A trailing newline does not produce
// an empty last line, and CRLF endings are accepted.
func ReadLines(path string) ([]string, error) {
	lines, _, err := ReadLinesFormat(path)
	return lines, err
}

// ReadLinesFormat is ReadLines that also reports the file's line format.
func ReadLinesFormat(path string) ([]string, LineFormat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, DefaultLineFormat, err
	}
	text := string(data)
	return SplitLines(text), DetectLineFormat(text), nil
}

// SplitLines splits text into lines the same way ReadLines does.
func SplitLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	// Remove the trailing empty element produced by Split when the input ends with a newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// WriteLines writes lines with LF endings and a final newline.
func WriteLines(path string, lines []string) error {
	return WriteLinesFormat(path, lines, DefaultLineFormat)
}

// WriteLinesFormat atomically replaces path with lines joined in format f,
// keeping the existing file mode.
func WriteLinesFormat(path string, lines []string, f LineFormat) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return err
	}
	temp, err := os.CreateTemp(dir, "orgstamp-*")
	if err != nil {
		return err
	}
	defer os.Remove(temp.Name())

	content := strings.Join(lines, f.separator())
	if f.TrailingNewline && len(lines) > 0 {
		content += f.separator()
	}

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return err
	}

	return os.Rename(temp.Name(), path)
}
