package emulator

import (
	"bufio"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// LoadImage reads a program image from a file. Files with a .hex extension
// are parsed as hex text, anything else is taken as raw bytes.
func LoadImage(fileName string) ([]byte, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "LoadImage")
	}
	if strings.EqualFold(filepath.Ext(fileName), ".hex") {
		image, err := ParseImage(string(data))
		if err != nil {
			return nil, errors.Wrapf(err, "LoadImage %v", fileName)
		}
		return image, nil
	}
	return data, nil
}

// ParseImage decodes a program image written as hex text. Whitespace between
// bytes is ignored, as is anything following a '#' on a line.
func ParseImage(text string) ([]byte, error) {
	var digits strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(text))
	for lineno := 1; scanner.Scan(); lineno++ {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		for _, word := range strings.Fields(line) {
			if len(word)%2 != 0 {
				return nil, errors.Errorf("line %d: '%v' is not a whole number of bytes", lineno, word)
			}
			digits.WriteString(word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "ParseImage")
	}
	image, err := hex.DecodeString(digits.String())
	if err != nil {
		return nil, errors.Wrap(err, "ParseImage")
	}
	return image, nil
}
