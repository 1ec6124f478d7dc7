// internal/words/words.go
//
// Word list loading for the solver.
//
// Responsibilities:
//   - Read the candidate list from a file, or fall back to the embedded
//     default list in the assets package.
//   - Normalize entries to lowercase, drop anything that is not a playable
//     five-letter word, and drop duplicates while keeping the first position.
//   - Fingerprint a list so benchmark results can be tied to the exact list
//     they were produced with.
//
// The solver core never does I/O; it receives the []solver.Word built here.

package words

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
)

// Load returns the candidate list from path, or the embedded list when path
// is empty. It fails if no playable word remains.
func Load(path string) ([]solver.Word, error) {
	var (
		lines []string
		err   error
		src   = path
	)
	if path == "" {
		src = "embedded"
		lines, err = assets.WordList()
	} else {
		lines, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", src, err)
	}

	list, skipped := Parse(lines)
	if skipped > 0 {
		log.Warn().Str("source", src).Int("skipped", skipped).Msg("ignored malformed word-list entries")
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("words: %s list is empty", src)
	}
	log.Debug().Str("source", src).Int("words", len(list)).Msg("word list loaded")
	return list, nil
}

// Parse normalizes raw lines into words. Blank lines and '#' comments are
// ignored silently; other unplayable entries and duplicates are counted in
// skipped.
func Parse(lines []string) (list []solver.Word, skipped int) {
	seen := make(map[solver.Word]struct{}, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		w, err := solver.ParseWord(line)
		if err != nil {
			skipped++
			continue
		}
		if _, dup := seen[w]; dup {
			skipped++
			continue
		}
		seen[w] = struct{}{}
		list = append(list, w)
	}
	return list, skipped
}

// readWordFile returns the lines of a one-word-per-line file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// Fingerprint returns a short stable hash of the list, order included.
func Fingerprint(list []solver.Word) string {
	h, _ := blake2b.New256(nil)
	for _, w := range list {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}

// Contains reports whether w is in list.
func Contains(list []solver.Word, w solver.Word) bool {
	for _, x := range list {
		if x == w {
			return true
		}
	}
	return false
}
