// apps/go-solver/internal/words/words.go
//
// Provides word list loading for the solver.
//
// Word Lists:
//   - "answers": words that may be the hidden answer.
//   - "allowed": extra words accepted as guesses.
//
// Load behavior:
//   1. If both paths are set,
//      load answers from the first and allowed guesses from the second.
//   2. If only the allowed path is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If only the answers path is set, there are no extra guesses.
//   4. If neither is set,
//      fall back to the embedded defaults in the assets package.
//
// Files hold one word per line. Lines are trimmed and lowercased; blank
// lines and lines starting with '#' are skipped. Words are otherwise passed
// through unchanged: the solver rejects malformed dictionaries itself.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
)

// ErrEmpty is returned when the answers list ends up empty.
var ErrEmpty = errors.New("words: answers list is empty")

// Dictionary is a loaded pair of word lists.
type Dictionary struct {
	Answers []string // possible answers, file order
	Guesses []string // extra guesses, file order

	answersSet map[string]struct{} // answers only
	allowedSet map[string]struct{} // answers ∪ guesses
}

// Load reads the answers and allowed lists, see the package comment.
func Load(answersPath, allowedPath string) (*Dictionary, error) {
	var ansList, allowList []string
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	case answersPath == "" && allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	case answersPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}

	default:
		if ansList, err = readEmbedded(assets.AnswersName); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.AllowedName); err != nil {
			return nil, err
		}
	}

	return New(ansList, allowList)
}

// New builds a Dictionary from in-memory lists.
func New(answers, guesses []string) (*Dictionary, error) {
	if len(answers) == 0 {
		return nil, ErrEmpty
	}
	d := &Dictionary{
		Answers:    answers,
		Guesses:    guesses,
		answersSet: toSet(answers),
		allowedSet: toSet(answers),
	}
	for _, w := range guesses {
		d.allowedSet[w] = struct{}{}
	}
	return d, nil
}

// ReadWords reads one word per line from r.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(strings.ToLower(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

func readEmbedded(name string) ([]string, error) {
	f, err := assets.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(f)
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// RandomAnswer returns a cryptographically random answer.
func (d *Dictionary) RandomAnswer() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.Answers))))
	if err != nil {
		return d.Answers[0]
	}
	return d.Answers[nBig.Int64()]
}

// IsAllowed reports whether w is a valid guess (answers ∪ guesses).
func (d *Dictionary) IsAllowed(w string) bool {
	_, ok := d.allowedSet[strings.ToLower(w)]
	return ok
}

// IsAnswer reports whether w is an answer word.
func (d *Dictionary) IsAnswer(w string) bool {
	_, ok := d.answersSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of distinct loaded words: (answers, allowed).
func (d *Dictionary) Stats() (answersCount int, allowedCount int) {
	return len(d.answersSet), len(d.allowedSet)
}
