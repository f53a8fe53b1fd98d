package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marks(codes string) Response {
	r := make(Response, len(codes))
	for i := 0; i < len(codes); i++ {
		switch codes[i] {
		case 'g':
			r[i] = MarkHit
		case 'y':
			r[i] = MarkPresent
		default:
			r[i] = MarkMiss
		}
	}
	return r
}

func TestScore(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		guess  string
		want   string
	}{
		{"all correct", "ab", "ab", "gg"},
		{"all incorrect", "ab", "de", "bb"},
		{"hit consumes the only copy", "bbbab", "aaaaa", "bbbgb"},
		{"present goes to the leftmost spare copy", "bbaab", "aadaa", "ybbgb"},
		{"swapped letters", "ab", "ba", "yy"},
		{"repeated guess letter, one in answer", "crane", "eerie", "bbybg"},
		{"two presents for two copies", "abba", "bxxb", "ybby"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.answer, tt.guess)
			require.NoError(t, err)
			assert.Equal(t, marks(tt.want).String(), got.String())
		})
	}
}

func TestScoreRejectsBadInput(t *testing.T) {
	_, err := Score("abc", "ab")
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Score("abc", "aB1")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestScoreNeverOverCreditsLetters(t *testing.T) {
	words := []string{"aabbc", "abcab", "ccccc", "abcde", "eeaab", "babab", "cabba"}
	for _, answer := range words {
		for _, guess := range words {
			resp, err := Score(answer, guess)
			require.NoError(t, err)

			var inAnswer, credited [26]int
			for i := range answer {
				inAnswer[answer[i]-'a']++
				assert.Equal(t, answer[i] == guess[i], resp[i] == MarkHit, "%s/%s pos %d", answer, guess, i)
				if resp[i] != MarkMiss {
					credited[guess[i]-'a']++
				}
			}
			for c := range credited {
				assert.LessOrEqual(t, credited[c], inAnswer[c], "%s/%s letter %c", answer, guess, 'a'+c)
			}
		}
	}
}

func TestGameApplyGuess(t *testing.T) {
	g, err := New("Crane", 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "crane", g.Answer)
	assert.Equal(t, 5, g.Cols)
	assert.Len(t, g.ID, 16)

	_, _, err = g.ApplyGuess("cran")
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, _, err = g.ApplyGuess("cr4ne")
	require.ErrorIs(t, err, ErrInvalidInput)

	resp, state, err := g.ApplyGuess("slate")
	require.NoError(t, err)
	assert.Equal(t, "bbgbg", resp.String())
	assert.Equal(t, "playing", state)

	_, state, err = g.ApplyGuess("trace")
	require.NoError(t, err)
	assert.Equal(t, "lost", state)

	_, _, err = g.ApplyGuess("crane")
	require.ErrorIs(t, err, ErrGameFinished)
	assert.Equal(t, []string{"slate", "trace"}, g.Guesses)
	assert.Len(t, g.Responses, 2)
}

func TestGameWinAndAllowedList(t *testing.T) {
	allowed := map[string]bool{"crane": true}
	g, err := New("crane", 0, func(w string) bool { return allowed[w] })
	require.NoError(t, err)

	_, _, err = g.ApplyGuess("slate")
	require.ErrorIs(t, err, ErrNotAllowed)

	resp, state, err := g.ApplyGuess("CRANE")
	require.NoError(t, err)
	assert.True(t, resp.Solved())
	assert.Equal(t, "won", state)
	assert.True(t, g.Won)
}

func TestNewRejectsBadAnswer(t *testing.T) {
	_, err := New("", 6, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = New("ab-c", 6, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}
