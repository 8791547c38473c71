package domain_test

import (
	"correcthorse/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWord_Len(t *testing.T) {
	require.Equal(t, 0, domain.Word("").Len())
	require.Equal(t, 5, domain.Word("horse").Len())
	require.Equal(t, 6, domain.Word("größer").Len())
}

func TestWord_Capitalize(t *testing.T) {
	cases := map[domain.Word]domain.Word{
		"":        "",
		"horse":   "Horse",
		"Horse":   "Horse",
		"hORSE":   "HORSE",
		"élan":    "Élan",
		"1st":     "1st",
		"x":       "X",
		"mcDuck":  "McDuck",
		"\xffbad": "\xffbad",
	}
	for in, want := range cases {
		require.Equal(t, want, in.Capitalize(), "input %q", in)
	}
}

func TestTotalLen(t *testing.T) {
	require.Equal(t, 0, domain.TotalLen(nil))
	require.Equal(t, 12, domain.TotalLen(domain.Words("correct", "horse")))
}

func TestJoinWords(t *testing.T) {
	words := domain.Words("correct", "horse", "battery", "staple")
	require.Equal(t, domain.Passphrase("correcthorsebatterystaple"), domain.JoinWords(words, ""))
	require.Equal(t, domain.Passphrase("correct-horse-battery-staple"), domain.JoinWords(words, "-"))
	require.Equal(t, domain.Passphrase(""), domain.JoinWords(nil, "-"))
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, domain.Params{}.Validate())
	require.NoError(t, domain.Params{Count: 3, CharsMin: 12, WordsMin: 4}.Validate())
	require.Error(t, domain.Params{Count: -1}.Validate())
	require.Error(t, domain.Params{CharsMin: -1}.Validate())
	require.Error(t, domain.Params{WordsMin: -1}.Validate())
}

func TestParams_Satisfied(t *testing.T) {
	p := domain.Params{WordsMin: 4, CharsMin: 12}
	require.False(t, p.Satisfied(3, 20))
	require.False(t, p.Satisfied(5, 11))
	require.True(t, p.Satisfied(4, 12))
	require.True(t, domain.Params{}.Satisfied(0, 0))
}
