package speech

import (
	"strconv"
	"strings"
)

var underTwenty = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = [...]string{"", "ten", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}

// scales are ordered from the largest to the smallest
var scales = []struct {
	value uint64
	name  string
}{
	{value: 1_000_000_000, name: "billion"},
	{value: 1_000_000, name: "million"},
	{value: 1_000, name: "thousand"},
	{value: 100, name: "hundred"},
}

// IntToWords spells an integer in English words, for example 42 becomes "forty two"
// and -1234 becomes "minus one thousand two hundred thirty four".
func IntToWords(n int64) string {
	if n < 0 {
		// negate in unsigned space, so math.MinInt64 does not overflow
		return "minus " + uintToWords(uint64(^n)+1)
	}

	return uintToWords(uint64(n))
}

func uintToWords(n uint64) string {
	if n < 20 {
		return underTwenty[n]
	}

	if n < 100 {
		if n%10 == 0 {
			return tens[n/10]
		}

		return tens[n/10] + " " + underTwenty[n%10]
	}

	for _, scale := range scales {
		if n < scale.value {
			continue
		}

		head, tail := n/scale.value, n%scale.value
		if tail == 0 {
			return uintToWords(head) + " " + scale.name
		}

		return uintToWords(head) + " " + scale.name + " " + uintToWords(tail)
	}

	return strconv.FormatUint(n, 10)
}

// DigitsToWords replaces every run of digits in text with its number phrase.
//
// A run touching a letter is separated from it by a space, so "5x" becomes "five x"
// and "x2" becomes "x two". Whitespace in the result is collapsed.
func DigitsToWords(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		if !isDigit(text[i]) {
			b.WriteByte(text[i])
			i++
			continue
		}

		j := i
		for j < len(text) && isDigit(text[j]) {
			j++
		}

		if i > 0 && isLetter(text[i-1]) {
			b.WriteByte(' ')
		}

		b.WriteString(runToWords(text[i:j]))

		if j < len(text) && isLetter(text[j]) {
			b.WriteByte(' ')
		}

		i = j
	}

	return collapse(b.String())
}

// runToWords speaks a run of ASCII digits as one number, or digit by digit when
// the run does not fit into int64.
func runToWords(run string) string {
	if n, err := strconv.ParseInt(run, 10, 64); err == nil {
		return IntToWords(n)
	}

	words := make([]string, 0, len(run))
	for i := 0; i < len(run); i++ {
		words = append(words, underTwenty[run[i]-'0'])
	}

	return " " + strings.Join(words, " ") + " "
}
