package strutils

import (
	"strings"
)

// like strings.Split but faster
func SplitRune(s string, sep rune) []string {
	if sep == 0 {
		return strings.Split(s, "")
	}
	n := strings.Count(s, string(sep)) + 1
	if n > len(s)+1 {
		n = len(s) + 1
	}
	a := make([]string, n)
	n--
	i := 0
	for i < n {
		m := strings.IndexRune(s, sep)
		if m < 0 {
			break
		}
		a[i] = s[:m]
		s = s[m+1:]
		i++
	}
	a[i] = s
	return a[:i+1]
}

func SplitComma(s string) []string {
	return SplitRune(s, ',')
}

// like strings.Join but faster
func JoinRune(elems []string, sep rune) string {
	switch len(elems) {
	case 0:
		return ""
	case 1:
		return elems[0]
	}
	if sep == 0 {
		return strings.Join(elems, "")
	}

	var n int
	for _, elem := range elems {
		n += len(elem)
	}
	n += len(elems) - 1

	var b strings.Builder
	b.Grow(n)
	b.WriteString(elems[0])
	for _, s := range elems[1:] {
		b.WriteRune(sep)
		b.WriteString(s)
	}
	return b.String()
}

func JoinLines(elems []string) string {
	return JoinRune(elems, '\n')
}
