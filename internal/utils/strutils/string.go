package strutils

import (
	"strings"
)

func CommaSeperatedList(s string) []string {
	if s == "" {
		return []string{}
	}
	res := SplitComma(s)
	for i, part := range res {
		res[i] = strings.TrimSpace(part)
	}
	return res
}
