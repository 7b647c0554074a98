package util

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	SlugBaseMaxLen   = 80
	SlugSuffixLength = 8
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// SlugBase 小写化，非字母数字字符折叠为 "-"，去掉首尾 "-" 后截断
func SlugBase(title string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	s = strings.Trim(s, "-")
	if len(s) > SlugBaseMaxLen {
		s = strings.TrimRight(s[:SlugBaseMaxLen], "-")
	}
	return s
}

// GenerateSlug 在 base 之后追加 8 位随机后缀保证唯一
func GenerateSlug(title string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:SlugSuffixLength]
	base := SlugBase(title)
	if base == "" {
		return "quiz-" + suffix
	}
	return base + "-" + suffix
}
