package slug

import (
	"crypto/rand"
	"fmt"
	"strings"

	gslug "github.com/gosimple/slug"
)

const suffixLen = 5

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate normalizes text into a URL-safe slug, truncates it to leave
// room for a random 5-character suffix within maxLength, and retries with
// fresh suffixes until exists reports no collision. There is no retry
// bound; with 36^5 suffixes per base the loop terminates in practice.
func Generate(text string, maxLength int, exists func(string) (bool, error)) (string, error) {
	base := gslug.Make(text)
	maxBase := maxLength - suffixLen - 1
	if len(base) > maxBase {
		base = strings.TrimRight(base[:maxBase], "-")
	}
	for {
		candidate := base + "-" + randomSuffix()
		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("slug uniqueness check: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
}

func randomSuffix() string {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failure is unrecoverable
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}
