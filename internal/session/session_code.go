package session

import (
	"math/rand"
)

const codeLength = 4
const maxRetries = 100

// No I or O so codes read unambiguously next to 1 and 0.
var letters = []rune("ABCDEFGHJKLMNPQRSTUVWXYZ")

// GenerateCode creates a random 4-letter uppercase session code not present in existing.
func GenerateCode(existing map[string]bool) string {
	for range maxRetries {
		code := randomCode()
		if !existing[code] {
			return code
		}
	}
	// 24^4 codes; only reached when nearly all are in use
	return randomCode()
}

func randomCode() string {
	b := make([]rune, codeLength)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
