package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	errLengthNegative = errors.New("length must be non-negative")
	errAlphabetEmpty  = errors.New("alphabet must not be empty")
)

// RandomString draws length characters from alphabet using crypto/rand.
// Sampling via rand.Int keeps the distribution unbiased for alphabets whose
// size does not divide 256. Used for matching codes and photo file tokens.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errLengthNegative
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errAlphabetEmpty
	}

	max := big.NewInt(int64(len(alphabet)))
	result := make([]byte, length)
	for index := range result {
		drawn, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[index] = alphabet[drawn.Int64()]
	}

	return string(result), nil
}
