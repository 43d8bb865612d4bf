package utils

import "crypto/rand"

// Ambiguous characters (0/O, 1/I) are left out so codes survive being read
// over the phone.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandomString returns n random characters from the code alphabet, used for
// public ticket codes like "TCK-7GK2QD".
func RandomString(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
