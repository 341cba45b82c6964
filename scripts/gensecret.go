// One-off: go run scripts/gensecret.go [bytes]
package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"

	"github.com/gorilla/securecookie"
)

func main() {
	n := 64
	if len(os.Args) > 1 {
		v, err := strconv.Atoi(os.Args[1])
		if err != nil || v < 32 {
			fmt.Fprintln(os.Stderr, "usage: gensecret [bytes>=32]")
			os.Exit(2)
		}
		n = v
	}
	key := securecookie.GenerateRandomKey(n)
	if key == nil {
		panic("failed to read random bytes")
	}
	fmt.Print(base64.RawURLEncoding.EncodeToString(key))
}
