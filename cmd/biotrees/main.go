// Command biotrees enumerates tree shapes and reports their balance
// statistics.
//
// Usage:
//
//	biotrees enumerate --from 1 --to 8 --binary
//	biotrees count --to 20
//	biotrees stats '((a,b),(c,d));'
//	biotrees sample -n 12 --count 5 --seed 7
//	biotrees plot -n 12 --stat sackin --out sackin.png
//
// Every flag may also be set in $HOME/.biotrees.yaml or through a
// BIOTREES_ environment variable, such as BIOTREES_WORKERS=4.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "biotrees:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
