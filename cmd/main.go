package main

import (
	"fmt"
	"os"

	"github.com/gnosisguild/zodiac/cmd/zodiac"
)

func main() {
	rootCmd := zodiac.BuildZodiacCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
