package cmdutils

import "fmt"

// PrintResponse prints a tool result for one-shot CLI use.
func PrintResponse(text string) {
	if text == "" {
		return
	}

	fmt.Printf("\n%s\n\n", text)
}
