//go:build ignore

package main

import (
	"fmt"

	"github.com/zhubert/replywriter/internal/clipboard"
)

func main() {
	fmt.Println("Testing clipboard round trip...")
	const sample = "replywriter clipboard check"
	if err := clipboard.WriteText(sample); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	text, err := clipboard.ReadText()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if text != sample {
		fmt.Printf("Mismatch: got %q\n", text)
		return
	}
	fmt.Printf("OK: %d bytes\n", len(text))
}
