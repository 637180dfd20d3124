package demo

import (
	"fmt"
	"io"
	"strings"
)

// WritePython emits the canonical Python fixture transcript: greeting,
// separator, arithmetic, welcome, squares, the JSON metadata payload and a
// completion line.
func WritePython(w io.Writer) error {
	var b strings.Builder

	b.WriteString("🐍 Hello from Python!\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")

	result := 10 + 5*2
	fmt.Fprintf(&b, "Math: 10 + 5 * 2 = %d\n", result)

	fmt.Fprintf(&b, "Welcome to %s!\n", ProjectName)

	fmt.Fprintf(&b, "Squares: %s\n", FormatList(Squares(fixtureNumbers)))

	payload, err := DefaultMetadata().JSON()
	if err != nil {
		return fmt.Errorf("serialize metadata: %w", err)
	}
	fmt.Fprintf(&b, "JSON: %s\n", payload)

	b.WriteString("\n✅ Python execution complete!\n")

	_, err = io.WriteString(w, b.String())
	return err
}
