package demo

import (
	"fmt"
	"io"
	"strings"
)

// Pinned stand-in for Java's runtime version property. A fixture transcript
// has to be deterministic, so the original runtime lookup becomes a constant.
const javaVersion = "21"

// WriteGo emits the Go fixture transcript: variables, a slice and a
// function call.
func WriteGo(w io.Writer) error {
	var b strings.Builder

	b.WriteString("Hello from Go!\n")
	b.WriteString("Message: Go is awesome!\n")
	b.WriteString("Number: 42\n")

	// Go's native slice rendering, space separated in brackets.
	fmt.Fprintf(&b, "Numbers: %v\n", fixtureNumbers)

	result := 10 + 20
	fmt.Fprintf(&b, "10 + 20 = %d\n", result)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCPP emits the C++ fixture transcript: a vector transform to squares
// and string length reporting.
func WriteCPP(w io.Writer) error {
	var b strings.Builder

	b.WriteString("⚡ Hello from C++!\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")

	fmt.Fprintf(&b, "Welcome to %s!\n", ProjectName)

	fmt.Fprintf(&b, "Numbers: %s\n", JoinInts(fixtureNumbers))
	fmt.Fprintf(&b, "Squares: %s\n", JoinInts(Squares(fixtureNumbers)))

	message := "C++ execution in AI-IDE works great!"
	fmt.Fprintf(&b, "Message: %s\n", message)
	fmt.Fprintf(&b, "Length: %d\n", len(message))

	b.WriteString("\n✅ C++ execution complete!\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRust emits the Rust fixture transcript: vectors, arithmetic and a
// pattern match on an optional value.
func WriteRust(w io.Writer) error {
	var b strings.Builder

	b.WriteString("🦀 Hello from Rust!\n")
	b.WriteString("Message: Rust is blazingly fast!\n")
	b.WriteString("Number: 42\n")

	fmt.Fprintf(&b, "Numbers: %s\n", FormatList(fixtureNumbers))

	result := 10 + 20
	fmt.Fprintf(&b, "10 + 20 = %d\n", result)

	b.WriteString("Got value: 5\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJava emits the Java fixture transcript: array loops producing the
// numbers and squares lines, then string length and uppercase reporting.
func WriteJava(w io.Writer) error {
	var b strings.Builder

	b.WriteString("☕ Hello from Java!\n")
	b.WriteString(strings.Repeat("=", 30) + "\n")

	fmt.Fprintf(&b, "Java version: %s\n", javaVersion)
	fmt.Fprintf(&b, "Welcome to %s!\n", ProjectName)

	fmt.Fprintf(&b, "Numbers: %s\n", JoinInts(fixtureNumbers))
	fmt.Fprintf(&b, "Squares: %s\n", JoinInts(Squares(fixtureNumbers)))

	message := "Java execution in AI-IDE works perfectly!"
	fmt.Fprintf(&b, "Message length: %d\n", len(message))
	fmt.Fprintf(&b, "Uppercase: %s\n", strings.ToUpper(message))

	b.WriteString("\n✅ Java execution complete!\n")

	_, err := io.WriteString(w, b.String())
	return err
}
