package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-presentation [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "mdBook preprocessor splitting chapters into article and slide content.")
	fmt.Fprintln(w, "Without a command, reads [context, book] JSON on stdin and writes the")
	fmt.Fprintln(w, "rewritten book on stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  supports <renderer>   Exit 0 if the renderer is supported, 1 otherwise")
	fmt.Fprintln(w, "  config                Print the effective configuration as YAML")
	fmt.Fprintln(w, "  version               Show version information")
	fmt.Fprintln(w, "  help                  Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --strict              Reject unbalanced or nested markers")
	fmt.Fprintln(w, "      --highlight <style>   Chroma style for code in block regions")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/ and scripts/ overrides")
	fmt.Fprintln(w, "      --style <name>        Stylesheet name (default: presentation)")
	fmt.Fprintln(w, "      --script <name>       Script name (default: presentation)")
	fmt.Fprintln(w, "      --no-decoration       Do not inject the stylesheet and script")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markers:")
	fmt.Fprintln(w, "  $web-only$ ... $web-only-end$         Shown in the article view only")
	fmt.Fprintln(w, "  $slides-only$ ... $slides-only-end$   Shown in presentation mode only")
	fmt.Fprintln(w, "  $notes$ ... $notes-end$               Speaker notes, hidden from both")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  "+logEnvVar+"   Log level: debug, info, warn, error")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "book.toml:")
	fmt.Fprintln(w, "  [preprocessor.presentation]")
	fmt.Fprintln(w, "  strict = true")
	fmt.Fprintln(w, "  asset-path = \"theme/presentation\"")
}
