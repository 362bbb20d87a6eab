// Command hashpw reads a password from the terminal without echo and prints
// its bcrypt hash, e.g. for seeding the users table by hand.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/printdesk/internal/server/auth"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var errMismatch = errors.New("passwords do not match")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out, prompt io.Writer) error {
	fs := flag.NewFlagSet("hashpw", flag.ContinueOnError)
	fs.SetOutput(prompt)
	cost := fs.Int("k", auth.DefaultBcryptCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pw, err := ask(prompt, "Enter password: ")
	if err != nil {
		return err
	}
	confirm, err := ask(prompt, "Repeat password: ")
	if err != nil {
		return err
	}
	if !bytes.Equal(pw, confirm) {
		return errMismatch
	}
	if len(pw) == 0 {
		return errors.New("empty password")
	}

	hash, err := auth.NewHasher(*cost).Hash(string(pw))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}

func ask(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}
