package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/fwojciec/typgrab"
)

// Compile invokes the external typst compiler on the generated document.
func Compile(ctx context.Context, path string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, "typst", "compile", path)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return typgrab.Errorf(typgrab.EUNAVAILABLE, "'typst' command not found, install Typst to compile")
		}
		return fmt.Errorf("typst compile %s: %w", path, err)
	}

	fmt.Fprintf(stdout, "Compiled %s to PDF.\n", path)
	return nil
}
