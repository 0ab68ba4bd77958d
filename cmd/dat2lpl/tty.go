package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func writerIsTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func stdoutIsTerminal(cmd *cobra.Command) bool {
	return writerIsTerminal(cmd.OutOrStdout())
}

func stderrIsTerminal(cmd *cobra.Command) bool {
	return writerIsTerminal(cmd.ErrOrStderr())
}
