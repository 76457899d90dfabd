package main

import (
	"context"
	"fmt"
	"os"
)

// Se setean en build con -ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit: %s)", version, commit)

	// Sin subcomando => serve.
	if len(os.Args) == 1 {
		cmd.SetArgs([]string{"serve"})
	}

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
