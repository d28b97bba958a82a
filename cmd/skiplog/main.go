// Command skiplog creates and edits skip list files kept on the
// local filesystem or in blob storage.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
)

func main() {
	err := newRootCmd().ExecuteContext(context.Background())
	logger.OnExit()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
