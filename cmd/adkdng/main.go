package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kurenai-dev/go-adkdng/internal/archtool/app"
	"github.com/kurenai-dev/go-adkdng/internal/archtool/config"
)

func main() {
	cfg := config.Parse()

	if err := app.New(cfg).Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
