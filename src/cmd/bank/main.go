package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/api-sage/account-policies/src/internal/cli"
	"github.com/api-sage/account-policies/src/internal/config"
	"github.com/api-sage/account-policies/src/internal/logger"
	"github.com/api-sage/account-policies/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Configure(cfg.Level(), os.Stderr)

	root := cli.NewRoot(services.NewAccountService())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
