package main

import (
	"context"

	"github.com/trezcool/darasa/storage/database/seed"
)

func (cli *commandLine) migrate(args []string) error {
	return gooseRunFunc(args[0], cli.db, args[1:]...)
}

func (cli *commandLine) seed() error {
	if err := cli.seedFunc(context.Background(), seed.Sample()); err != nil {
		return err
	}
	logger.Info("sample school loaded")
	return nil
}
