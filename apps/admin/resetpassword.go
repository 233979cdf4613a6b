package main

import (
	"context"

	"github.com/trezcool/darasa/core/user"
)

func (cli *commandLine) resetPassword(uname, pwd string) error {
	ctx := context.Background()
	usr, err := cli.usrSvc.GetByUsernameOrEmail(ctx, uname)
	if err != nil {
		return err
	}
	rp := user.ResetPassword{Password: pwd, PasswordConfirm: pwd}
	if err = rp.Validate(cli.validate, usr); err != nil {
		return cli.validationErr(err)
	}
	_, err = cli.usrSvc.ResetPassword(ctx, usr, rp)
	return err
}
