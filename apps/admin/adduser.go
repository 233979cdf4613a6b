package main

import (
	"context"

	"github.com/trezcool/darasa/core/user"
)

// addUser creates an active user; admins get every role.
func (cli *commandLine) addUser(name, uname, email, pwd string, isAdmin bool) error {
	nu := user.NewUser{
		Name:            name,
		Username:        uname,
		Email:           email,
		Password:        pwd,
		PasswordConfirm: pwd,
	}
	if isAdmin {
		nu.Roles = user.AllRoles
	}
	if err := nu.Validate(cli.validate); err != nil {
		return cli.validationErr(err)
	}

	usr, err := cli.usrSvc.Create(context.Background(), nu)
	if err != nil {
		return err
	}
	logger.Info("user created: " + usr.ID)
	return nil
}
