package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bizadmin/internal/client/services"
	"github.com/dmitrijs2005/bizadmin/internal/client/session"
)

var errUsageLogin = errors.New("usage: login [staff|client]")

// Login prompts for email and password and signs in with the role given as
// the optional argument (staff when omitted). The password is wiped by the
// auth service.
func (a *App) Login(ctx context.Context, args []string) error {
	role := session.RoleStaff
	if len(args) > 1 {
		return errUsageLogin
	}
	if len(args) == 1 {
		switch args[0] {
		case string(session.RoleStaff):
		case string(session.RoleClient):
			role = session.RoleClient
		default:
			return errUsageLogin
		}
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	id, err := a.authService.Login(ctx, role, email, password)
	if err != nil {
		return err
	}

	a.log.Info(ctx, "login successful", "role", id.Role.RoleOrDefault())
	printlnFn(fmt.Sprintf("Logged in as %s (%s)", id.Email, id.Role.RoleOrDefault()))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.seenQuotes, a.seenTasks = nil, nil
	printlnFn("Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	id, err := a.authService.Whoami(ctx)
	if errors.Is(err, services.ErrNotLoggedIn) {
		printlnFn("Not logged in")
		return nil
	}
	if err != nil {
		return err
	}

	printlnFn("Email:       ", id.Email)
	if id.Name != "" {
		printlnFn("Name:        ", id.Name)
	}
	if id.Organisation != "" {
		printlnFn("Organisation:", id.Organisation)
	}
	role := string(id.Role.RoleOrDefault())
	if !id.Role.Resolved {
		role += " (default)"
	} else {
		role += " (from " + string(id.Role.Source) + ")"
	}
	printlnFn("Role:        ", role)
	printlnFn("Stored under:", id.StorageKey)
	return nil
}
