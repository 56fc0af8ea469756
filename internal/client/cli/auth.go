package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/api"
	"github.com/suleiman-ali/PC-MAINTANANCE-MANAGEMENT-SYSTEM/internal/client/guard"
)

// loginView prompts for credentials and attempts to authenticate. A
// rejection is a form error; the prior session state is untouched. On
// success navigation continues to the role-appropriate landing page.
func (a *App) loginView(ctx context.Context) error {
	fmt.Fprintln(a.out, titleStyle.Render("Log in"))

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}

	id, err := a.store.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, errorStyle.Render("Invalid username or password."))
			return nil
		}
		a.fail(err)
		return nil
	}

	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Welcome back, %s!", id.Username)))
	return a.Navigate(ctx, guard.RouteRoot)
}

// registerView prompts for the registration form. The password-confirm
// check is client-side and blocks the request entirely on mismatch.
func (a *App) registerView(ctx context.Context) error {
	fmt.Fprintln(a.out, titleStyle.Render("Create an account"))

	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	if password != confirm {
		fmt.Fprintln(a.out, errorStyle.Render("Passwords do not match."))
		return nil
	}
	phone, err := getSimpleText(a.reader, "Phone (optional)", a.out)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, "Address (optional)", a.out)
	if err != nil {
		return err
	}

	id, err := a.store.Register(ctx, &api.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		PasswordConfirm: confirm,
		Phone:           phone,
		Address:         address,
	})
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, errorStyle.Render("Registration was rejected."))
			return nil
		}
		a.fail(err)
		return nil
	}

	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Account created. Welcome, %s!", id.Username)))
	return a.Navigate(ctx, guard.RouteRoot)
}
