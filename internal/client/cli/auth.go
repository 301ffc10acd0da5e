package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.api.Register(ctx, name, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Registered. You can now log in.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.api.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintln(a.out, "Login failed:", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Logged in as", a.api.UserName())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
