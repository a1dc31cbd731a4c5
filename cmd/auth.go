package main

import (
	"context"
	"fmt"

	"github.com/pixelthorn/gdx/internal/models"
	"github.com/pixelthorn/gdx/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthRegister registers a new account in the user directory.
//
// Registration does not log the new user in; that mirrors the store contract.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	if err := r.bootstrap(ctx, cmd); err != nil {
		return err
	}

	user := models.User{
		Name:     cmd.String("name"),
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
		Avatar:   cmd.String("avatar"),
	}

	ok, err := r.session.Register(user)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	if !ok {
		r.writePlain("✗ %s is already registered\n", user.Email)
		return nil
	}

	r.writePlain("✓ Registered %s. Log in with 'gdx auth login'.\n", user.Email)
	return nil
}

// AuthLogin authenticates against the user directory and opens a session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	if err := r.bootstrap(ctx, cmd); err != nil {
		return err
	}

	email := cmd.String("email")
	password := cmd.String("password")

	ok, err := r.session.Login(email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if !ok {
		r.writePlain("✗ Invalid email or password\n")
		return nil
	}

	user := r.session.CurrentUser()
	r.writePlain("✓ Logged in as %s\n", user.Name)
	return nil
}

// AuthLogout clears the session. The user directory is untouched.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.bootstrap(ctx, cmd); err != nil {
		return err
	}

	if !r.session.IsAuthenticated() {
		r.writePlain("Not logged in\n")
		return nil
	}

	if err := r.session.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	r.writePlain("✓ Logged out\n")
	return nil
}

// AuthWhoami prints the current session.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	if err := r.bootstrap(ctx, cmd); err != nil {
		return err
	}

	user := r.session.CurrentUser()
	if user == nil {
		return fmt.Errorf("%w", shared.ErrNotAuthenticated)
	}

	return r.writeJSON(user, true)
}
