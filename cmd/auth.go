package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"offer_letter/internal/cli"
	"offer_letter/internal/forms"
	"offer_letter/internal/service"
)

var errInvalidInput = errors.New("invalid input")

var (
	authUsername      string
	authPasswordStdin bool
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a local account and sign in",
	RunE:  runSignup,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with a local account",
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the current session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Print the signed-in user",
	RunE:  runWhoami,
}

func init() {
	for _, c := range []*cobra.Command{signupCmd, loginCmd} {
		c.Flags().StringVarP(&authUsername, "username", "u", "", "username (prompted when empty)")
		c.Flags().BoolVar(&authPasswordStdin, "password-stdin", false, "read the password (and confirmation) as lines from stdin")
	}
	rootCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd)
}

// credentialReader collects username and passwords from flags, stdin or the terminal.
type credentialReader struct {
	in    *bufio.Reader
	out   io.Writer
	stdin bool
}

func newCredentialReader(cmd *cobra.Command) *credentialReader {
	return &credentialReader{
		in:    bufio.NewReader(cmd.InOrStdin()),
		out:   cmd.ErrOrStderr(),
		stdin: authPasswordStdin,
	}
}

func (r *credentialReader) username() (string, error) {
	if authUsername != "" {
		return authUsername, nil
	}
	return cli.PromptLine(r.in, "Username", r.out)
}

func (r *credentialReader) password(prompt string) (string, error) {
	if r.stdin {
		line, err := r.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	return cli.PromptPassword(prompt, r.out)
}

func reportInvalid(cmd *cobra.Command, err error, order []string) error {
	ve, ok := forms.AsValidationError(err)
	if !ok {
		return err
	}
	cli.RenderErrors(cmd.ErrOrStderr(), ve.Fields, order)
	return errInvalidInput
}

func runSignup(cmd *cobra.Command, _ []string) error {
	r := newCredentialReader(cmd)
	var in forms.SignupInput
	var err error
	if in.Username, err = r.username(); err != nil {
		return err
	}
	if in.Password, err = r.password("Password"); err != nil {
		return err
	}
	if in.ConfirmPassword, err = r.password("Confirm password"); err != nil {
		return err
	}
	if _, err := forms.ValidateSignup(in); err != nil {
		return reportInvalid(cmd, err, []string{"username", "password", "confirmPassword"})
	}

	app, err := openClient()
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err := app.services.SignUp(cmd.Context(), in.Username, in.Password); err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			return errors.New(service.UserMessage(err))
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Account created. Signed in as %s\n", in.Username)
	return nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	r := newCredentialReader(cmd)
	var in forms.LoginInput
	var err error
	if in.Username, err = r.username(); err != nil {
		return err
	}
	if in.Password, err = r.password("Password"); err != nil {
		return err
	}
	if _, err := forms.ValidateLogin(in); err != nil {
		return reportInvalid(cmd, err, []string{"username", "password"})
	}

	app, err := openClient()
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err := app.services.Login(cmd.Context(), in.Username, in.Password); err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			return errors.New(service.UserMessage(err))
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", in.Username)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	app, err := openClient()
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	if err := app.services.Logout(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	app, err := openClient()
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()

	user, ok, err := app.services.CurrentUser(cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "Not signed in (go to %s)\n", app.services.Resolve(cmd.Context(), service.RouteRoot))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), user)
	return nil
}
