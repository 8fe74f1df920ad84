package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Sharnika-sree/autoscribe/internal/client/accessibility"
	"github.com/Sharnika-sree/autoscribe/internal/client/models"
	"github.com/Sharnika-sree/autoscribe/internal/client/services"
	"github.com/Sharnika-sree/autoscribe/internal/common"
)

// getSimpleText, getPassword and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getYesNo = GetYesNo

// TeacherLogin shows the teacher login form and submits the entered
// credentials through the local login path. The password byte slice is
// securely wiped before returning.
func (a *App) TeacherLogin(ctx context.Context) error {
	if err := a.flow.SelectRole(ctx, models.RoleTeacher, services.ModeLogin); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.flow.SubmitLogin(ctx, models.RoleTeacher, services.LoginForm{
		Email:    email,
		Password: string(password),
	})
	if errors.Is(err, common.ErrAuthRejected) {
		// Already announced; the form stays up for another attempt.
		return nil
	}
	return err
}

// StudentLogin shows the student login form. The language prompt defaults
// to the persisted preference.
func (a *App) StudentLogin(ctx context.Context) error {
	if err := a.flow.SelectRole(ctx, models.RoleStudent, services.ModeLogin); err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Enter student ID", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	lang, err := a.session.PreferredLanguage(ctx)
	if err != nil {
		lang = "en"
	}
	chosen, err := getSimpleText(a.reader, fmt.Sprintf("Preferred language [%s]", lang), os.Stdout)
	if err != nil {
		return err
	}
	if chosen == "" {
		chosen = lang
	}

	err = a.flow.SubmitLogin(ctx, models.RoleStudent, services.LoginForm{
		StudentID: id,
		Password:  string(password),
		Language:  chosen,
	})
	if errors.Is(err, common.ErrAuthRejected) {
		return nil
	}
	return err
}

// Signup walks through the signup form for the given role and mode. The
// full student form additionally asks for a class, the full teacher form
// for a department. Validation failures leave the form up; the flow has
// already announced the first violation.
func (a *App) Signup(ctx context.Context, role models.Role, mode services.Mode) error {
	if err := a.flow.SelectRole(ctx, role, mode); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	var class, department string
	if mode == services.ModeSignup {
		switch role {
		case models.RoleStudent:
			if class, err = getSimpleText(a.reader, "Enter class", os.Stdout); err != nil {
				return err
			}
		case models.RoleTeacher:
			if department, err = getSimpleText(a.reader, "Enter department", os.Stdout); err != nil {
				return err
			}
		}
	}

	password, err := getPassword(os.Stdout, "Choose a password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	terms, err := getYesNo(a.reader, "Accept the terms and conditions?", os.Stdout)
	if err != nil {
		return err
	}

	err = a.flow.SubmitSignup(ctx, role, mode, services.SignupInput{
		Name:       name,
		Email:      email,
		Password:   string(password),
		Confirm:    string(confirm),
		Terms:      terms,
		Class:      class,
		Department: department,
	})
	if errors.Is(err, common.ErrValidation) {
		return nil
	}
	return err
}

// RemoteLogin verifies credentials against the auth endpoint.
func (a *App) RemoteLogin(ctx context.Context, role models.Role) error {
	if err := a.flow.SelectRole(ctx, role, services.ModeLogin); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.flow.SubmitRemoteLogin(ctx, email, string(password), role)
	if errors.Is(err, common.ErrAuthRejected) {
		return nil
	}
	return err
}

// Voice captures one utterance and dispatches it as a command.
func (a *App) Voice(ctx context.Context) error {
	err := a.flow.StartVoiceCommand(ctx)
	if errors.Is(err, common.ErrUnsupportedCapability) {
		return nil
	}
	return err
}

// MicTest runs the microphone check; the flow announces the outcome.
func (a *App) MicTest(ctx context.Context) error {
	_, err := a.flow.MicrophoneTest(ctx)
	if errors.Is(err, common.ErrUnsupportedCapability) {
		return nil
	}
	return err
}

// Back returns to the login options screen.
func (a *App) Back(ctx context.Context) error {
	a.flow.Cancel(ctx)
	return nil
}

// Help lists the commands and speaks the keyboard shortcuts.
func (a *App) Help(ctx context.Context) error {
	printlnFn("Available commands: (t)eacher, (s)tudent, signup <role>, inline <role>, remote <role>, (v)oice, mic, back, whoami, +, -, contrast, logout, reset, exit")
	a.flow.SpeakShortcutHelp(ctx)
	return nil
}

// FontStep grows or shrinks the font by one step, reporting the result.
func (a *App) FontStep(ctx context.Context, increase bool) error {
	dir := accessibility.Decrease
	if increase {
		dir = accessibility.Increase
	}
	size, changed := a.prefs.AdjustFont(dir)
	if changed {
		printlnFn(fmt.Sprintf("Font size: %dpx", size))
	} else {
		printlnFn(fmt.Sprintf("Font size stays at %dpx", size))
	}
	return nil
}

// ToggleContrast flips the high-contrast preference.
func (a *App) ToggleContrast(ctx context.Context) error {
	if a.prefs.ToggleHighContrast() {
		printlnFn("High contrast on")
	} else {
		printlnFn("High contrast off")
	}
	return nil
}

// Whoami reports the persisted session, remote user first.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.session.CurrentRemoteUser(ctx)
	if errors.Is(err, common.ErrNotFound) {
		user, err = a.session.Load(ctx)
	}
	if errors.Is(err, common.ErrNotFound) {
		printlnFn("Not logged in")
		return nil
	}
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s (%s)", user.Name, user.Role))
	return nil
}

// Logout clears the session and returns to the index page.
func (a *App) Logout(ctx context.Context) error {
	return a.flow.Logout(ctx)
}

// Reset wipes the whole local storage, preferences included.
func (a *App) Reset(ctx context.Context) error {
	n, err := a.session.Reset(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Local storage cleared (%d entries)", n))
	return nil
}
