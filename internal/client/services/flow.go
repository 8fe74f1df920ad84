package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Sharnika-sree/autoscribe/internal/client/client"
	"github.com/Sharnika-sree/autoscribe/internal/client/models"
	"github.com/Sharnika-sree/autoscribe/internal/client/notify"
	"github.com/Sharnika-sree/autoscribe/internal/client/speech"
	"github.com/Sharnika-sree/autoscribe/internal/client/validation"
	"github.com/Sharnika-sree/autoscribe/internal/common"
	"github.com/Sharnika-sree/autoscribe/internal/logging"
)

// FormState identifies which auth panel is visible. Exactly one is visible
// at a time.
type FormState string

const (
	StateLoginOptions        FormState = "login-options"
	StateTeacherLogin        FormState = "teacher-login"
	StateStudentLogin        FormState = "student-login"
	StateTeacherSignup       FormState = "teacher-signup"
	StateStudentSignup       FormState = "student-signup"
	StateTeacherInlineSignup FormState = "teacher-inline-signup"
	StateStudentInlineSignup FormState = "student-inline-signup"
)

// Mode selects how a role's form is entered from the options screen.
type Mode string

const (
	ModeLogin        Mode = "login"
	ModeSignup       Mode = "signup"
	ModeInlineSignup Mode = "inline-signup"
)

// IndexPage is where logouts and unauthenticated visitors land.
const IndexPage = "index.html"

// Default redirect pacing: local logins and signups pause briefly so the
// confirmation can be perceived, remote logins a little longer.
const (
	DefaultLocalRedirectDelay  = 800 * time.Millisecond
	DefaultRemoteRedirectDelay = 1000 * time.Millisecond
)

// Session is the persistence surface the flow needs. *SessionService
// satisfies it.
type Session interface {
	Save(ctx context.Context, user models.UserRecord) error
	SaveRemote(ctx context.Context, token string, user models.UserRecord) error
	Clear(ctx context.Context) error
}

// Notifier renders transient toasts. *notify.Toaster satisfies it.
type Notifier interface {
	Notify(message string, severity notify.Severity)
}

// Navigator performs the page redirects the flow decides on.
type Navigator interface {
	Navigate(page string)
}

// LoginForm carries the raw login field values: email and password for the
// teacher form, student ID, password and language for the student one.
type LoginForm struct {
	Email     string
	StudentID string
	Password  string
	Language  string
}

// SignupInput carries the raw signup field values plus the role-specific
// extras (class for students, department for teachers).
type SignupInput struct {
	Name       string
	Email      string
	Password   string
	Confirm    string
	Terms      bool
	Class      string
	Department string
}

// FormDescriptor names a form's fields in focus order. The first entry
// receives focus when the form is shown.
type FormDescriptor struct {
	State  FormState
	Fields []string
}

// FlowDeps are the collaborators of a FlowService. Session, Notifier,
// Navigator and Logger are required; Remote and Recognizer are optional
// capabilities and Speaker defaults to a no-op.
type FlowDeps struct {
	Session    Session
	Remote     client.Client
	Notifier   Notifier
	Speaker    speech.Synthesizer
	Recognizer speech.Recognizer
	Navigator  Navigator
	Logger     logging.Logger

	LocalRedirectDelay  time.Duration
	RemoteRedirectDelay time.Duration
}

// scheduleRedirect is replaced in tests to run redirects synchronously.
var scheduleRedirect = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }

// FlowService is the authentication flow controller: it owns the FormState
// machine and turns form submissions, voice commands and logouts into
// session writes, announcements and redirects.
//
// It is not safe for concurrent use; all transitions are expected to run on
// the single UI event loop.
type FlowService struct {
	deps  FlowDeps
	forms map[FormState]FormDescriptor

	state       FormState
	focus       string
	fieldErrors map[string]string
	submitBusy  bool
	voiceBusy   bool
}

// NewFlowService validates deps, fills in defaults and returns a flow
// sitting on the login options screen.
func NewFlowService(deps FlowDeps) (*FlowService, error) {
	if deps.Session == nil {
		return nil, errors.New("flow: session is required")
	}
	if deps.Notifier == nil {
		return nil, errors.New("flow: notifier is required")
	}
	if deps.Navigator == nil {
		return nil, errors.New("flow: navigator is required")
	}
	if deps.Logger == nil {
		return nil, errors.New("flow: logger is required")
	}
	if deps.Speaker == nil {
		deps.Speaker = speech.Noop{}
	}
	if deps.LocalRedirectDelay <= 0 {
		deps.LocalRedirectDelay = DefaultLocalRedirectDelay
	}
	if deps.RemoteRedirectDelay <= 0 {
		deps.RemoteRedirectDelay = DefaultRemoteRedirectDelay
	}

	forms := defaultFormDescriptors()
	for state, d := range forms {
		if state != StateLoginOptions && len(d.Fields) == 0 {
			return nil, fmt.Errorf("flow: form %s has no focusable fields", state)
		}
	}

	return &FlowService{deps: deps, forms: forms, state: StateLoginOptions}, nil
}

func defaultFormDescriptors() map[FormState]FormDescriptor {
	d := map[FormState]FormDescriptor{
		StateLoginOptions:        {State: StateLoginOptions},
		StateTeacherLogin:        {State: StateTeacherLogin, Fields: []string{"email", "password"}},
		StateStudentLogin:        {State: StateStudentLogin, Fields: []string{"student-id", "password", "language"}},
		StateTeacherSignup:       {State: StateTeacherSignup, Fields: []string{"name", "email", "password", "confirm", "terms"}},
		StateStudentSignup:       {State: StateStudentSignup, Fields: []string{"name", "email", "class", "password", "confirm", "terms"}},
		StateTeacherInlineSignup: {State: StateTeacherInlineSignup, Fields: []string{"name", "email", "password", "confirm", "terms"}},
		StateStudentInlineSignup: {State: StateStudentInlineSignup, Fields: []string{"name", "email", "password", "confirm", "terms"}},
	}
	return d
}

// State returns the currently visible panel.
func (f *FlowService) State() FormState { return f.state }

// FocusedField returns the field that received focus on the last
// transition, or "" on the options screen.
func (f *FlowService) FocusedField() string { return f.focus }

// FieldError returns the inline error recorded for a signup field, or "".
func (f *FlowService) FieldError(field string) string { return f.fieldErrors[field] }

// SubmitBusy reports whether a remote login is in flight; the submit
// control stays disabled while it is.
func (f *FlowService) SubmitBusy() bool { return f.submitBusy }

// Descriptor returns the field layout of a form state.
func (f *FlowService) Descriptor(state FormState) (FormDescriptor, bool) {
	d, ok := f.forms[state]
	return d, ok
}

func (f *FlowService) speak(ctx context.Context, text string) {
	if err := f.deps.Speaker.Speak(text, speech.DefaultRate, speech.DefaultPitch); err != nil {
		f.deps.Logger.Warn(ctx, "speech synthesis failed", "error", err)
	}
}

// SelectRole shows the form for the chosen role and mode, hiding everything
// else, and announces what the user should do next.
func (f *FlowService) SelectRole(ctx context.Context, role models.Role, mode Mode) error {
	if !role.Valid() {
		return fmt.Errorf("unknown role: %q", role)
	}

	var target FormState
	switch mode {
	case ModeLogin:
		target = StateTeacherLogin
		if role == models.RoleStudent {
			target = StateStudentLogin
		}
	case ModeSignup:
		target = StateTeacherSignup
		if role == models.RoleStudent {
			target = StateStudentSignup
		}
	case ModeInlineSignup:
		target = StateTeacherInlineSignup
		if role == models.RoleStudent {
			target = StateStudentInlineSignup
		}
	default:
		return fmt.Errorf("unknown mode: %q", mode)
	}

	f.setState(ctx, target)

	switch mode {
	case ModeLogin:
		f.speak(ctx, fmt.Sprintf("Please enter your %s credentials", role))
	case ModeSignup:
		f.speak(ctx, fmt.Sprintf("Create your %s account by filling the sign up form", role))
	case ModeInlineSignup:
		f.speak(ctx, fmt.Sprintf("Create your %s account", role))
	}
	return nil
}

func (f *FlowService) setState(ctx context.Context, target FormState) {
	f.state = target
	f.focus = ""
	if d, ok := f.forms[target]; ok && len(d.Fields) > 0 {
		f.focus = d.Fields[0]
	}
	f.deps.Logger.Info(ctx, "form shown", "state", string(target))
}

// Cancel returns to the login options screen. It is valid in every state,
// including the options screen itself.
func (f *FlowService) Cancel(ctx context.Context) {
	f.fieldErrors = nil
	f.setState(ctx, StateLoginOptions)
	f.speak(ctx, "Returned to login options")
}

var nonWord = regexp.MustCompile(`[^0-9A-Za-z_]+`)

// teacherNameFromEmail guesses a display name from the email's local part:
// runs of non-word characters become spaces and the first letter is
// capitalized. Degenerate addresses fall back to "Teacher".
func teacherNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	guess := strings.TrimSpace(nonWord.ReplaceAllString(local, " "))
	if guess == "" {
		return "Teacher"
	}
	return strings.ToUpper(guess[:1]) + guess[1:]
}

func roleTitle(r models.Role) string {
	if r == models.RoleTeacher {
		return "Teacher"
	}
	return "Student"
}

// SubmitLogin handles the local login path: presence-only credential
// checks, a synthesized user record, a dual-key session write and a
// delayed redirect to the role's dashboard. On empty fields it announces
// the problem, stays on the form and returns common.ErrAuthRejected.
func (f *FlowService) SubmitLogin(ctx context.Context, role models.Role, form LoginForm) error {
	var user models.UserRecord
	switch role {
	case models.RoleTeacher:
		if form.Email == "" || form.Password == "" {
			f.rejectLogin(ctx, "Please enter email and password.")
			return common.ErrAuthRejected
		}
		user = models.UserRecord{
			ID:    models.LocalID(models.RoleTeacher, form.Email),
			Role:  models.RoleTeacher,
			Email: form.Email,
			Name:  teacherNameFromEmail(form.Email),
		}
	case models.RoleStudent:
		if form.StudentID == "" || form.Password == "" {
			f.rejectLogin(ctx, "Please enter student ID and password.")
			return common.ErrAuthRejected
		}
		user = models.UserRecord{
			ID:       form.StudentID,
			Role:     models.RoleStudent,
			Name:     "Student " + form.StudentID,
			Language: form.Language,
		}
	default:
		return fmt.Errorf("unknown role: %q", role)
	}

	if err := f.deps.Session.Save(ctx, user); err != nil {
		f.deps.Notifier.Notify("Could not save your session. Please try again.", notify.SeverityError)
		return fmt.Errorf("persist session: %w", err)
	}

	f.deps.Logger.Info(ctx, "auth event", "event", "local_login", "role", string(role), "id", user.ID)
	f.speak(ctx, fmt.Sprintf("Login successful. Redirecting to %s dashboard.", role))
	f.redirectAfter(f.deps.LocalRedirectDelay, role.DashboardPage())
	return nil
}

func (f *FlowService) rejectLogin(ctx context.Context, msg string) {
	f.speak(ctx, msg)
	f.deps.Notifier.Notify(msg, notify.SeverityError)
	f.deps.Logger.Warn(ctx, "auth event", "event", "login_rejected", "reason", "empty fields")
}

// SubmitRemoteLogin verifies credentials against the auth endpoint. While a
// request is in flight further submissions are ignored. Rejections surface
// the server's message when it sent one and re-enable the control; success
// persists token and user, then redirects.
func (f *FlowService) SubmitRemoteLogin(ctx context.Context, email, password string, role models.Role) error {
	if f.deps.Remote == nil {
		return fmt.Errorf("%w: no auth endpoint configured", common.ErrUnsupportedCapability)
	}
	if f.submitBusy {
		return nil
	}
	f.submitBusy = true

	res, err := f.deps.Remote.Login(ctx, email, password, role)
	if err != nil {
		f.submitBusy = false
		msg := "Login failed"
		var authErr *client.AuthError
		if errors.As(err, &authErr) && authErr.Message != "" {
			msg = authErr.Message
		}
		f.deps.Notifier.Notify(msg, notify.SeverityError)
		f.deps.Logger.Warn(ctx, "auth event", "event", "remote_login_failed", "role", string(role), "error", err)
		return err
	}

	if err := f.deps.Session.SaveRemote(ctx, res.Token, res.User); err != nil {
		f.submitBusy = false
		f.deps.Notifier.Notify("Login failed", notify.SeverityError)
		return fmt.Errorf("persist session: %w", err)
	}

	f.deps.Notifier.Notify("Login successful!", notify.SeveritySuccess)
	f.deps.Logger.Info(ctx, "auth event", "event", "remote_login", "role", string(res.User.Role), "id", res.User.ID)
	// The control stays disabled: this path always navigates away.
	f.redirectAfter(f.deps.RemoteRedirectDelay, res.User.Role.DashboardPage())
	return nil
}

// SubmitSignup validates the signup form and, when it passes, creates the
// local account, announces success and schedules the dashboard redirect.
// The first violation is recorded as an inline field error and shown as a
// toast; storage stays untouched.
func (f *FlowService) SubmitSignup(ctx context.Context, role models.Role, mode Mode, in SignupInput) error {
	if !role.Valid() {
		return fmt.Errorf("unknown role: %q", role)
	}
	f.fieldErrors = nil

	v := validation.CheckSignup(validation.SignupForm{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
		Confirm:  in.Confirm,
		Terms:    in.Terms,
	})
	if v != nil {
		f.fieldErrors = map[string]string{v.Field: v.Message}
		f.deps.Notifier.Notify(v.Message, notify.SeverityError)
		f.deps.Logger.Warn(ctx, "auth event", "event", "signup_rejected", "field", v.Field)
		return fmt.Errorf("%w: %s", common.ErrValidation, v.Message)
	}

	email := strings.TrimSpace(in.Email)
	user := models.UserRecord{
		ID:    models.LocalID(role, email),
		Role:  role,
		Email: email,
		Name:  strings.TrimSpace(in.Name),
	}
	switch role {
	case models.RoleTeacher:
		user.Department = strings.TrimSpace(in.Department)
	case models.RoleStudent:
		user.Class = strings.TrimSpace(in.Class)
	}

	if err := f.deps.Session.Save(ctx, user); err != nil {
		f.deps.Notifier.Notify("Could not save your account. Please try again.", notify.SeverityError)
		return fmt.Errorf("persist session: %w", err)
	}

	title := roleTitle(role)
	f.speak(ctx, title+" account created. Redirecting to dashboard.")
	f.deps.Notifier.Notify(title+" account created!", notify.SeveritySuccess)
	f.deps.Logger.Info(ctx, "auth event", "event", "signup", "role", string(role), "mode", string(mode), "id", user.ID)
	f.redirectAfter(f.deps.LocalRedirectDelay, role.DashboardPage())
	return nil
}

// Logout clears the session and navigates to the index page.
func (f *FlowService) Logout(ctx context.Context) error {
	if err := f.deps.Session.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	f.deps.Logger.Info(ctx, "auth event", "event", "logout")
	f.deps.Navigator.Navigate(IndexPage)
	return nil
}

// StartVoiceCommand captures one utterance and dispatches it. Without a
// recognizer the capability is announced as unavailable. A capture already
// in flight makes further starts no-ops.
func (f *FlowService) StartVoiceCommand(ctx context.Context) error {
	if f.deps.Recognizer == nil {
		f.speak(ctx, "Voice recognition is not supported")
		return common.ErrUnsupportedCapability
	}
	if f.voiceBusy {
		return nil
	}
	f.voiceBusy = true
	defer func() { f.voiceBusy = false }()

	f.speak(ctx, "Listening for voice command...")
	phrase, err := f.deps.Recognizer.Recognize(ctx)
	if err != nil {
		f.speak(ctx, "Sorry, I could not understand that. Please try again.")
		f.deps.Logger.Warn(ctx, "voice recognition failed", "error", err)
		return err
	}
	return f.HandleVoiceCommand(ctx, phrase)
}

// HandleVoiceCommand classifies an utterance and performs the matching
// action. Unknown phrases only produce an announcement.
func (f *FlowService) HandleVoiceCommand(ctx context.Context, utterance string) error {
	f.deps.Logger.Debug(ctx, "voice command", "utterance", utterance)
	switch speech.ClassifyCommand(utterance) {
	case speech.CommandTeacherLogin:
		return f.SelectRole(ctx, models.RoleTeacher, ModeLogin)
	case speech.CommandStudentLogin:
		return f.SelectRole(ctx, models.RoleStudent, ModeLogin)
	case speech.CommandBack:
		f.Cancel(ctx)
	case speech.CommandHelp:
		f.speak(ctx, speech.HelpText)
	default:
		f.speak(ctx, speech.NotRecognizedText)
	}
	return nil
}

// MicrophoneTest asks the user to say "Hello" and reports whether the
// recognizer heard a greeting.
func (f *FlowService) MicrophoneTest(ctx context.Context) (bool, error) {
	if f.deps.Recognizer == nil {
		f.speak(ctx, "Voice recognition is not supported")
		return false, common.ErrUnsupportedCapability
	}

	f.speak(ctx, `Please say "Hello" to test your microphone`)
	phrase, err := f.deps.Recognizer.Recognize(ctx)
	if err != nil {
		f.speak(ctx, `Please try saying "Hello" again`)
		return false, err
	}

	heard := strings.ToLower(phrase)
	if strings.Contains(heard, "hello") || strings.Contains(heard, "hi") {
		f.speak(ctx, "Microphone test successful! Your voice is clear.")
		return true, nil
	}
	f.speak(ctx, `Please try saying "Hello" again`)
	return false, nil
}

// AnnouncePageLoad speaks the welcome prompt. Callers decide the timing;
// the page traditionally waits a beat after load.
func (f *FlowService) AnnouncePageLoad(ctx context.Context) {
	f.speak(ctx, "Welcome to Autoscribe. Please select your login option: Teacher or Student.")
}

// SpeakShortcutHelp announces the keyboard shortcuts.
func (f *FlowService) SpeakShortcutHelp(ctx context.Context) {
	f.speak(ctx, "Keyboard shortcuts: Alt+T for teacher login, Alt+S for student login, Alt+V for voice commands, Alt+H for help")
}

func (f *FlowService) redirectAfter(delay time.Duration, page string) {
	nav := f.deps.Navigator
	scheduleRedirect(delay, func() { nav.Navigate(page) })
}
