package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() SignupForm {
	return SignupForm{
		Name:     "Jo",
		Email:    "jo@x.com",
		Password: "longenough1",
		Confirm:  "longenough1",
		Terms:    true,
	}
}

func TestCheckSignup_ValidFormPasses(t *testing.T) {
	require.Nil(t, CheckSignup(validForm()))
}

func TestCheckSignup_RequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SignupForm)
		wantField string
	}{
		{"empty name", func(f *SignupForm) { f.Name = "" }, FieldName},
		{"whitespace name", func(f *SignupForm) { f.Name = "   " }, FieldName},
		{"empty email", func(f *SignupForm) { f.Email = "" }, FieldEmail},
		{"empty password", func(f *SignupForm) { f.Password = "" }, FieldPassword},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := validForm()
			tc.mutate(&f)
			v := CheckSignup(f)
			require.NotNil(t, v)
			assert.Equal(t, tc.wantField, v.Field)
			assert.Equal(t, MsgRequired, v.Message)
		})
	}
}

func TestCheckSignup_OrderIsDeterministic(t *testing.T) {
	// Empty name AND weak password: the required-fields violation always
	// wins over the password-length one.
	f := validForm()
	f.Name = ""
	f.Password = "short"
	f.Confirm = "different"
	f.Terms = false

	v := CheckSignup(f)
	require.NotNil(t, v)
	assert.Equal(t, MsgRequired, v.Message)
	assert.Equal(t, FieldName, v.Field)
}

func TestCheckSignup_PasswordLength(t *testing.T) {
	f := validForm()
	f.Password = "seven77"
	f.Confirm = "seven77"

	v := CheckSignup(f)
	require.NotNil(t, v)
	assert.Equal(t, FieldPassword, v.Field)
	assert.Equal(t, MsgPasswordLength, v.Message)

	// Exactly eight characters is acceptable.
	f.Password = "eight888"
	f.Confirm = "eight888"
	require.Nil(t, CheckSignup(f))
}

func TestCheckSignup_ConfirmMustMatch(t *testing.T) {
	f := validForm()
	f.Confirm = "longenough2"

	v := CheckSignup(f)
	require.NotNil(t, v)
	assert.Equal(t, FieldConfirm, v.Field)
	assert.Equal(t, MsgPasswordMatch, v.Message)
}

func TestCheckSignup_TermsRequired(t *testing.T) {
	f := validForm()
	f.Terms = false

	v := CheckSignup(f)
	require.NotNil(t, v)
	assert.Equal(t, FieldTerms, v.Field)
	assert.Equal(t, MsgTerms, v.Message)
}
