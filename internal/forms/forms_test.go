package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterForm(t *testing.T) {
	valid := RegisterForm{
		Username:  "alice",
		Password:  "pw1",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Anderson",
	}

	tests := []struct {
		name       string
		mutate     func(*RegisterForm)
		wantFields []string
	}{
		{"valid", func(f *RegisterForm) {}, nil},
		{"missing username", func(f *RegisterForm) { f.Username = "" }, []string{"username"}},
		{"username too long", func(f *RegisterForm) { f.Username = strings.Repeat("a", 21) }, []string{"username"}},
		{"missing password", func(f *RegisterForm) { f.Password = "" }, []string{"password"}},
		{"bad email", func(f *RegisterForm) { f.Email = "not-an-email" }, []string{"email"}},
		{"email too long", func(f *RegisterForm) { f.Email = strings.Repeat("a", 45) + "@example.com" }, []string{"email"}},
		{"first name too long", func(f *RegisterForm) { f.FirstName = strings.Repeat("a", 31) }, []string{"first_name"}},
		{"last name too long", func(f *RegisterForm) { f.LastName = strings.Repeat("a", 31) }, []string{"last_name"}},
		{
			"multiple fields",
			func(f *RegisterForm) { f.Username = ""; f.Email = "" },
			[]string{"username", "email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			fieldErrors := Validate(&form)
			if len(tt.wantFields) == 0 {
				assert.False(t, fieldErrors.Any())
				return
			}
			assert.Len(t, fieldErrors, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.NotEmpty(t, fieldErrors[field], "expected error on %q", field)
			}
		})
	}
}

func TestValidateFeedbackForm(t *testing.T) {
	tests := []struct {
		name       string
		form       FeedbackForm
		wantFields []string
	}{
		{"valid", FeedbackForm{Title: "T", Content: "C"}, nil},
		{"missing title", FeedbackForm{Content: "C"}, []string{"title"}},
		{"title too long", FeedbackForm{Title: strings.Repeat("t", 101), Content: "C"}, []string{"title"}},
		{"missing content", FeedbackForm{Title: "T"}, []string{"content"}},
		// Content length is unbounded.
		{"long content ok", FeedbackForm{Title: "T", Content: strings.Repeat("c", 10000)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErrors := Validate(&tt.form)
			if len(tt.wantFields) == 0 {
				assert.False(t, fieldErrors.Any())
				return
			}
			for _, field := range tt.wantFields {
				assert.NotEmpty(t, fieldErrors[field], "expected error on %q", field)
			}
		})
	}
}

func TestFieldErrorsAdd(t *testing.T) {
	fe := FieldErrors{}
	assert.False(t, fe.Any())
	fe.Add("username", "taken")
	fe.Add("username", "too long")
	assert.True(t, fe.Any())
	assert.Equal(t, []string{"taken", "too long"}, fe["username"])
}
