package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostFormRequiresText(t *testing.T) {
	form := PostForm{}
	require.False(t, form.Valid())
	require.Contains(t, form.Errors, "text")
	require.Equal(t, "This field is required.", form.Errors["text"])
}

func TestPostFormGroupMustBeNumeric(t *testing.T) {
	form := PostForm{Text: "hello", GroupID: "news"}
	require.False(t, form.Valid())
	require.Contains(t, form.Errors, "group_id")

	form = PostForm{Text: "hello", GroupID: "3"}
	require.True(t, form.Valid())

	form = PostForm{Text: "hello"}
	require.True(t, form.Valid(), "group is optional")
}

func TestCommentFormRequiresText(t *testing.T) {
	form := CommentForm{}
	require.False(t, form.Valid())
	require.Contains(t, form.Errors, "text")

	form = CommentForm{Text: "nice post"}
	require.True(t, form.Valid())
}

func TestSignupFormValidation(t *testing.T) {
	form := SignupForm{Username: "al", Email: "not-an-email", Password: "123"}
	require.False(t, form.Valid())
	require.Equal(t, "Must be at least 3 characters.", form.Errors["username"])
	require.Equal(t, "Enter a valid email address.", form.Errors["email"])
	require.Equal(t, "Must be at least 6 characters.", form.Errors["password"])

	form = SignupForm{Username: "ana", Email: "ana@example.com", Password: "secret123"}
	require.True(t, form.Valid())
	require.Empty(t, form.Errors)
}
