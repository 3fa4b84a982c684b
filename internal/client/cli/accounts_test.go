package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/client/client"
	"github.com/dmitrijs2005/gophaccounts/internal/client/config"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	signUpIn  models.CreateUser
	signUpErr error

	signInIn   models.SignInUser
	signInResp *models.User
	signInErr  error

	findWs   int64
	findArg  string
	findResp *models.User
	findErr  error

	deletedID    int64
	deletedEmail string
	deletedWs    int64
	deleteResp   bool
	pingErr      error
	closed       bool
}

func (f *fakeClient) Close() error { f.closed = true; return nil }
func (f *fakeClient) SignUp(_ context.Context, in models.CreateUser) (*models.User, error) {
	f.signUpIn = in
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return &models.User{ID: 1, WorkspaceID: in.WorkspaceID, FullName: in.FullName, Email: in.Email, CreatedAt: time.Now()}, nil
}
func (f *fakeClient) SignIn(_ context.Context, in models.SignInUser) (*models.User, error) {
	f.signInIn = in
	return f.signInResp, f.signInErr
}
func (f *fakeClient) FindUser(_ context.Context, ws int64, email string) (*models.User, error) {
	f.findWs, f.findArg = ws, email
	return f.findResp, f.findErr
}
func (f *fakeClient) DeleteUser(_ context.Context, id int64) (bool, error) {
	f.deletedID = id
	return f.deleteResp, nil
}
func (f *fakeClient) DeleteUserByEmail(_ context.Context, ws int64, email string) (bool, error) {
	f.deletedWs, f.deletedEmail = ws, email
	return f.deleteResp, nil
}
func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

// stubInputs answers text prompts from answers in order and returns pw for
// password prompts.
func stubInputs(t *testing.T, answers []string, pw string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", fmt.Errorf("unexpected prompt %q", prompt)
		}
		i++
		return answers[i-1], nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func testApp(ws int64, fc *fakeClient, in string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := &config.Config{ServerEndpointAddr: "x", RequestTimeout: time.Second, WorkspaceID: ws}
	return newApp(cfg, fc, strings.NewReader(in), &out), &out
}

func TestSignUp_SendsDetails(t *testing.T) {
	stubInputs(t, []string{"acme", "Alice", "a@x.com"}, "pw123")
	fc := &fakeClient{}
	a, out := testApp(7, fc, "")

	require.NoError(t, a.SignUp(context.Background()))

	assert.Equal(t, models.CreateUser{WorkspaceID: 7, Workspace: "acme", FullName: "Alice", Email: "a@x.com", Password: "pw123"}, fc.signUpIn)
	assert.Contains(t, out.String(), "Account created")
}

func TestSignUp_PromptsForWorkspaceWhenNotConfigured(t *testing.T) {
	stubInputs(t, []string{"acme", "Alice", "a@x.com"}, "pw")
	fc := &fakeClient{}
	a, _ := testApp(0, fc, "3\n")

	require.NoError(t, a.SignUp(context.Background()))
	assert.Equal(t, int64(3), fc.signUpIn.WorkspaceID)
}

func TestSignUp_PropagatesError(t *testing.T) {
	stubInputs(t, []string{"acme", "Alice", "a@x.com"}, "pw")
	fc := &fakeClient{signUpErr: fmt.Errorf("%w: email already exists: a@x.com", client.ErrAlreadyExists)}
	a, _ := testApp(1, fc, "")

	assert.ErrorIs(t, a.SignUp(context.Background()), client.ErrAlreadyExists)
}

func TestSignIn_SuccessAndRejection(t *testing.T) {
	stubInputs(t, []string{"a@x.com"}, "pw123")
	fc := &fakeClient{signInResp: &models.User{ID: 1, WorkspaceID: 1, Email: "a@x.com"}}
	a, _ := testApp(1, fc, "")

	require.NoError(t, a.SignIn(context.Background()))
	assert.Equal(t, "pw123", fc.signInIn.Password)
	assert.Equal(t, "(a@x.com ws=1)", a.getStatus())

	stubInputs(t, []string{"a@x.com"}, "wrong")
	fc.signInResp, fc.signInErr = nil, client.ErrInvalidCredentials
	var out bytes.Buffer
	a.out = &out

	require.NoError(t, a.SignIn(context.Background()))
	assert.Contains(t, out.String(), "Invalid email or password")
	assert.Equal(t, "", a.getStatus())
}

func TestFind(t *testing.T) {
	fc := &fakeClient{findResp: &models.User{ID: 5, WorkspaceID: 2, Email: "b@x.com", FullName: "Bob"}}
	a, out := testApp(2, fc, "")

	require.NoError(t, a.Find(context.Background(), []string{"b@x.com"}))
	assert.Equal(t, int64(2), fc.findWs)
	assert.Equal(t, "b@x.com", fc.findArg)
	assert.Contains(t, out.String(), "id=5")

	fc.findResp, fc.findErr = nil, client.ErrNotFound
	require.NoError(t, a.Find(context.Background(), []string{"c@x.com"}))
	assert.Contains(t, out.String(), "No such account")
}

func TestDelete_ByIDAndByEmail(t *testing.T) {
	fc := &fakeClient{deleteResp: true}
	a, out := testApp(4, fc, "")

	require.NoError(t, a.Delete(context.Background(), []string{"17"}))
	assert.Equal(t, int64(17), fc.deletedID)

	require.NoError(t, a.Delete(context.Background(), []string{"d@x.com"}))
	assert.Equal(t, int64(4), fc.deletedWs)
	assert.Equal(t, "d@x.com", fc.deletedEmail)
	assert.Equal(t, 2, strings.Count(out.String(), "Deleted"))

	fc.deleteResp = false
	require.NoError(t, a.Delete(context.Background(), []string{"d@x.com"}))
	assert.Contains(t, out.String(), "Nothing deleted")
}

func TestDelete_ClearsSignedInAccount(t *testing.T) {
	fc := &fakeClient{deleteResp: true}
	a, _ := testApp(1, fc, "")
	a.signedIn = &models.User{ID: 9, WorkspaceID: 1, Email: "a@x.com"}

	require.NoError(t, a.Delete(context.Background(), []string{"A@x.com"}))
	assert.Nil(t, a.signedIn)
}

func TestRun_ClosesClient(t *testing.T) {
	fc := &fakeClient{pingErr: client.ErrUnavailable}
	a, out := testApp(1, fc, "exit\n")

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, fc.closed)
	assert.Contains(t, out.String(), "warning: server unavailable")
	assert.Contains(t, out.String(), "Bye!")
}
