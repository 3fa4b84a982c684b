package rpc

import (
	"math"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestCreateUser_Roundtrip(t *testing.T) {
	in := models.CreateUser{WorkspaceID: 7, FullName: "Alice", Email: "a@x.com", Workspace: "acme", Password: "pw123"}

	out, err := CreateUserFromStruct(CreateUserToStruct(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSignIn_Roundtrip(t *testing.T) {
	in := models.SignInUser{WorkspaceID: 3, Email: "b@x.com", Password: "secret"}

	out, err := SignInFromStruct(SignInToStruct(in))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestUser_RoundtripKeepsTimestamp(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 20, 30, 123456000, time.UTC)
	in := &models.User{ID: 42, WorkspaceID: 1, FullName: "Alice", Email: "a@x.com", CreatedAt: created}

	s := UserToStruct(in)
	_, hasPassword := s.GetFields()[FieldPassword]
	assert.False(t, hasPassword)

	out, err := UserFromStruct(s)
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.True(t, created.Equal(out.CreatedAt))
}

func TestLookupAndID(t *testing.T) {
	ws, email, err := LookupFromStruct(LookupToStruct(9, "c@x.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(9), ws)
	assert.Equal(t, "c@x.com", email)

	id, err := UserIDFromStruct(UserIDToStruct(12345))
	require.NoError(t, err)
	assert.Equal(t, int64(12345), id)

	del, err := DeletedFromStruct(DeletedToStruct(true))
	require.NoError(t, err)
	assert.True(t, del)
}

func TestMissingFieldsDecodeAsZero(t *testing.T) {
	in, err := CreateUserFromStruct(&structpb.Struct{})
	require.NoError(t, err)
	assert.Equal(t, models.CreateUser{}, in)

	del, err := DeletedFromStruct(&structpb.Struct{})
	require.NoError(t, err)
	assert.False(t, del)
}

func TestDecode_RejectsBadTypes(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value *structpb.Value
	}{
		{"fractional ws_id", FieldWsID, structpb.NewNumberValue(1.5)},
		{"huge ws_id", FieldWsID, structpb.NewNumberValue(math.Pow(2, 60))},
		{"nan ws_id", FieldWsID, structpb.NewNumberValue(math.NaN())},
		{"string ws_id", FieldWsID, structpb.NewStringValue("1")},
		{"numeric email", FieldEmail, structpb.NewNumberValue(1)},
		{"bool password", FieldPassword, structpb.NewBoolValue(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := CreateUserToStruct(models.CreateUser{WorkspaceID: 1, FullName: "A", Email: "a@x.com", Password: "p"})
			s.Fields[tt.field] = tt.value

			_, err := CreateUserFromStruct(s)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestUserFromStruct_BadTimestamp(t *testing.T) {
	s := UserToStruct(&models.User{ID: 1, WorkspaceID: 1, CreatedAt: time.Now()})
	s.Fields[FieldCreatedAt] = structpb.NewStringValue("yesterday")

	_, err := UserFromStruct(s)
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestFullMethod(t *testing.T) {
	assert.Equal(t, "/accounts.v1.Accounts/SignIn", FullMethod(MethodSignIn))
	assert.Len(t, AccountsServiceDesc.Methods, 5)
}
