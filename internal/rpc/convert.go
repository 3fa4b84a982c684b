package rpc

import (
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/server/models"
	"google.golang.org/protobuf/types/known/structpb"
)

// Field names used in Accounts messages.
const (
	FieldID        = "id"
	FieldWorkspace = "workspace"
	FieldWsID      = "ws_id"
	FieldFullName  = "fullname"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldCreatedAt = "created_at"
	FieldDeleted   = "deleted"
)

// maxExactInt is the largest integer a structpb number holds exactly.
const maxExactInt = 1 << 53

// CreateUserToStruct encodes a sign-up request.
func CreateUserToStruct(in models.CreateUser) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldWsID:      structpb.NewNumberValue(float64(in.WorkspaceID)),
		FieldWorkspace: structpb.NewStringValue(in.Workspace),
		FieldFullName:  structpb.NewStringValue(in.FullName),
		FieldEmail:     structpb.NewStringValue(in.Email),
		FieldPassword:  structpb.NewStringValue(in.Password),
	}}
}

// CreateUserFromStruct decodes a sign-up request.
func CreateUserFromStruct(s *structpb.Struct) (models.CreateUser, error) {
	var out models.CreateUser
	var err error

	if out.WorkspaceID, err = intField(s, FieldWsID); err != nil {
		return out, err
	}
	if out.Workspace, err = stringField(s, FieldWorkspace); err != nil {
		return out, err
	}
	if out.FullName, err = stringField(s, FieldFullName); err != nil {
		return out, err
	}
	if out.Email, err = stringField(s, FieldEmail); err != nil {
		return out, err
	}
	if out.Password, err = stringField(s, FieldPassword); err != nil {
		return out, err
	}
	return out, nil
}

// SignInToStruct encodes a sign-in request.
func SignInToStruct(in models.SignInUser) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldWsID:     structpb.NewNumberValue(float64(in.WorkspaceID)),
		FieldEmail:    structpb.NewStringValue(in.Email),
		FieldPassword: structpb.NewStringValue(in.Password),
	}}
}

// SignInFromStruct decodes a sign-in request.
func SignInFromStruct(s *structpb.Struct) (models.SignInUser, error) {
	var out models.SignInUser
	var err error

	if out.WorkspaceID, err = intField(s, FieldWsID); err != nil {
		return out, err
	}
	if out.Email, err = stringField(s, FieldEmail); err != nil {
		return out, err
	}
	if out.Password, err = stringField(s, FieldPassword); err != nil {
		return out, err
	}
	return out, nil
}

// LookupToStruct encodes a workspace-scoped email lookup, used by FindUser
// and DeleteUserByEmail.
func LookupToStruct(workspaceID int64, email string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldWsID:  structpb.NewNumberValue(float64(workspaceID)),
		FieldEmail: structpb.NewStringValue(email),
	}}
}

// LookupFromStruct decodes a workspace-scoped email lookup.
func LookupFromStruct(s *structpb.Struct) (int64, string, error) {
	ws, err := intField(s, FieldWsID)
	if err != nil {
		return 0, "", err
	}
	email, err := stringField(s, FieldEmail)
	if err != nil {
		return 0, "", err
	}
	return ws, email, nil
}

func UserIDToStruct(id int64) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldID: structpb.NewNumberValue(float64(id)),
	}}
}

func UserIDFromStruct(s *structpb.Struct) (int64, error) {
	return intField(s, FieldID)
}

// UserToStruct encodes a public account record. created_at is RFC 3339 in
// UTC with nanoseconds.
func UserToStruct(u *models.User) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldID:        structpb.NewNumberValue(float64(u.ID)),
		FieldWsID:      structpb.NewNumberValue(float64(u.WorkspaceID)),
		FieldFullName:  structpb.NewStringValue(u.FullName),
		FieldEmail:     structpb.NewStringValue(u.Email),
		FieldCreatedAt: structpb.NewStringValue(u.CreatedAt.UTC().Format(time.RFC3339Nano)),
	}}
}

// UserFromStruct decodes a public account record.
func UserFromStruct(s *structpb.Struct) (*models.User, error) {
	u := &models.User{}
	var err error

	if u.ID, err = intField(s, FieldID); err != nil {
		return nil, err
	}
	if u.WorkspaceID, err = intField(s, FieldWsID); err != nil {
		return nil, err
	}
	if u.FullName, err = stringField(s, FieldFullName); err != nil {
		return nil, err
	}
	if u.Email, err = stringField(s, FieldEmail); err != nil {
		return nil, err
	}

	created, err := stringField(s, FieldCreatedAt)
	if err != nil {
		return nil, err
	}
	if created != "" {
		if u.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("%w: field %s: %w", common.ErrorValidation, FieldCreatedAt, err)
		}
	}
	return u, nil
}

func DeletedToStruct(deleted bool) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldDeleted: structpb.NewBoolValue(deleted),
	}}
}

func DeletedFromStruct(s *structpb.Struct) (bool, error) {
	v, ok := s.GetFields()[FieldDeleted]
	if !ok {
		return false, nil
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, fmt.Errorf("%w: field %s must be a boolean", common.ErrorValidation, FieldDeleted)
	}
	return b.BoolValue, nil
}

// stringField returns the named string field; a missing or null field is "".
func stringField(s *structpb.Struct, name string) (string, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return "", nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue, nil
	case *structpb.Value_NullValue:
		return "", nil
	}
	return "", fmt.Errorf("%w: field %s must be a string", common.ErrorValidation, name)
}

// intField returns the named integer field; a missing or null field is 0.
func intField(s *structpb.Struct, name string) (int64, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return 0, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n != math.Trunc(n) || math.Abs(n) > maxExactInt {
			return 0, fmt.Errorf("%w: field %s must be an integer", common.ErrorValidation, name)
		}
		return int64(n), nil
	case *structpb.Value_NullValue:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: field %s must be an integer", common.ErrorValidation, name)
}
