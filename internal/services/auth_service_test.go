package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playtube/playtube-backend/internal/apperr"
	"github.com/playtube/playtube-backend/internal/dto"
	"github.com/playtube/playtube-backend/internal/models"
)

func registerTestUser(t *testing.T, svc *AuthService, username string) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Register(&dto.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		FullName: "Test " + username,
		Password: "hunter2hunter2",
	}, "https://cdn.example.com/"+username+".png", "")
	require.NoError(t, err)
	return resp
}

func TestRegister_NormalizesUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	resp, err := svc.Register(&dto.RegisterRequest{
		Username: "  AlIcE ",
		Email:    "Alice@Example.com",
		FullName: "Alice",
		Password: "hunter2hunter2",
	}, "https://cdn.example.com/a.png", "")
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestRegister_Duplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	registerTestUser(t, svc, "alice")

	_, err := svc.Register(&dto.RegisterRequest{
		Username: "ALICE",
		Email:    "other@example.com",
		FullName: "Impostor",
		Password: "hunter2hunter2",
	}, "https://cdn.example.com/i.png", "")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	registerTestUser(t, svc, "alice")

	tests := []struct {
		name    string
		req     dto.LoginRequest
		wantErr bool
	}{
		{name: "by username", req: dto.LoginRequest{Username: "alice", Password: "hunter2hunter2"}},
		{name: "by email", req: dto.LoginRequest{Email: "alice@example.com", Password: "hunter2hunter2"}},
		{name: "wrong password", req: dto.LoginRequest{Username: "alice", Password: "nope"}, wantErr: true},
		{name: "unknown user", req: dto.LoginRequest{Username: "ghost", Password: "hunter2hunter2"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(&tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", resp.User.Username)
		})
	}
}

func TestRefresh_Rotation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	first := registerTestUser(t, svc, "alice")

	second, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The presented token is revoked on use; replaying it must fail.
	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: first.RefreshToken})
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	_, err = svc.Refresh(&dto.RefreshRequest{RefreshToken: second.RefreshToken})
	require.NoError(t, err)
}

func TestLogout_RevokesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	resp := registerTestUser(t, svc, "alice")

	require.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: resp.RefreshToken}))

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: resp.RefreshToken})
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	resp := registerTestUser(t, svc, "alice")

	err := svc.ChangePassword(resp.User.ID, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newpassword123",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.KindOf(err))

	require.NoError(t, svc.ChangePassword(resp.User.ID, &dto.ChangePasswordRequest{
		OldPassword: "hunter2hunter2",
		NewPassword: "newpassword123",
	}))

	_, err = svc.Login(&dto.LoginRequest{Username: "alice", Password: "newpassword123"})
	require.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig())
	resp := registerTestUser(t, svc, "alice")
	video := createVideo(t, db, resp.User.ID, "survives")

	err := svc.DeleteAccount(resp.User.ID, "wrong")
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(err))

	require.NoError(t, svc.DeleteAccount(resp.User.ID, "hunter2hunter2"))

	var userCount, tokenCount, videoCount int64
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", resp.User.ID).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.RefreshToken{}).Where("user_id = ?", resp.User.ID).Count(&tokenCount).Error)
	require.NoError(t, db.Model(&models.Video{}).Where("id = ?", video.ID).Count(&videoCount).Error)

	assert.Equal(t, int64(0), userCount)
	assert.Equal(t, int64(0), tokenCount)
	// Uploaded content is not cascaded away with the account.
	assert.Equal(t, int64(1), videoCount)
}
