package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"

	"connekt/pkg/errors"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// VerifyToken checks a Firebase ID token and returns its uid.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", errors.Unauthorized("invalid or expired token", err)
	}

	return result.UID, nil
}

// GenerateDevToken mints a custom token for uid, used by connektctl to act as
// a user against a development deployment.
func (f *FirebaseAuthClient) GenerateDevToken(ctx context.Context, uid string) (string, error) {
	token, err := f.client.CustomToken(ctx, uid)
	if err != nil {
		return "", errors.Internal("failed to generate token", err)
	}

	return token, nil
}

// LookupUID resolves an email address to a uid.
func (f *FirebaseAuthClient) LookupUID(ctx context.Context, email string) (string, error) {
	user, err := f.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return "", errors.NotFound("User", err)
		}
		return "", errors.Internal("failed to look up user", err)
	}

	return user.UID, nil
}
