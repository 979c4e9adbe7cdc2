package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSecret_ReturnsProvisioningURI(t *testing.T) {
	authenticator := &Authenticator{}

	uri, secret, err := authenticator.GenerateSecret("seba@example.com")

	assert.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.True(t, strings.HasPrefix(uri, "otpauth://totp/"))
	assert.Contains(t, uri, "SpendWise")
	assert.Contains(t, uri, "seba%40example.com")
}

func TestVerifyCode(t *testing.T) {
	authenticator := &Authenticator{}

	_, secret, err := authenticator.GenerateSecret("seba@example.com")
	assert.NoError(t, err)

	code, err := totp.GenerateCode(secret, time.Now())
	assert.NoError(t, err)

	assert.True(t, authenticator.VerifyCode(secret, code))
	assert.False(t, authenticator.VerifyCode(secret, "000000"))
}
