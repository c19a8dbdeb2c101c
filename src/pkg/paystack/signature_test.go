package paystack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	secret := "sk_test_xxxx"
	body := []byte(`{"event":"charge.success","data":{"reference":"ref-1","amount":10000}}`)
	signature := Sign(secret, body)

	assert.True(t, VerifySignature(secret, body, signature))
}

func TestVerifySignatureRejectsTamperedBody(t *testing.T) {
	secret := "sk_test_xxxx"
	body := []byte(`{"event":"charge.success","data":{"reference":"ref-1","amount":10000}}`)
	signature := Sign(secret, body)

	tampered := []byte(`{"event":"charge.success","data":{"reference":"ref-1","amount":99999}}`)
	assert.False(t, VerifySignature(secret, tampered, signature))
}

func TestVerifySignatureRejectsTamperedSignature(t *testing.T) {
	secret := "sk_test_xxxx"
	body := []byte(`{"event":"charge.success"}`)
	signature := Sign(secret, body)

	flipped := []byte(signature)
	if flipped[0] == 'a' {
		flipped[0] = 'b'
	} else {
		flipped[0] = 'a'
	}
	assert.False(t, VerifySignature(secret, body, string(flipped)))
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	body := []byte(`{"event":"charge.success"}`)
	signature := Sign("sk_test_xxxx", body)

	assert.False(t, VerifySignature("sk_live_yyyy", body, signature))
}

func TestVerifySignatureRejectsMissingInputs(t *testing.T) {
	body := []byte(`{}`)
	assert.False(t, VerifySignature("", body, Sign("", body)))
	assert.False(t, VerifySignature("secret", body, ""))
}
