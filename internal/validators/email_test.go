package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx  map[string][]*net.MX
	ips map[string][]net.IPAddr
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	if v, ok := f.mx[name]; ok {
		return v, nil
	}
	return nil, errors.New("no such host")
}

func (f fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if v, ok := f.ips[host]; ok {
		return v, nil
	}
	return nil, errors.New("no such host")
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "example.com", EmailDomain("ana@example.com"))
	assert.Equal(t, "example.com", EmailDomain("a@b@example.com"))
	assert.Empty(t, EmailDomain("ana@"))
	assert.Empty(t, EmailDomain("@example.com"))
	assert.Empty(t, EmailDomain("ana@localhost"))
	assert.Empty(t, EmailDomain("ana"))
}

func TestIsEmailDomainValid(t *testing.T) {
	r := fakeResolver{
		mx:  map[string][]*net.MX{"mail.pt": {{Host: "mx.mail.pt.", Pref: 10}}},
		ips: map[string][]net.IPAddr{"web.pt": {{IP: net.ParseIP("192.0.2.1")}}},
	}
	ctx := context.Background()

	assert.True(t, IsEmailDomainValid(ctx, r, "ana@mail.pt"))
	assert.True(t, IsEmailDomainValid(ctx, r, "ana@web.pt"))
	assert.False(t, IsEmailDomainValid(ctx, r, "ana@nowhere.pt"))
	assert.False(t, IsEmailDomainValid(ctx, r, "not-an-email"))
}
