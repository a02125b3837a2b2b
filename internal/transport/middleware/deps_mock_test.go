package middleware

import (
	"context"
	"sync"

	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

var _ tokenVerifier = &tokenVerifierMock{}

type tokenVerifierMock struct {
	VerifyFunc func(token string) (string, error)

	calls struct {
		Verify []string
	}
	lockVerify sync.RWMutex
}

func (mock *tokenVerifierMock) Verify(token string) (string, error) {
	if mock.VerifyFunc == nil {
		panic("tokenVerifierMock.VerifyFunc: method is nil but tokenVerifier.Verify was just called")
	}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, token)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(token)
}

func (mock *tokenVerifierMock) VerifyCalls() []string {
	mock.lockVerify.RLock()
	defer mock.lockVerify.RUnlock()
	return mock.calls.Verify
}

var _ principalLoader = &principalLoaderMock{}

type principalLoaderMock struct {
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Principal, error)
}

func (mock *principalLoaderMock) GetByEmail(ctx context.Context, email string) (*domain.Principal, error) {
	if mock.GetByEmailFunc == nil {
		panic("principalLoaderMock.GetByEmailFunc: method is nil but principalLoader.GetByEmail was just called")
	}
	return mock.GetByEmailFunc(ctx, email)
}
