package service

import (
	"github.com/AdityaANS/dsa-progress-tracker/internal/config"
	"github.com/AdityaANS/dsa-progress-tracker/internal/model"
	"github.com/AdityaANS/dsa-progress-tracker/internal/util"
	"github.com/AdityaANS/dsa-progress-tracker/pkg/logger"
)

// IdentityProvider is the consumed contract of the external identity
// collaborator: a stream of sign-in/sign-out events. The sync engine
// subscribes once for the session lifetime.
type IdentityProvider interface {
	Events() <-chan model.SessionIdentity
}

// IdentityService turns verified bearer tokens into identity events.
// Token issuance and the actual sign-in flow belong to the external
// provider; this only verifies what it issued.
type IdentityService struct {
	secret string
	events chan model.SessionIdentity
}

func NewIdentityService(cfg *config.Config) *IdentityService {
	return &IdentityService{
		secret: cfg.JWT.Secret,
		events: make(chan model.SessionIdentity, 16),
	}
}

func (s *IdentityService) Events() <-chan model.SessionIdentity {
	return s.events
}

// SignIn verifies the token and emits an authenticated identity event.
func (s *IdentityService) SignIn(token string) (model.SessionIdentity, error) {
	claims, err := util.ParseJWT(token, s.secret)
	if err != nil {
		return model.Anonymous, util.ErrInvalidToken
	}

	identity := model.SessionIdentity{
		UserID:      claims.UserID,
		DisplayName: claims.DisplayName,
	}
	s.emit(identity)
	return identity, nil
}

// SignOut emits an anonymous identity event.
func (s *IdentityService) SignOut() {
	s.emit(model.Anonymous)
}

func (s *IdentityService) emit(identity model.SessionIdentity) {
	select {
	case s.events <- identity:
	default:
		logger.Log.Warn("identity event dropped, no active subscriber")
	}
}
