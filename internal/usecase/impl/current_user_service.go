// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// resolveState is a step of a single token resolution.
type resolveState int

const (
	stateTokenReceived resolveState = iota
	stateDecoded
	stateCacheHit
	stateCacheMiss
	stateResolved
	stateUnauthorized
)

func (s resolveState) String() string {
	switch s {
	case stateTokenReceived:
		return "token_received"
	case stateDecoded:
		return "decoded"
	case stateCacheHit:
		return "cache_hit"
	case stateCacheMiss:
		return "cache_miss"
	case stateResolved:
		return "resolved"
	case stateUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Auth failure reasons recorded in metrics.
const (
	failureInvalidToken   = "invalid_token"
	failureUnknownSubject = "unknown_subject"
)

// resolution carries the data accumulated while a token walks the states.
type resolution struct {
	token   string
	subject string
	user    *entity.User
	err     error
}

// currentUserService implements the CurrentUserUsecase interface.
type currentUserService struct {
	tokenService service.TokenService
	cache        service.SessionCache
	userRepo     repository.UserRepository
	metrics      service.AuthMetrics
	cacheTTL     time.Duration
	keyPrefix    string
	logger       *slog.Logger
}

// CurrentUserServiceParams holds dependencies for currentUserService, injected by Fx.
type CurrentUserServiceParams struct {
	fx.In

	TokenService service.TokenService
	Cache        service.SessionCache
	UserRepo     repository.UserRepository
	Metrics      service.AuthMetrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCurrentUserService is the constructor for currentUserService.
func NewCurrentUserService(params CurrentUserServiceParams) usecase.CurrentUserUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = noopAuthMetrics{}
	}

	return &currentUserService{
		tokenService: params.TokenService,
		cache:        params.Cache,
		userRepo:     params.UserRepo,
		metrics:      metrics,
		cacheTTL:     params.Config.Auth.CacheTTL,
		keyPrefix:    params.Config.Redis.KeyPrefix,
		logger:       params.Logger,
	}
}

func (srv *currentUserService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve drives the token through decode, cache lookup and directory fallback.
// It never writes to the directory and never retries.
func (srv *currentUserService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	res := &resolution{token: token}
	state := stateTokenReceived

	for {
		switch state {
		case stateTokenReceived:
			state = srv.decode(res)
		case stateDecoded:
			state = srv.lookupCache(ctx, res)
		case stateCacheMiss:
			state = srv.lookupDirectory(ctx, res)
		case stateCacheHit, stateResolved:
			srv.log(ctx).Debug("Current user resolved",
				slog.String("username", res.user.Username),
				slog.String("state", state.String()),
			)

			return res.user, nil
		case stateUnauthorized:
			return nil, res.err
		default:
			return nil, errors.Errorf("unexpected resolver state %s", state)
		}
	}
}

func (srv *currentUserService) decode(res *resolution) resolveState {
	claims, err := srv.tokenService.ValidateAccessToken(res.token)
	if err != nil {
		srv.metrics.RecordAuthFailure(failureInvalidToken)
		res.err = err

		return stateUnauthorized
	}

	res.subject = claims.Subject

	return stateDecoded
}

func (srv *currentUserService) lookupCache(ctx context.Context, res *resolution) resolveState {
	data, found, err := srv.cache.Get(ctx, srv.cacheKey(res.subject))
	if err != nil {
		srv.metrics.RecordCacheLookup(service.CacheLookupError)
		srv.log(ctx).Warn("Session cache read failed, falling back to directory",
			slog.String("username", res.subject),
			slog.Any("error", err),
		)

		return stateCacheMiss
	}

	if !found {
		srv.metrics.RecordCacheLookup(service.CacheLookupMiss)

		return stateCacheMiss
	}

	user, ok := decodeSnapshot(data, res.subject)
	if !ok {
		srv.metrics.RecordCacheLookup(service.CacheLookupCorrupt)
		srv.log(ctx).Warn("Discarding unusable session cache entry", slog.String("username", res.subject))

		return stateCacheMiss
	}

	srv.metrics.RecordCacheLookup(service.CacheLookupHit)
	res.user = user

	return stateCacheHit
}

func (srv *currentUserService) lookupDirectory(ctx context.Context, res *resolution) resolveState {
	user, err := srv.userRepo.FindByUsername(ctx, res.subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.metrics.RecordAuthFailure(failureUnknownSubject)
			res.err = errors.Wrap(domainerrors.ErrUnknownSubject, "token subject no longer exists")

			return stateUnauthorized
		}

		srv.log(ctx).Error("User directory lookup failed", slog.String("username", res.subject), slog.Any("error", err))
		res.err = errors.Wrap(err, "failed to look up token subject")

		return stateUnauthorized
	}

	srv.store(ctx, user)
	res.user = user

	return stateResolved
}

// store writes the snapshot to the cache. Failures are logged and swallowed.
func (srv *currentUserService) store(ctx context.Context, user *entity.User) {
	data, err := json.Marshal(user.Snapshot())
	if err == nil {
		err = srv.cache.Set(ctx, srv.cacheKey(user.Username), data, srv.cacheTTL)
	}

	if err != nil {
		srv.metrics.RecordCacheWriteFailure()
		srv.log(ctx).Warn("Session cache write failed", slog.String("username", user.Username), slog.Any("error", err))
	}
}

// Invalidate drops the cached snapshot of username.
func (srv *currentUserService) Invalidate(ctx context.Context, username string) error {
	if err := srv.cache.Delete(ctx, srv.cacheKey(username)); err != nil {
		return errors.Wrap(err, "failed to invalidate session cache")
	}

	return nil
}

func (srv *currentUserService) cacheKey(username string) string {
	return srv.keyPrefix + username
}

// decodeSnapshot accepts a cache entry only when it parses and names the expected user.
func decodeSnapshot(data []byte, username string) (*entity.User, bool) {
	var snapshot entity.UserSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, false
	}

	if snapshot.ID <= 0 || snapshot.Username != username || !snapshot.Role.IsValid() {
		return nil, false
	}

	return snapshot.User(), true
}

type noopAuthMetrics struct{}

func (noopAuthMetrics) RecordCacheLookup(service.CacheLookupResult) {}
func (noopAuthMetrics) RecordCacheWriteFailure()                    {}
func (noopAuthMetrics) RecordAuthFailure(string)                    {}
