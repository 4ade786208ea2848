package services

import (
	"context"
	"talktag_server/database"
	"talktag_server/lib"
	"talktag_server/structs"
	"talktag_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService // nil disables user caching and blacklist checks
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB, cache *CacheService) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: cache,
	}
}

// Login authenticates by email and password. Every failure path returns
// ErrInvalidCredentials so responses never reveal whether the email exists.
func (as *AuthService) Login(ctx context.Context, authRequest *structs.AuthRequest) (*tables.User, error) {
	startTime := time.Now()

	user, err := database.Query[tables.User](as.db).Where("email", authRequest.Email).First(ctx)
	if err != nil {
		as.logger.Error("Unexpected database error during login",
			gecho.Field("error", err),
		)
		return nil, lib.ErrInvalidCredentials
	}
	if user == nil {
		as.logger.Debug("User not found during login attempt", gecho.Field("email", authRequest.Email))
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := lib.VerifyPassword(authRequest.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt",
			gecho.Field("email", authRequest.Email),
			gecho.Field("user_id", user.Id),
		)
		return nil, lib.ErrInvalidCredentials
	}

	as.logger.Debug("User logged in successfully",
		gecho.Field("user_id", user.Id),
		gecho.Field("elapsed_time_ms", time.Since(startTime).Milliseconds()),
	)

	// Remove password hash before returning user
	user.PasswordHash = ""

	if as.cacheService != nil {
		if cacheErr := as.cacheService.SetUserInCache(user); cacheErr != nil {
			as.logger.Warn("Failed to set user in cache after login", gecho.Field("error", cacheErr), gecho.Field("user_id", user.Id))
		}
	}

	return user, nil
}

func (as *AuthService) Register(ctx context.Context, registerRequest *structs.RegisterRequest) (*tables.User, error) {
	passwordHash, err := lib.HashPassword(registerRequest.Password)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}

	now := time.Now()
	user := &tables.User{
		Id:           uuid.New(),
		Username:     registerRequest.Username,
		Email:        registerRequest.Email,
		PasswordHash: passwordHash,
		Role:         "user",
		LastLogin:    now,
		CreatedAt:    now,
	}

	user, err = database.Query[tables.User](as.db).Insert(ctx, user)
	if err != nil {
		mappedErr := lib.MapDBError(err)

		if lib.IsUniqueViolation(err) {
			as.logger.Warn("Registration failed - duplicate user",
				gecho.Field("username", registerRequest.Username),
				gecho.Field("email", registerRequest.Email),
			)
		} else {
			as.logger.Error("Database error during registration",
				gecho.Field("error", mappedErr),
				gecho.Field("username", registerRequest.Username),
			)
		}

		return nil, mappedErr
	}

	as.logger.Debug("User registered successfully", gecho.Field("user_id", user.Id))

	// Remove password hash before returning user
	user.PasswordHash = ""

	return user, nil
}

// GenerateAccessToken issues a signed access token for the given user.
func (as *AuthService) GenerateAccessToken(user *tables.User) (string, *structs.AuthClaims, error) {
	return lib.SignToken(user.Id, user.Email, user.Role, as.cfg.Auth.AccessTokenSecret, as.cfg.Auth.AccessTokenExpiry)
}

// Logout blacklists the token's jti until the token would have expired.
func (as *AuthService) Logout(claims *structs.AuthClaims) error {
	if as.cacheService == nil {
		return nil
	}
	return as.cacheService.BlacklistToken(claims.Jti, claims.Exp)
}

// IsTokenRevoked reports whether a token was blacklisted by a logout.
func (as *AuthService) IsTokenRevoked(jti uuid.UUID) (bool, error) {
	if as.cacheService == nil {
		return false, nil
	}
	return as.cacheService.IsTokenBlacklisted(jti)
}

func (as *AuthService) GetUserByID(ctx context.Context, userId uuid.UUID) (*tables.User, error) {
	if as.cacheService != nil {
		cachedUser, err := as.cacheService.GetUserFromCache(userId)
		if err != nil {
			as.logger.Warn("Failed to get user from cache", gecho.Field("error", err), gecho.Field("user_id", userId))
		} else if cachedUser != nil {
			return cachedUser, nil
		}
	}

	user, err := database.Query[tables.User](as.db).Where("id", userId).First(ctx)
	if err != nil {
		as.logger.Error("Failed to find user by ID", gecho.Field("error", err), gecho.Field("user_id", userId))
		return nil, lib.MapDBError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}

	if as.cacheService != nil {
		go func() {
			if err := as.cacheService.SetUserInCache(user); err != nil {
				as.logger.Warn("Failed to cache user after DB fetch", gecho.Field("error", err), gecho.Field("user_id", userId))
			}
		}()
	}

	return user, nil
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}

func (as *AuthService) UpdateLastLogin(ctx context.Context, userId uuid.UUID) error {
	_, err := database.Query[tables.User](as.db).Where("id", userId).Update(ctx, map[string]any{
		"last_login": time.Now(),
	})
	if err != nil {
		return lib.MapDBError(err)
	}
	return nil
}
