package services

import (
  "context"
  "fmt"
  "strings"
  "time"
  "gorm.io/gorm"
  "golang.org/x/crypto/bcrypt"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "github.com/classcal/classcal-backend/internal/logger"
  "github.com/classcal/classcal-backend/internal/types"
  "github.com/classcal/classcal-backend/internal/repos"
  "github.com/classcal/classcal-backend/internal/requestdata"
)

type AuthService interface {
  RegisterUser(ctx context.Context, user *types.User) error
  LoginUser(ctx context.Context, email, password string) (string, string, error)
  RefreshUser(ctx context.Context, refreshToken string) (string, string, error)
  LogoutUser(ctx context.Context) error
  SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
  GetAccessTTL() time.Duration
}

type authService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  userTokenRepo repos.UserTokenRepo
  jwtSecretKey  string
  accessTTL     time.Duration
  refreshTTL    time.Duration
}

func NewAuthService(
  db *gorm.DB,
  baseLog *logger.Logger,
  userRepo repos.UserRepo,
  userTokenRepo repos.UserTokenRepo,
  jwtSecretKey string,
  accessTTL time.Duration,
  refreshTTL time.Duration,
) AuthService {
  serviceLog := baseLog.With("service", "AuthService")
  return &authService{
    db:            db,
    log:           serviceLog,
    userRepo:      userRepo,
    userTokenRepo: userTokenRepo,
    jwtSecretKey:  jwtSecretKey,
    accessTTL:     accessTTL,
    refreshTTL:    refreshTTL,
  }
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) error {
  if user == nil {
    return fmt.Errorf("no user given, cannot proceed with registration")
  }
  user.Email = strings.TrimSpace(strings.ToLower(user.Email))
  if user.Email == "" {
    return fmt.Errorf("an email is required to register")
  }
  if user.Password == "" {
    return fmt.Errorf("a password is required to register")
  }

  emailExists, err := as.userRepo.EmailExists(ctx, nil, user.Email)
  if err != nil {
    return fmt.Errorf("failed to check user email: %w", err)
  }
  if emailExists {
    return fmt.Errorf("email is already in use")
  }

  hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
  if err != nil {
    return fmt.Errorf("failed to hash password: %w", err)
  }
  user.Password = string(hashedPassword)
  user.ID = uuid.New()

  if _, err := as.userRepo.Create(ctx, nil, []*types.User{user}); err != nil {
    as.log.Error("RegisterUser failed", "error", err)
    return fmt.Errorf("failed to create user: %w", err)
  }
  return nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (string, string, error) {
  email = strings.TrimSpace(strings.ToLower(email))
  if email == "" {
    return "", "", fmt.Errorf("email is required to login")
  }
  if password == "" {
    return "", "", fmt.Errorf("password is required to login")
  }

  users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
  if err != nil {
    return "", "", fmt.Errorf("error retrieving user by email: %w", err)
  }
  if len(users) == 0 {
    return "", "", fmt.Errorf("invalid email or password")
  }
  user := users[0]
  if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
    return "", "", fmt.Errorf("invalid email or password")
  }

  var accessToken, refreshToken string
  err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := as.userTokenRepo.DeleteByUserIDs(ctx, tx, []uuid.UUID{user.ID}); dErr != nil {
      return fmt.Errorf("failed to clear previous user tokens: %w", dErr)
    }
    var tErr error
    accessToken, refreshToken, tErr = as.issueTokens(ctx, tx, user)
    return tErr
  })
  if err != nil {
    as.log.Error("LoginUser failed", "error", err, "email", email)
    return "", "", err
  }
  return accessToken, refreshToken, nil
}

func (as *authService) RefreshUser(ctx context.Context, refreshToken string) (string, string, error) {
  if refreshToken == "" {
    return "", "", fmt.Errorf("refresh token is required")
  }
  stored, err := as.userTokenRepo.GetByRefreshToken(ctx, nil, refreshToken)
  if err != nil {
    return "", "", fmt.Errorf("invalid refresh token")
  }

  users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{stored.UserID})
  if err != nil || len(users) == 0 {
    return "", "", fmt.Errorf("user for refresh token not found")
  }
  user := users[0]

  var accessToken, newRefreshToken string
  err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if dErr := as.userTokenRepo.DeleteByUserIDs(ctx, tx, []uuid.UUID{user.ID}); dErr != nil {
      return fmt.Errorf("failed to rotate user tokens: %w", dErr)
    }
    var tErr error
    accessToken, newRefreshToken, tErr = as.issueTokens(ctx, tx, user)
    return tErr
  })
  if err != nil {
    as.log.Error("RefreshUser failed", "error", err, "user_id", user.ID)
    return "", "", err
  }
  return accessToken, newRefreshToken, nil
}

func (as *authService) LogoutUser(ctx context.Context) error {
  rd := requestdata.GetRequestData(ctx)
  if rd == nil || rd.UserID == uuid.Nil {
    return fmt.Errorf("request data not set in context")
  }
  return as.userTokenRepo.DeleteByUserIDs(ctx, nil, []uuid.UUID{rd.UserID})
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
  claims := jwt.RegisteredClaims{}
  token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
    if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil || !token.Valid {
    return ctx, fmt.Errorf("invalid or expired token")
  }
  userID, err := uuid.Parse(claims.Subject)
  if err != nil {
    return ctx, fmt.Errorf("invalid token subject")
  }
  rd := &requestdata.RequestData{TokenString: tokenString, UserID: userID}
  return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) issueTokens(ctx context.Context, tx *gorm.DB, user *types.User) (string, string, error) {
  now := time.Now()
  claims := jwt.RegisteredClaims{
    Subject:   user.ID.String(),
    IssuedAt:  jwt.NewNumericDate(now),
    ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
  }
  accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.jwtSecretKey))
  if err != nil {
    return "", "", fmt.Errorf("failed to sign access token: %w", err)
  }
  refreshToken := uuid.NewString()

  record := &types.UserToken{
    ID:           uuid.New(),
    UserID:       user.ID,
    AccessToken:  accessToken,
    RefreshToken: refreshToken,
    ExpiresAt:    now.Add(as.refreshTTL),
  }
  if _, err := as.userTokenRepo.Create(ctx, tx, []*types.UserToken{record}); err != nil {
    return "", "", fmt.Errorf("failed to persist user token: %w", err)
  }
  return accessToken, refreshToken, nil
}

func (as *authService) GetAccessTTL() time.Duration {
  return as.accessTTL
}
