// Package service implements the business logic engines over the
// repositories. Services validate before mutating, enforce ownership,
// and are total over the application error taxonomy.
package service

import (
	"context"

	"devconnect/internal/auth"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

// IdentityService provides registration, login and profile logic.
type IdentityService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	tokens   auth.TokenIssuer
}

// NewIdentityService returns a new IdentityService.
func NewIdentityService(userRepo repository.UserRepository, hasher auth.PasswordHasher, tokens auth.TokenIssuer) *IdentityService {
	return &IdentityService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	FullName     string   `json:"fullName"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Bio          string   `json:"bio"`
	Avatar       string   `json:"avatar"`
	Skills       []string `json:"skills"`
	GithubURL    string   `json:"githubUrl"`
	LinkedinURL  string   `json:"linkedinUrl"`
	PortfolioURL string   `json:"portfolioUrl"`
	Location     string   `json:"location"`
}

// Register creates a new account and issues an identity token.
func (s *IdentityService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	switch {
	case in.FullName == "":
		return nil, "", models.NewInvalidInputError("fullName is required")
	case in.Username == "":
		return nil, "", models.NewInvalidInputError("username is required")
	case in.Email == "":
		return nil, "", models.NewInvalidInputError("email is required")
	case in.Password == "":
		return nil, "", models.NewInvalidInputError("password is required")
	}

	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, "", models.NewInvalidInputError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, "", models.NewInvalidInputError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, "", models.NewInvalidInputError(err.Error())
	}

	// Friendly pre-check; the unique indexes remain the real guard and
	// a racing duplicate insert still maps to Conflict.
	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", models.NewConflictError("User with this email or username already exists")
	}
	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, "", err
	} else if existing != nil {
		return nil, "", models.NewConflictError("User with this email or username already exists")
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", models.NewUnavailableError(err)
	}

	user := &models.User{
		FullName:     in.FullName,
		Username:     in.Username,
		Email:        in.Email,
		Password:     hashed,
		Bio:          in.Bio,
		Avatar:       in.Avatar,
		Skills:       in.Skills,
		GithubURL:    in.GithubURL,
		LinkedinURL:  in.LinkedinURL,
		PortfolioURL: in.PortfolioURL,
		Location:     in.Location,
		IsActive:     true,
	}
	user.JoinedAt = nowUTC()

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", models.NewUnavailableError(err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a fresh token.
func (s *IdentityService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", models.NewInvalidInputError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !s.hasher.Verify(password, user.Password) {
		return nil, "", models.NewUnauthorizedError("Invalid email or password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", models.NewUnavailableError(err)
	}

	return user, token, nil
}

// UpdateProfileInput carries the profile fields a user may change.
// A nil field was not provided and is left untouched; anything outside
// this allow-list cannot be mutated through profile updates.
type UpdateProfileInput struct {
	FullName     *string   `json:"fullName"`
	Bio          *string   `json:"bio"`
	Skills       *[]string `json:"skills"`
	GithubURL    *string   `json:"githubUrl"`
	LinkedinURL  *string   `json:"linkedinUrl"`
	PortfolioURL *string   `json:"portfolioUrl"`
	Location     *string   `json:"location"`
}

func (in *UpdateProfileInput) empty() bool {
	return in.FullName == nil && in.Bio == nil && in.Skills == nil &&
		in.GithubURL == nil && in.LinkedinURL == nil &&
		in.PortfolioURL == nil && in.Location == nil
}

// UpdateProfile applies the allow-listed profile fields. Only the owner
// may update a profile.
func (s *IdentityService) UpdateProfile(ctx context.Context, actorID, targetID uint, in UpdateProfileInput) (*models.User, error) {
	if actorID != targetID {
		return nil, models.NewForbiddenError("You can only update your own profile")
	}

	if in.empty() {
		return nil, models.NewInvalidInputError("No valid fields to update")
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		user.FullName = *in.FullName
	}
	if in.Bio != nil {
		user.Bio = *in.Bio
	}
	if in.Skills != nil {
		user.Skills = *in.Skills
	}
	if in.GithubURL != nil {
		user.GithubURL = *in.GithubURL
	}
	if in.LinkedinURL != nil {
		user.LinkedinURL = *in.LinkedinURL
	}
	if in.PortfolioURL != nil {
		user.PortfolioURL = *in.PortfolioURL
	}
	if in.Location != nil {
		user.Location = *in.Location
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID returns the user with the given id.
func (s *IdentityService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByUsername returns the user with the given username.
func (s *IdentityService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	return user, nil
}

// Search returns users matching the query (case-insensitive substring
// over full name, username and skills) plus the total match count.
func (s *IdentityService) Search(ctx context.Context, query string, page, limit int) ([]models.User, int64, error) {
	page, limit = normalizePage(page, limit, defaultUserPageSize)
	return s.userRepo.Search(ctx, query, limit, (page-1)*limit)
}
