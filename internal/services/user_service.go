package services

import (
	"context"
	"strings"
	"time"

	"github.com/socialsync/socialdb/internal/models"
	"gorm.io/gorm"
)

// UserService implements validated CRUD over the users table.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService over an established connection.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// CreateUserInput carries the raw fields for a new user.
type CreateUserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserFilters are independently combinable find conditions. Substring
// matches are case-insensitive; the date bounds are inclusive.
type UserFilters struct {
	Username      string
	Email         string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// Create persists a new user. The duplicate pre-check only exists to
// produce a friendly message; under a create/create race the unique
// indexes on username and email are what actually reject the loser, and
// that path maps to the same duplicate message.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) Result[*models.User] {
	user := &models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}
	user.Normalize()

	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? OR email = ?", user.Username, user.Email).
		Count(&count).Error
	if err != nil {
		return fail[*models.User](KindUnknown, err.Error())
	}
	if count > 0 {
		return fail[*models.User](KindDuplicate, "Username or email already exists")
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return failFrom[*models.User](err,
			"Invalid user data provided",
			"Username or email already exists",
			"User not found")
	}

	return ok(user.Sanitize())
}

// FindByID returns a single user. A malformed identifier fails before any
// query runs, distinct from a not-found.
func (s *UserService) FindByID(ctx context.Context, id string) Result[*models.User] {
	if !models.ValidID(id) {
		return fail[*models.User](KindMalformedID, "Invalid user ID format")
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return failFrom[*models.User](err,
			"Invalid user data provided",
			"Username or email already exists",
			"User not found")
	}

	return ok(user.Sanitize())
}

// FindAll returns users matching the filters; absent filters return all
// records.
func (s *UserService) FindAll(ctx context.Context, filters UserFilters) Result[[]models.User] {
	query := s.db.WithContext(ctx).Model(&models.User{})

	if filters.Username != "" {
		query = query.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(filters.Username)+"%")
	}
	if filters.Email != "" {
		query = query.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(filters.Email)+"%")
	}
	if filters.CreatedAfter != nil {
		query = query.Where("created_at >= ?", *filters.CreatedAfter)
	}
	if filters.CreatedBefore != nil {
		query = query.Where("created_at <= ?", *filters.CreatedBefore)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return fail[[]models.User](KindUnknown, err.Error())
	}

	for i := range users {
		users[i].Sanitize()
	}
	return ok(users)
}

// Update applies the provided fields only. When the partial touches
// username or email, the duplicate check is re-run scoped to every record
// other than the target; a conflict fails before anything is written.
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) Result[*models.User] {
	if !models.ValidID(id) {
		return fail[*models.User](KindMalformedID, "Invalid user ID format")
	}

	if input.Username != nil || input.Email != nil {
		dup := s.db.WithContext(ctx).Model(&models.User{}).Where("id <> ?", id)
		switch {
		case input.Username != nil && input.Email != nil:
			dup = dup.Where("username = ? OR email = ?",
				strings.TrimSpace(*input.Username), normalizeEmail(*input.Email))
		case input.Username != nil:
			dup = dup.Where("username = ?", strings.TrimSpace(*input.Username))
		default:
			dup = dup.Where("email = ?", normalizeEmail(*input.Email))
		}

		var count int64
		if err := dup.Count(&count).Error; err != nil {
			return fail[*models.User](KindUnknown, err.Error())
		}
		if count > 0 {
			return fail[*models.User](KindDuplicate, "Username or email already exists")
		}
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return failFrom[*models.User](err,
			"Invalid update data provided",
			"Username or email already exists",
			"User not found")
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		user.Password = *input.Password
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return failFrom[*models.User](err,
			"Invalid update data provided",
			"Username or email already exists",
			"User not found")
	}

	return ok(user.Sanitize())
}

// Delete removes a user. Dependent social accounts and content are not
// cascaded.
func (s *UserService) Delete(ctx context.Context, id string) Result[*models.User] {
	if !models.ValidID(id) {
		return fail[*models.User](KindMalformedID, "Invalid user ID format")
	}

	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return fail[*models.User](KindUnknown, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fail[*models.User](KindNotFound, "User not found")
	}

	return ok[*models.User](nil)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
