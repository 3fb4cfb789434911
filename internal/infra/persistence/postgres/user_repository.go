// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mylot/internal/domain/entity"
	domainerrors "mylot/internal/domain/errors"
	"mylot/internal/domain/repository"
	"mylot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByResetToken retrieves the user holding the given password reset token.
func (repo *userRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	return repo.findOne(ctx, "password_reset_token = ?", token)
}

// FindByActiveKey retrieves the user holding the given activation key.
func (repo *userRepository) FindByActiveKey(ctx context.Context, key string) (*entity.User, error) {
	return repo.findOne(ctx, "active_key = ?", key)
}

func (repo *userRepository) findOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Authentications").
		Where(query, arg).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("Authentications", "Sessions").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the storage.
// Pointer fields are written explicitly so clearing a reset token persists as NULL.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(userM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailTaken
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user. Credentials and sessions cascade at the schema level.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	auths := make([]entity.Authentication, 0, len(data.Authentications))
	for i := range data.Authentications {
		auths = append(auths, *toAuthDomain(&data.Authentications[i]))
	}

	return &entity.User{
		ID:    data.ID,
		Email: data.Email,
		Profile: entity.Profile{
			Name:      data.ProfileName,
			FirstName: data.ProfileFirstName,
			LastName:  data.ProfileLastName,
			Gender:    data.ProfileGender,
			DOB:       data.ProfileDOB,
			Address:   data.ProfileAddress,
			City:      data.ProfileCity,
			Location:  data.ProfileLocation,
			Website:   data.ProfileWebsite,
			Picture:   data.ProfilePicture,
		},
		Role:                 entity.RoleFromString(data.Role),
		Active:               data.Active,
		ActiveKey:            data.ActiveKey,
		PasswordResetToken:   data.PasswordResetToken,
		PasswordResetExpires: data.PasswordResetExpires,
		Authentications:      auths,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                   data.ID,
		Email:                data.Email,
		Role:                 data.Role.String(),
		Active:               data.Active,
		ActiveKey:            data.ActiveKey,
		PasswordResetToken:   data.PasswordResetToken,
		PasswordResetExpires: data.PasswordResetExpires,
		ProfileName:          data.Profile.Name,
		ProfileFirstName:     data.Profile.FirstName,
		ProfileLastName:      data.Profile.LastName,
		ProfileGender:        data.Profile.Gender,
		ProfileDOB:           data.Profile.DOB,
		ProfileAddress:       data.Profile.Address,
		ProfileCity:          data.Profile.City,
		ProfileLocation:      data.Profile.Location,
		ProfileWebsite:       data.Profile.Website,
		ProfilePicture:       data.Profile.Picture,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
