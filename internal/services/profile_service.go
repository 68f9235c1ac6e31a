package services

import (
	"fmt"

	"github.com/google/uuid"

	"lunch_manager/internal/models"
	"lunch_manager/internal/repository"
)

// ProfileUpdate carries the fields a user may change on their own profile.
type ProfileUpdate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ShiftType string `json:"shift_type"`
}

// AdminProfileUpdate additionally lets an admin override company and the
// admin flag.
type AdminProfileUpdate struct {
	ProfileUpdate
	CompanyName string `json:"company_name"`
	IsAdmin     bool   `json:"is_admin"`
}

type ProfileService interface {
	Get(userID uuid.UUID) (*models.Profile, error)
	UpdateOwn(userID uuid.UUID, update ProfileUpdate) (*models.Profile, error)
	ListAll() ([]models.Profile, error)
	AdminUpdate(userID uuid.UUID, update AdminProfileUpdate) (*models.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) Get(userID uuid.UUID) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpdateOwn applies a self-service edit. The company name is always forced
// back to the default; only admins may change it.
func (s *profileService) UpdateOwn(userID uuid.UUID, update ProfileUpdate) (*models.Profile, error) {
	if err := validateShift(update.ShiftType); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.FirstName = update.FirstName
	profile.LastName = update.LastName
	profile.ShiftType = update.ShiftType
	profile.CompanyName = models.DefaultCompanyName

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) ListAll() ([]models.Profile, error) {
	return s.profileRepo.GetAll()
}

func (s *profileService) AdminUpdate(userID uuid.UUID, update AdminProfileUpdate) (*models.Profile, error) {
	if err := validateShift(update.ShiftType); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.FirstName = update.FirstName
	profile.LastName = update.LastName
	profile.ShiftType = update.ShiftType
	profile.CompanyName = update.CompanyName
	if profile.CompanyName == "" {
		profile.CompanyName = models.DefaultCompanyName
	}
	profile.IsAdmin = update.IsAdmin

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func validateShift(shift string) error {
	if shift == "" {
		return nil
	}
	if !models.ShiftType(shift).IsValid() {
		return ErrInvalidShift
	}
	return nil
}
