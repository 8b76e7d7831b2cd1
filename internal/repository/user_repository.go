package repository

import (
	"peerlearn_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("id = ?", id).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

// UpdateStreak writes only the streak columns. The coin balance is
// credited concurrently by other flows and must never be rewritten here.
func (r *UserRepository) UpdateStreak(userID string, streak int, at time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"streak_count":  streak,
			"last_activity": at,
		}).Error
}

// UpdateSkills writes only the teachable-skill column.
func (r *UserRepository) UpdateSkills(userID string, skills []string) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("skills_can_teach", skills).Error
}

// FindMentors returns users with a non-empty teachable-skill set,
// optionally filtered to those listing the given skill. The skill filter
// matches against the JSON-serialized list.
func (r *UserRepository) FindMentors(skill string) ([]model.User, error) {
	var users []model.User
	query := r.DB.Where("skills_can_teach IS NOT NULL AND skills_can_teach NOT IN ?", []string{"[]", "null", ""})
	if skill != "" {
		query = query.Where("skills_can_teach LIKE ?", "%\""+skill+"\"%")
	}
	err := query.Limit(100).Find(&users).Error
	return users, err
}

func (r *UserRepository) FindTopByCoins(limit int) ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("coins DESC").Limit(limit).Find(&users).Error
	return users, err
}
